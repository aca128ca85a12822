// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/tebeka/atexit"

	"github.com/ezrec/mips/cpu"
	"github.com/ezrec/mips/emulator"
	"github.com/ezrec/mips/translate"
)

const (
	exitUsage = 64
)

func usage() {
	fmt.Println("Usage: mips [script]")
	atexit.Exit(exitUsage)
}

// dump pretty-prints the tokens and instructions of source to stderr.
func dump(source string) {
	tokens, _ := cpu.Scan(source)
	pp.Fprintln(os.Stderr, tokens)

	asm := &cpu.Assembler{}
	prog, _ := asm.Parse(tokens)
	pp.Fprintln(os.Stderr, prog.Insts)
}

func main() {
	var verbose bool
	var dumping bool
	var preset string
	var max_ticks int
	var lang string

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dumping, "dump", false, "Dump tokens and instructions before running")
	flag.StringVar(&preset, "preset", "", "Starlark register preset script")
	flag.IntVar(&max_ticks, "max-ticks", 0, "Instruction limit per run; 0 is unlimited")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47)")
	flag.Usage = usage

	flag.Parse()

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	if flag.NArg() > 1 {
		usage()
	}

	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { stdout.Flush() })

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxTicks = max_ticks
	emu.Tape.Output = stdout
	emu.Report.Output = os.Stderr

	if len(preset) != 0 {
		src, err := os.ReadFile(preset)
		if err != nil {
			log.Fatalf("%v: %v", preset, err)
		}
		err = emu.Preset(preset, src)
		if err != nil {
			log.Fatalf("%v: %v", preset, err)
		}
	}

	if flag.NArg() == 1 {
		runFile(emu, flag.Arg(0), dumping)
	} else {
		runPrompt(emu, stdout, dumping)
	}

	atexit.Exit(0)
}

// runFile interprets a whole script, and exits with its status.
func runFile(emu *emulator.Emulator, filename string, dumping bool) {
	if !strings.HasSuffix(filename, ".mips") {
		usage()
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	if dumping {
		dump(string(source))
	}

	status, _ := emu.Interpret(string(source))
	if emu.Verbose {
		log.Printf("%v: %v\n%v", filename, status, emu.Cpu)
	}

	atexit.Exit(status.ExitCode())
}

// runPrompt interprets stdin one line at a time. Registers persist from one
// line to the next, and faults do not end the session.
func runPrompt(emu *emulator.Emulator, stdout *bufio.Writer, dumping bool) {
	emu.Tape.Input = os.Stdin

	prompt := func() {
		stdout.WriteString("> ")
		stdout.Flush()
	}

	prompt()
	for line := range emu.Tape.Receive() {
		if dumping {
			dump(line)
		}

		status, _ := emu.Interpret(line)
		if emu.Verbose {
			log.Printf("%v\n%v", status, emu.Cpu)
		}

		prompt()
	}
}
