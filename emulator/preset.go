// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"math"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mips/cpu"
)

// Preset evaluates a Starlark script and loads every global integer it
// binds into the register of the same name: `t0 = 5` sets $t0.
//
// Current register values are predeclared, so a script may compute from
// them. Globals starting with '_' are private to the script.
func (emu *Emulator) Preset(filename string, src any) (err error) {
	thread := &starlark.Thread{Name: "preset"}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for name, value := range emu.Cpu.Registers.All() {
		pred[strings.TrimPrefix(name, "$")] = starlark.MakeInt(int(value))
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	values := map[string]int32{}
	for _, name := range globals.Keys() {
		if strings.HasPrefix(name, "_") {
			continue
		}

		if !cpu.ValidRegister(name) {
			err = ErrPresetRegister(name)
			return
		}

		st_int, ok := globals[name].(starlark.Int)
		if !ok {
			err = ErrPresetValue(name)
			return
		}

		st_int64, ok := st_int.Int64()
		if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxInt32 {
			err = ErrPresetValue(name)
			return
		}

		values[name] = int32(st_int64)
	}

	for name, value := range values {
		emu.Cpu.Registers.Set("$"+name, value)
	}

	return
}
