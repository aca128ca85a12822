package emulator_test

import (
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/mips/cpu"
	"github.com/ezrec/mips/emulator"
)

var _ = Describe("Emulator", func() {
	var (
		mockCtrl        *gomock.Controller
		mockChannel     *MockChannel
		mockDiagnostics *MockDiagnostics
		emu             *emulator.Emulator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockChannel = NewMockChannel(mockCtrl)
		mockDiagnostics = NewMockDiagnostics(mockCtrl)

		emu = emulator.NewEmulator()
		emu.Cpu.Output = mockChannel
		emu.Diagnostics = mockDiagnostics
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should read never written registers as zero", func() {
		mockChannel.EXPECT().Send("0").Times(3)

		status, err := emu.Interpret("print $t0;\nprint $v9;\n$a5;")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(emulator.StatusOK))
	})

	It("should add preset registers", func() {
		emu.Cpu.Registers.Set("$s0", 2)
		emu.Cpu.Registers.Set("$s1", 3)
		mockChannel.EXPECT().Send("5")

		status, err := emu.Interpret("add $s0,$s1,$t0;\nprint $t0;")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(emulator.StatusOK))
	})

	It("should halt on division by zero", func() {
		emu.Cpu.Registers.Set("$s0", 2)
		mockDiagnostics.EXPECT().Runtime("Division by zero.", 1)

		status, err := emu.Interpret("div $s0,$s1,$t0;\nprint $t0;")
		Expect(err).To(MatchError(cpu.ErrDivideByZero))
		Expect(status).To(Equal(emulator.StatusRuntimeError))
		Expect(emu.Pc()).To(Equal(0))
		Expect(emu.Cpu.Registers.Get("$t0")).To(Equal(int32(0)))
	})

	Context("when branching", func() {
		It("should end the program when the increment lands on its length", func() {
			status, err := emu.Interpret("beq $t0,$t1,1;\nprint $t0;")
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(emulator.StatusOK))
			Expect(emu.Pc()).To(Equal(2))
		})

		It("should compare the second register to the first", func() {
			emu.Cpu.Registers.Set("$t0", 1)
			emu.Cpu.Registers.Set("$t1", 5)
			gomock.InOrder(
				mockChannel.EXPECT().Send("5"),
				mockChannel.EXPECT().Send("1"),
				mockChannel.EXPECT().Send("5"),
			)

			status, err := emu.Interpret("bgt $t0, $t1, 1;\nprint $t0;\nprint $t1;")
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(emulator.StatusOK))

			status, err = emu.Interpret("bgt $t1, $t0, 1;\nprint $t0;\nprint $t1;")
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(emulator.StatusOK))
		})

		It("should fault past the end of the program", func() {
			mockDiagnostics.EXPECT().Runtime("Invalid address.", 1)

			status, err := emu.Interpret("beq $t0,$t1,2;\nprint $t0;")
			Expect(err).To(MatchError(cpu.ErrAddressInvalid))
			Expect(status).To(Equal(emulator.StatusRuntimeError))
		})

		It("should fault before the start of the program", func() {
			mockChannel.EXPECT().Send("0")
			mockDiagnostics.EXPECT().Runtime("Invalid address.", 2)

			status, err := emu.Interpret("print $t1;\nbeq $t0,$t1,-3;")
			Expect(err).To(MatchError(cpu.ErrAddressInvalid))
			Expect(status).To(Equal(emulator.StatusRuntimeError))
		})
	})

	Context("when jumping", func() {
		It("should redirect j 1 to the first instruction", func() {
			Expect(emu.Load("j 1;\nprint $t0;")).To(Succeed())

			for range 3 {
				done, err := emu.Tick()
				Expect(err).NotTo(HaveOccurred())
				Expect(done).To(BeFalse())
				Expect(emu.Pc()).To(Equal(0))
			}
		})

		It("should loop back to an earlier instruction", func() {
			emu.Cpu.Registers.Set("$t1", 2)
			mockChannel.EXPECT().Send("2")

			program := "addi $t0, $t0, 1;\nbge $t1, $t0, 1;\nj 1;\nprint $t0;"
			status, err := emu.Interpret(program)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(emulator.StatusOK))
		})

		It("should fault on an address outside the program", func() {
			mockDiagnostics.EXPECT().Runtime("Invalid jump address.", 1)

			status, err := emu.Interpret("j 0;")
			Expect(err).To(MatchError(cpu.ErrJumpInvalid))
			Expect(status).To(Equal(emulator.StatusRuntimeError))
		})
	})

	It("should write the first register of an immediate form", func() {
		emu.Cpu.Registers.Set("$t1", 10)
		mockChannel.EXPECT().Send("15")

		status, err := emu.Interpret("addi $t0, $t1, 5;\nprint $t0;")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(emulator.StatusOK))
		Expect(emu.Cpu.Registers.Get("$t1")).To(Equal(int32(10)))
	})

	It("should swap never written registers", func() {
		emu.Cpu.Registers.Set("$t0", 4)
		gomock.InOrder(
			mockChannel.EXPECT().Send("0"),
			mockChannel.EXPECT().Send("4"),
		)

		status, err := emu.Interpret("swap $t0,$t1;\nprint $t0;\nprint $t1;")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(emulator.StatusOK))
	})

	It("should report syntax faults without running", func() {
		gomock.InOrder(
			mockDiagnostics.EXPECT().Syntax(1, "", "Invalid register."),
			mockDiagnostics.EXPECT().Syntax(2, " at end", "Expect semicolon."),
		)

		status, err := emu.Interpret("print $x0;\nprint $t0")
		Expect(err).To(HaveOccurred())
		Expect(status).To(Equal(emulator.StatusSyntaxError))
		Expect(emu.Ticks()).To(Equal(0))
	})

	It("should keep registers between interpretations", func() {
		gomock.InOrder(
			mockChannel.EXPECT().Send("3"),
			mockChannel.EXPECT().Send("6"),
		)

		for range 2 {
			status, err := emu.Interpret("addi $v0, $v0, 3;\nprint $v0;")
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(emulator.StatusOK))
		}
	})

	It("should stop a runaway program at the tick limit", func() {
		emu.MaxTicks = 100
		mockDiagnostics.EXPECT().Runtime("Execution limit reached.", 1)

		status, err := emu.Interpret("j 1;")
		Expect(err).To(MatchError(emulator.ErrTickLimit))
		Expect(status).To(Equal(emulator.StatusRuntimeError))
		Expect(emu.Ticks()).To(Equal(100))
	})

	DescribeTable("should keep operands when reassembled",
		func(source string, text string) {
			Expect(emu.Load(source)).To(Succeed())
			Expect(emu.Program.At(0).String()).To(Equal(text))

			Expect(emu.Load(text)).To(Succeed())
			Expect(emu.Program.At(0).String()).To(Equal(text))
		},
		Entry("rtype", "sub $v1,$t2,$s3;", "sub $v1, $t2, $s3;"),
		Entry("negative immediate", "subi $a0,$a1,-7;", "subi $a0, $a1, -7;"),
		Entry("branch", "ble $t0,$t1,-2;", "ble $t0, $t1, -2;"),
		Entry("jump", "j 3;", "j 3;"),
		Entry("bare print", "$s9;", "print $s9;"),
	)
})
