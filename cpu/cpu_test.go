package cpu

import "testing"

func TestReset(t *testing.T) {
	c := NewCPU(&testmem{})
	before := c.Cycles
	c.A, c.X, c.Y, c.SP, c.P = 1, 2, 3, 0x80, 0xFF
	c.Reset()

	if c.PC != 0x0600 {
		t.Errorf("PC = %04X, want 0600", c.PC)
	}
	if c.SP != 0xFF {
		t.Errorf("SP = %02X, want FF", c.SP)
	}
	if c.A != 0 || c.X != 0 || c.Y != 0 || c.P != 0 {
		t.Errorf("A/X/Y/P not cleared: %02X %02X %02X %02X", c.A, c.X, c.Y, c.P)
	}
	if c.Cycles != before+8 {
		t.Errorf("cycles = %d, want %d (reset adds 8)", c.Cycles, before+8)
	}
}

// Mirrors the reference driver: ADC $00 (zero page, operand = 1), ASL A,
// then BRK. Starts with A=0, mem[0]=1.
func TestReferenceProgram(t *testing.T) {
	dump := `0600: 65 00 0A 00`
	c := loadCPUWith(t, dump)
	c.bus.Write8(0x0000, 0x01)
	c.PC = 0x0600

	cycles := c.Run()

	if c.A != 0x02 {
		t.Errorf("A = %02X, want 02", c.A)
	}
	if !c.P.B() {
		t.Error("B flag not set after BRK")
	}
	if want := uint64(8 + 3 + 2 + 7); cycles != want {
		t.Errorf("cycles = %d, want %d", cycles, want)
	}
}

func TestCPx(t *testing.T) {
	cases := []struct {
		name string
		dump string
		want uint8
	}{
		{"greater", `0600: a2 40 e0 41`, 0b10110000},
		{"equal", `0600: a2 40 e0 40`, 0b00110011},
		{"less", `0600: a2 40 e0 39`, 0b00110001},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			c := loadCPUWith(t, tt.dump)
			c.PC = 0x0600
			c.P = 0b00110000
			runAndCheckState(t, c, 2,
				"A", uint8(0x00),
				"X", uint8(0x40),
				"Y", uint8(0x00),
				"P", tt.want,
			)
		})
	}
}

func TestLDA_STA(t *testing.T) {
	dump := `0600: a9 01 8d 00 02 a9 05 8d 01 02 a9 08 8d 02 02`
	c := loadCPUWith(t, dump)
	c.PC = 0x0600
	runAndCheckState(t, c, 6,
		"A", uint8(0x08),
		"PC", uint16(0x060F),
		"SP", uint8(0xFF),
		"mem", `0200: 01 05 08`,
	)
}

func TestEOR(t *testing.T) {
	dump := `
0000: 06
0100: 45 00`
	c := loadCPUWith(t, dump)
	c.PC = 0x0100
	c.A = 0x80
	runAndCheckState(t, c, 1,
		"A", uint8(0x86),
		"Pn", uint8(1),
		"Pz", uint8(0),
	)
}

func TestROR(t *testing.T) {
	dump := `
0000: 55
0100: 66 00`
	c := loadCPUWith(t, dump)
	c.PC = 0x0100
	c.P.writeBit(pbitC, true)
	runAndCheckState(t, c, 1,
		"Pn", uint8(1),
		"Pc", uint8(1),
		"Pz", uint8(0),
	)
	wantMem8(t, c, 0x0000, 0xAA)
}

func TestStackPushPull(t *testing.T) {
	dump := `0600: a9 aa 48 a9 11 68`
	c := loadCPUWith(t, dump)
	c.PC = 0x0600
	c.SP = 0xFF
	runAndCheckState(t, c, 4,
		"PC", uint16(0x0606),
		"A", uint8(0xAA),
		"SP", uint8(0xFF),
		"Pn", uint8(1),
	)
}

func TestJSR_RTS(t *testing.T) {
	dump := `
0600: 20 20 06 A9 FF
0620: A9 88 60`
	c := loadCPUWith(t, dump)
	c.PC = 0x0600
	runAndCheckState(t, c, 1, "PC", uint16(0x0620))
	runAndCheckState(t, c, 1, "A", uint8(0x88))
	runAndCheckState(t, c, 1, "PC", uint16(0x0603))
	runAndCheckState(t, c, 1, "A", uint8(0xFF))
}

func TestBranchCycles(t *testing.T) {
	t.Run("not taken", func(t *testing.T) {
		c := loadCPUWith(t, `0600: d0 02`) // BNE +2, Z set so not taken
		base := c.Cycles
		c.PC = 0x0600
		c.P.writeBit(pbitZ, true)
		c.Step()
		if c.Cycles-base != 2 {
			t.Errorf("cycles = %d, want 2", c.Cycles-base)
		}
	})

	t.Run("taken, no page cross", func(t *testing.T) {
		c := loadCPUWith(t, `0600: d0 02`) // BNE +2, Z clear so taken
		base := c.Cycles
		c.PC = 0x0600
		c.P.writeBit(pbitZ, false)
		c.Step()
		if c.Cycles-base != 3 {
			t.Errorf("cycles = %d, want 3", c.Cycles-base)
		}
		if c.PC != 0x0604 {
			t.Errorf("PC = %04X, want 0604", c.PC)
		}
	})
}

// IndirectY must dereference the zero-page pointer and add Y to the
// resulting address, not to the raw pointer byte.
func TestIndirectY(t *testing.T) {
	dump := `
0010: 00 03
0300: 42
0600: b1 10`
	c := loadCPUWith(t, dump)
	c.PC = 0x0600
	c.Y = 0
	runAndCheckState(t, c, 1, "A", uint8(0x42))
}

func TestUnassignedOpcodeIsNOP(t *testing.T) {
	c := loadCPUWith(t, `0600: 02 A9 7F`) // $02 is unassigned
	c.PC = 0x0600
	runAndCheckState(t, c, 2, "A", uint8(0x7F), "PC", uint16(0x0603))
}

func TestBRKStopsRun(t *testing.T) {
	c := loadCPUWith(t, `0600: A9 01 00 A9 02`)
	c.PC = 0x0600
	c.Run()

	if c.A != 0x01 {
		t.Errorf("A = %02X, want 01 (BRK should have stopped before the second LDA)", c.A)
	}
	if !c.P.B() {
		t.Error("B flag should be set")
	}
}
