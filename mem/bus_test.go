package mem

import "testing"

func TestReadWrite(t *testing.T) {
	m := New()
	m.Write8(0x1234, 0x42)
	if got := m.Read8(0x1234); got != 0x42 {
		t.Errorf("Read8 = %02X, want 42", got)
	}
	if got := m.Read8(0x1235); got != 0 {
		t.Errorf("Read8 of untouched address = %02X, want 00", got)
	}
}

func TestReset(t *testing.T) {
	m := New()
	m.Write8(0x0600, 0xFF)
	m.Reset()
	if got := m.Read8(0x0600); got != 0 {
		t.Errorf("Read8 after Reset = %02X, want 00", got)
	}
}

func TestLoad(t *testing.T) {
	m := New()
	m.Load(0x0600, []byte{0xA9, 0x01, 0x00})
	if got := m.Read8(0x0601); got != 0x01 {
		t.Errorf("Read8 = %02X, want 01", got)
	}
}

func TestNoMirroring(t *testing.T) {
	m := New()
	m.Write8(0x0000, 0x11)
	if got := m.Read8(0x0800); got != 0 {
		t.Errorf("Read8(0x0800) = %02X, want 00 (no mirroring)", got)
	}
}
