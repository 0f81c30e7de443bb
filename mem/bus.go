// Package mem implements the flat byte-addressable memory the CPU core
// operates against: one contiguous 64K array, no mirroring, no
// memory-mapped I/O.
package mem

import "m6502/internal/corelog"

// Memory is a 65536-byte address space. Every address reads back whatever
// was last written there; there are no reserved regions.
type Memory struct {
	data [0x10000]byte
}

// New returns a zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Reset clears every byte to zero.
func (m *Memory) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
	corelog.ModMem.Debugf("memory cleared")
}

func (m *Memory) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *Memory) Write8(addr uint16, val uint8) {
	m.data[addr] = val
}

// Load copies program into memory starting at addr, for setting up a
// run without going through Write8 byte by byte.
func (m *Memory) Load(addr uint16, program []byte) {
	copy(m.data[addr:], program)
}
