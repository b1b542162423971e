// Package crc64be implements the non-reflected CRC-64/ECMA-182 checksum:
// MSB-first, initial value 0, no final XOR. It differs from hash/crc64,
// which only provides the reflected form.
package crc64be

import (
	"sync"
)

// ECMA is the ECMA-182 polynomial in MSB-first form.
const ECMA = 0x42F0E1EBA9EA3693

// Table is a 256-word table representing the polynomial for efficient processing.
type Table [256]uint64

var (
	ecmaOnce  sync.Once
	ecmaTable *Table
)

// MakeTable returns a Table constructed from the specified polynomial.
// The contents of the table must not be modified.
func MakeTable(poly uint64) *Table {
	t := new(Table)
	for i := 0; i < 256; i++ {
		crc := uint64(i) << 56
		for j := 0; j < 8; j++ {
			if crc&(1<<63) != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}

	return t
}

// ECMATable returns the ECMA-182 table, building it on first use.
func ECMATable() *Table {
	ecmaOnce.Do(func() {
		ecmaTable = MakeTable(ECMA)
	})

	return ecmaTable
}

// Update returns the result of adding the bytes in p to the crc.
func Update(crc uint64, tab *Table, p []byte) uint64 {
	for _, b := range p {
		crc = tab[byte(crc>>56)^b] ^ (crc << 8)
	}

	return crc
}

// Checksum returns the checksum of data using the polynomial represented by the Table.
func Checksum(data []byte, tab *Table) uint64 {
	return Update(0, tab, data)
}
