// Package crc16 implements CRC-16/CCITT-FALSE: polynomial 0x1021, initial
// value 0xFFFF, no reflection and no final XOR.
package crc16

import "fmt"

const (
	poly    = 0x1021
	initial = 0xFFFF
)

var table = func() [256]uint16 {
	var t [256]uint16
	for i := range t {
		crc := uint16(i) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}()

func Checksum(data []byte) uint16 {
	crc := uint16(initial)
	for _, b := range data {
		crc = (crc << 8) ^ table[byte(crc>>8)^b]
	}
	return crc
}

// Hex returns the checksum of s as four uppercase hex digits.
func Hex(s string) string {
	return fmt.Sprintf("%04X", Checksum([]byte(s)))
}
