package brcode

import (
	"fmt"
)

const (
	crcSeed       = 0xFFFF
	crcPolynomial = 0x1021
)

// CRC16 computes CRC16-CCITT (seed 0xFFFF, polynomial 0x1021, no reflection, no final XOR)
// and returns it as four upper-case hex digits.
func CRC16(data []byte) string {
	return fmt.Sprintf("%04X", checksum(data))
}

func checksum(data []byte) uint16 {
	crc := uint16(crcSeed)

	for _, b := range data {
		crc ^= uint16(b) << 8

		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
