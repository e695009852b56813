package ds3231

// bcdEncode packs n into binary-coded decimal: tens digit in the high
// nibble, ones digit in the low nibble. n must be below 100.
func bcdEncode(n uint8) (uint8, error) {
	if n > 99 {
		return 0, ErrBCDRange
	}
	return (n/10)<<4 | n%10, nil
}

// bcdDecode is the inverse of bcdEncode. It is total: every byte maps to a
// defined integer, possibly one the surrounding register does not permit.
// Range validation is the caller's job.
func bcdDecode(b uint8) uint8 {
	return (b>>4)*10 + b&0x0F
}
