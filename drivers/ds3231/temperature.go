package ds3231

// Temperature is the TCXO die temperature as the chip stores it: a signed
// integer Celsius part and a quarter-degree fraction. Every register bit
// pattern is a legal temperature, so decoding can not fail.
type Temperature struct {
	Degrees  int8  // two's-complement integer degrees Celsius
	Quarters uint8 // quarter-degree fraction index, 0..3
}

// Centicelsius returns the exact temperature in hundredths of a degree.
func (t Temperature) Centicelsius() int32 {
	return int32(t.Degrees)*100 + int32(t.Quarters)*25
}

// Celsius is a floating-point convenience built on the exact value.
func (t Temperature) Celsius() float32 {
	return float32(t.Centicelsius()) / 100
}

// decodeTemperature interprets the MSB/LSB register pair. The fraction
// lives in the top two bits of the LSB.
func decodeTemperature(msb, lsb byte) Temperature {
	return Temperature{Degrees: int8(msb), Quarters: lsb >> 6}
}
