package ds3231

// TimeFormat selects how the hours registers are encoded on the wire. It
// never changes the semantic hour a caller sees, which is always 0..23.
type TimeFormat uint8

const (
	TwentyFourHour TimeFormat = iota
	TwelveHour
)

// SquareWaveFrequency selects the rate of the square-wave output.
type SquareWaveFrequency uint8

const (
	SquareWave1Hz SquareWaveFrequency = iota
	SquareWave1024Hz
	SquareWave4096Hz
	SquareWave8192Hz
)

// InterruptControl routes the INT/SQW pin.
type InterruptControl uint8

const (
	// OutputSquareWave emits the configured square wave on INT/SQW.
	OutputSquareWave InterruptControl = iota
	// OutputAlarmInterrupt asserts INT/SQW when an enabled alarm matches.
	OutputAlarmInterrupt
)

// Oscillator is the EOSC-bar control. The register bit is inverted: a clear
// bit means the oscillator runs, so the zero value here is "enabled".
type Oscillator uint8

const (
	OscillatorEnabled Oscillator = iota
	OscillatorDisabled
)

// Config is consumed exactly once by Configure and translated into a single
// deterministic control-register byte. Bits not represented here (the alarm
// interrupt enables and the forced temperature conversion) are written as
// zero, not preserved.
type Config struct {
	TimeFormat              TimeFormat
	SquareWaveFrequency     SquareWaveFrequency
	InterruptControl        InterruptControl
	BatteryBackedSquareWave bool
	Oscillator              Oscillator
}

// Validate rejects enum values outside their defined range.
func (c Config) Validate() error {
	if c.TimeFormat > TwelveHour || c.SquareWaveFrequency > SquareWave8192Hz {
		return ErrConfigValue
	}
	if c.InterruptControl > OutputAlarmInterrupt || c.Oscillator > OscillatorDisabled {
		return ErrConfigValue
	}
	return nil
}

// packControl computes the full control-register byte from the Config.
// There is no read-modify-write: the result is a pure function of c.
func packControl(c Config) byte {
	b := byte(c.SquareWaveFrequency) << 3
	if c.InterruptControl == OutputAlarmInterrupt {
		b |= byte(CtrlInterruptControl)
	}
	if c.BatteryBackedSquareWave {
		b |= byte(CtrlBatteryBackedSQW)
	}
	if c.Oscillator == OscillatorDisabled {
		b |= byte(CtrlDisableOsc)
	}
	return b
}
