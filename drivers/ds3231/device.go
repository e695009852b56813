package ds3231

import (
	"context"
	"time"

	"tinygo.org/x/drivers"
)

// Device is the blocking façade: every method occupies the calling
// goroutine until its bus transactions complete. It exclusively owns the
// bus handle it is constructed over; operations on one Device must not
// overlap.
type Device struct {
	core
}

// New creates a Device at the conventional address 0x68. It only builds the
// object; no bus traffic happens until the first operation.
func New(bus drivers.I2C) *Device {
	return NewWithAddress(bus, DefaultAddress)
}

// NewWithAddress creates a Device at a specific address.
func NewWithAddress(bus drivers.I2C, addr uint16) *Device {
	return &Device{core: core{
		t:     i2cTransport{bus: bus, addr: addr},
		trace: nopTrace{},
	}}
}

// SetTrace installs a diagnostic observer. Passing nil restores the no-op
// sink.
func (d *Device) SetTrace(sink TraceSink) {
	if sink == nil {
		sink = nopTrace{}
	}
	d.trace = sink
}

// Configure writes the control register once, computed entirely from cfg,
// and records the time format used for subsequent writes. Bits not covered
// by Config are overwritten with zero.
func (d *Device) Configure(cfg Config) error {
	return d.configure(context.Background(), cfg)
}

// DateTime reads the seven time registers in one transaction and returns
// the validated timestamp.
func (d *Device) DateTime() (DateTime, error) {
	return d.datetime(context.Background())
}

// SetDateTime validates dt and writes all seven time registers as one
// contiguous transaction. Nothing is written if validation fails.
func (d *Device) SetDateTime(dt DateTime) error {
	return d.setDateTime(context.Background(), dt)
}

// Now is a time.Time convenience over DateTime.
func (d *Device) Now() (time.Time, error) {
	dt, err := d.DateTime()
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time(), nil
}

// Set is a time.Time convenience over SetDateTime.
func (d *Device) Set(t time.Time) error {
	return d.SetDateTime(FromTime(t))
}

// Alarm1 reads and decodes the alarm 1 match specification.
func (d *Device) Alarm1() (Alarm1, error) {
	return d.alarm1(context.Background())
}

// SetAlarm1 validates and writes the alarm 1 registers in one transaction.
func (d *Device) SetAlarm1(a Alarm1) error {
	return d.setAlarm1(context.Background(), a)
}

// Alarm2 reads and decodes the alarm 2 match specification.
func (d *Device) Alarm2() (Alarm2, error) {
	return d.alarm2(context.Background())
}

// SetAlarm2 validates and writes the alarm 2 registers in one transaction.
func (d *Device) SetAlarm2(a Alarm2) error {
	return d.setAlarm2(context.Background(), a)
}

// EnableOscillator clears the EOSC-bar bit (bit clear = oscillator runs).
func (d *Device) EnableOscillator() error {
	return d.setOscillator(context.Background(), true)
}

// DisableOscillator sets the EOSC-bar bit, stopping the clock on battery.
func (d *Device) DisableOscillator() error {
	return d.setOscillator(context.Background(), false)
}

// SetAlarm1Interrupt enables or disables routing of alarm 1 matches to the
// INT/SQW pin (requires OutputAlarmInterrupt routing).
func (d *Device) SetAlarm1Interrupt(on bool) error {
	return d.setAlarmInterrupt(context.Background(), CtrlAlarm1IntEnable, on)
}

// SetAlarm2Interrupt enables or disables the alarm 2 interrupt.
func (d *Device) SetAlarm2Interrupt(on bool) error {
	return d.setAlarmInterrupt(context.Background(), CtrlAlarm2IntEnable, on)
}

// Control reads the control register.
func (d *Device) Control() (ControlBits, error) {
	return d.control(context.Background())
}

// Status reads the status register. Flags are chip-resident and never
// cached: every call is a live transaction.
func (d *Device) Status() (StatusBits, error) {
	return d.status(context.Background())
}

// ClearAlarm1Flag clears the alarm-1-matched flag, preserving the
// oscillator-stop flag and the alarm 2 flag.
func (d *Device) ClearAlarm1Flag() error {
	return d.clearStatusFlag(context.Background(), StatusAlarm1Flag)
}

// ClearAlarm2Flag clears the alarm-2-matched flag.
func (d *Device) ClearAlarm2Flag() error {
	return d.clearStatusFlag(context.Background(), StatusAlarm2Flag)
}

// ClearOscillatorStopFlag clears OSF after the caller has decided the time
// is trustworthy again.
func (d *Device) ClearOscillatorStopFlag() error {
	return d.clearStatusFlag(context.Background(), StatusOscStopped)
}

// Set32kHzOutput enables or disables the 32.768 kHz output pin.
func (d *Device) Set32kHzOutput(on bool) error {
	return d.set32kHzOutput(context.Background(), on)
}

// Temperature reads the TCXO temperature register pair. The chip refreshes
// it on its own conversion cadence (roughly every 64 s); no conversion is
// forced.
func (d *Device) Temperature() (Temperature, error) {
	return d.temperature(context.Background())
}

// TemperatureCelsius is a floating-point convenience over Temperature.
func (d *Device) TemperatureCelsius() (float32, error) {
	t, err := d.Temperature()
	if err != nil {
		return 0, err
	}
	return t.Celsius(), nil
}

// AgingOffset reads the crystal aging trim.
func (d *Device) AgingOffset() (int8, error) {
	return d.agingOffset(context.Background())
}

// SetAgingOffset writes the crystal aging trim.
func (d *Device) SetAgingOffset(offset int8) error {
	return d.setAgingOffset(context.Background(), offset)
}

// ReadRegister reads one raw register byte.
func (d *Device) ReadRegister(reg RegAddr) (byte, error) {
	return d.readRegister(context.Background(), reg)
}

// WriteRegister writes one raw register byte.
func (d *Device) WriteRegister(reg RegAddr, value byte) error {
	return d.writeRegister(context.Background(), reg, value)
}
