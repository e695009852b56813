package ds3231

import (
	"context"
	"time"
)

// DeviceContext is the suspending façade over an I2CContext bus. Every
// method takes a context and yields for the duration of its bus
// transactions; a context cancelled before a transaction starts aborts the
// operation without touching the bus. It mirrors Device method for method.
type DeviceContext struct {
	core
}

// NewContext creates a DeviceContext. Use DefaultAddress unless the board
// straps the address pins differently.
func NewContext(bus I2CContext, addr uint16) *DeviceContext {
	return &DeviceContext{core: core{
		t:     ctxTransport{bus: bus, addr: addr},
		trace: nopTrace{},
	}}
}

// SetTrace installs a diagnostic observer. Passing nil restores the no-op
// sink.
func (d *DeviceContext) SetTrace(sink TraceSink) {
	if sink == nil {
		sink = nopTrace{}
	}
	d.trace = sink
}

func (d *DeviceContext) Configure(ctx context.Context, cfg Config) error {
	return d.configure(ctx, cfg)
}

func (d *DeviceContext) DateTime(ctx context.Context) (DateTime, error) {
	return d.datetime(ctx)
}

func (d *DeviceContext) SetDateTime(ctx context.Context, dt DateTime) error {
	return d.setDateTime(ctx, dt)
}

func (d *DeviceContext) Now(ctx context.Context) (time.Time, error) {
	dt, err := d.datetime(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time(), nil
}

func (d *DeviceContext) Set(ctx context.Context, t time.Time) error {
	return d.setDateTime(ctx, FromTime(t))
}

func (d *DeviceContext) Alarm1(ctx context.Context) (Alarm1, error) {
	return d.alarm1(ctx)
}

func (d *DeviceContext) SetAlarm1(ctx context.Context, a Alarm1) error {
	return d.setAlarm1(ctx, a)
}

func (d *DeviceContext) Alarm2(ctx context.Context) (Alarm2, error) {
	return d.alarm2(ctx)
}

func (d *DeviceContext) SetAlarm2(ctx context.Context, a Alarm2) error {
	return d.setAlarm2(ctx, a)
}

func (d *DeviceContext) EnableOscillator(ctx context.Context) error {
	return d.setOscillator(ctx, true)
}

func (d *DeviceContext) DisableOscillator(ctx context.Context) error {
	return d.setOscillator(ctx, false)
}

func (d *DeviceContext) SetAlarm1Interrupt(ctx context.Context, on bool) error {
	return d.setAlarmInterrupt(ctx, CtrlAlarm1IntEnable, on)
}

func (d *DeviceContext) SetAlarm2Interrupt(ctx context.Context, on bool) error {
	return d.setAlarmInterrupt(ctx, CtrlAlarm2IntEnable, on)
}

func (d *DeviceContext) Control(ctx context.Context) (ControlBits, error) {
	return d.control(ctx)
}

func (d *DeviceContext) Status(ctx context.Context) (StatusBits, error) {
	return d.status(ctx)
}

func (d *DeviceContext) ClearAlarm1Flag(ctx context.Context) error {
	return d.clearStatusFlag(ctx, StatusAlarm1Flag)
}

func (d *DeviceContext) ClearAlarm2Flag(ctx context.Context) error {
	return d.clearStatusFlag(ctx, StatusAlarm2Flag)
}

func (d *DeviceContext) ClearOscillatorStopFlag(ctx context.Context) error {
	return d.clearStatusFlag(ctx, StatusOscStopped)
}

func (d *DeviceContext) Set32kHzOutput(ctx context.Context, on bool) error {
	return d.set32kHzOutput(ctx, on)
}

func (d *DeviceContext) Temperature(ctx context.Context) (Temperature, error) {
	return d.temperature(ctx)
}

func (d *DeviceContext) TemperatureCelsius(ctx context.Context) (float32, error) {
	t, err := d.temperature(ctx)
	if err != nil {
		return 0, err
	}
	return t.Celsius(), nil
}

func (d *DeviceContext) AgingOffset(ctx context.Context) (int8, error) {
	return d.agingOffset(ctx)
}

func (d *DeviceContext) SetAgingOffset(ctx context.Context, offset int8) error {
	return d.setAgingOffset(ctx, offset)
}

func (d *DeviceContext) ReadRegister(ctx context.Context, reg RegAddr) (byte, error) {
	return d.readRegister(ctx, reg)
}

func (d *DeviceContext) WriteRegister(ctx context.Context, reg RegAddr, value byte) error {
	return d.writeRegister(ctx, reg, value)
}
