package ds3231

import "context"

// core holds the shared state and sequencing logic behind both façades.
// Operations on one instance are strictly sequential; the fixed scratch
// buffers rely on that to avoid per-call heap allocations.
type core struct {
	t      transport
	format TimeFormat
	trace  TraceSink

	w [8]byte
	r [7]byte
}

// readRegs performs one write-then-read transaction: the register address
// followed by len(buf) consecutive bytes starting there.
func (c *core) readRegs(ctx context.Context, reg RegAddr, buf []byte) error {
	c.w[0] = byte(reg)
	if err := c.t.tx(ctx, c.w[:1], buf); err != nil {
		return err
	}
	c.trace.RegisterRead(reg, buf)
	return nil
}

// writeRegs performs one transaction writing the register address and data
// as a single message, so multi-byte writes are never split.
func (c *core) writeRegs(ctx context.Context, reg RegAddr, data []byte) error {
	c.w[0] = byte(reg)
	n := copy(c.w[1:], data)
	if err := c.t.tx(ctx, c.w[:1+n], nil); err != nil {
		return err
	}
	c.trace.RegisterWrite(reg, data)
	return nil
}

// updateReg is the single-register read-modify-write used for bit flips on
// the control and status registers. A failed read aborts the update without
// issuing the write.
func (c *core) updateReg(ctx context.Context, reg RegAddr, set, clear byte) error {
	if err := c.readRegs(ctx, reg, c.r[:1]); err != nil {
		return err
	}
	v := (c.r[0] | set) &^ clear
	return c.writeRegs(ctx, reg, []byte{v})
}

func (c *core) configure(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := c.writeRegs(ctx, RegControl, []byte{packControl(cfg)}); err != nil {
		return transportErr("configure", err)
	}
	c.format = cfg.TimeFormat
	return nil
}

func (c *core) datetime(ctx context.Context) (DateTime, error) {
	if err := c.readRegs(ctx, RegSeconds, c.r[:7]); err != nil {
		return DateTime{}, transportErr("datetime", err)
	}
	return decodeDateTime(&c.r)
}

func (c *core) setDateTime(ctx context.Context, dt DateTime) error {
	var buf [7]byte
	if err := encodeDateTime(dt, c.format, &buf); err != nil {
		return err
	}
	if err := c.writeRegs(ctx, RegSeconds, buf[:]); err != nil {
		return transportErr("set datetime", err)
	}
	return nil
}

func (c *core) alarm1(ctx context.Context) (Alarm1, error) {
	if err := c.readRegs(ctx, RegAlarm1Seconds, c.r[:4]); err != nil {
		return Alarm1{}, transportErr("alarm1", err)
	}
	var buf [4]byte
	copy(buf[:], c.r[:4])
	return decodeAlarm1(&buf)
}

func (c *core) setAlarm1(ctx context.Context, a Alarm1) error {
	var buf [4]byte
	if err := encodeAlarm1(a, c.format, &buf); err != nil {
		return err
	}
	if err := c.writeRegs(ctx, RegAlarm1Seconds, buf[:]); err != nil {
		return transportErr("set alarm1", err)
	}
	return nil
}

func (c *core) alarm2(ctx context.Context) (Alarm2, error) {
	if err := c.readRegs(ctx, RegAlarm2Minutes, c.r[:3]); err != nil {
		return Alarm2{}, transportErr("alarm2", err)
	}
	var buf [3]byte
	copy(buf[:], c.r[:3])
	return decodeAlarm2(&buf)
}

func (c *core) setAlarm2(ctx context.Context, a Alarm2) error {
	var buf [3]byte
	if err := encodeAlarm2(a, c.format, &buf); err != nil {
		return err
	}
	if err := c.writeRegs(ctx, RegAlarm2Minutes, buf[:]); err != nil {
		return transportErr("set alarm2", err)
	}
	return nil
}

func (c *core) setOscillator(ctx context.Context, on bool) error {
	var err error
	if on {
		err = c.updateReg(ctx, RegControl, 0, byte(CtrlDisableOsc))
	} else {
		err = c.updateReg(ctx, RegControl, byte(CtrlDisableOsc), 0)
	}
	if err != nil {
		return transportErr("set oscillator", err)
	}
	return nil
}

func (c *core) setAlarmInterrupt(ctx context.Context, flag ControlBits, on bool) error {
	var err error
	if on {
		err = c.updateReg(ctx, RegControl, byte(flag), 0)
	} else {
		err = c.updateReg(ctx, RegControl, 0, byte(flag))
	}
	if err != nil {
		return transportErr("set alarm interrupt", err)
	}
	return nil
}

func (c *core) control(ctx context.Context) (ControlBits, error) {
	if err := c.readRegs(ctx, RegControl, c.r[:1]); err != nil {
		return 0, transportErr("control", err)
	}
	return ControlBits(c.r[0]), nil
}

func (c *core) status(ctx context.Context) (StatusBits, error) {
	if err := c.readRegs(ctx, RegStatus, c.r[:1]); err != nil {
		return 0, transportErr("status", err)
	}
	return StatusBits(c.r[0]), nil
}

// clearStatusFlag clears exactly one status flag. The other flags are
// written back as read; the chip ignores ones written to flag bits, so the
// sibling alarm flag and the oscillator-stop flag survive.
func (c *core) clearStatusFlag(ctx context.Context, flag StatusBits) error {
	if err := c.updateReg(ctx, RegStatus, 0, byte(flag)); err != nil {
		return transportErr("clear status flag", err)
	}
	return nil
}

func (c *core) set32kHzOutput(ctx context.Context, on bool) error {
	var err error
	if on {
		err = c.updateReg(ctx, RegStatus, byte(Status32kHzEnable), 0)
	} else {
		err = c.updateReg(ctx, RegStatus, 0, byte(Status32kHzEnable))
	}
	if err != nil {
		return transportErr("set 32khz output", err)
	}
	return nil
}

func (c *core) temperature(ctx context.Context) (Temperature, error) {
	if err := c.readRegs(ctx, RegTempMSB, c.r[:2]); err != nil {
		return Temperature{}, transportErr("temperature", err)
	}
	return decodeTemperature(c.r[0], c.r[1]), nil
}

func (c *core) agingOffset(ctx context.Context) (int8, error) {
	if err := c.readRegs(ctx, RegAgingOffset, c.r[:1]); err != nil {
		return 0, transportErr("aging offset", err)
	}
	return int8(c.r[0]), nil
}

func (c *core) setAgingOffset(ctx context.Context, offset int8) error {
	if err := c.writeRegs(ctx, RegAgingOffset, []byte{byte(offset)}); err != nil {
		return transportErr("set aging offset", err)
	}
	return nil
}

func (c *core) readRegister(ctx context.Context, reg RegAddr) (byte, error) {
	if err := c.readRegs(ctx, reg, c.r[:1]); err != nil {
		return 0, transportErr("read register", err)
	}
	return c.r[0], nil
}

func (c *core) writeRegister(ctx context.Context, reg RegAddr, value byte) error {
	if err := c.writeRegs(ctx, reg, []byte{value}); err != nil {
		return transportErr("write register", err)
	}
	return nil
}
