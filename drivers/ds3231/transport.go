package ds3231

import (
	"context"

	"tinygo.org/x/drivers"
)

// I2CContext is the suspending bus capability: a single write-then-read
// transaction that yields until the transport signals completion. The write
// and read halves must happen in one transaction (repeated start), exactly
// like drivers.I2C.Tx.
type I2CContext interface {
	Tx(ctx context.Context, addr uint16, w, r []byte) error
}

// transport is the one capability the shared core sequences everything
// through: perform one bus transaction. The blocking and suspending façades
// differ only in which adapter they install here.
type transport interface {
	tx(ctx context.Context, w, r []byte) error
}

type i2cTransport struct {
	bus  drivers.I2C
	addr uint16
}

func (t i2cTransport) tx(_ context.Context, w, r []byte) error {
	return t.bus.Tx(t.addr, w, r)
}

type ctxTransport struct {
	bus  I2CContext
	addr uint16
}

func (t ctxTransport) tx(ctx context.Context, w, r []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.bus.Tx(ctx, t.addr, w, r)
}
