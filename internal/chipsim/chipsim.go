// Package chipsim emulates the DS3231 register file well enough to run the
// driver on a host: a 0x13-byte register window behind an address pointer
// that auto-increments and wraps, with the status register's flag bits
// honouring their clear-only write semantics. It does not tick time.
package chipsim

import (
	"context"
	"errors"
	"sync"
)

const (
	regCount  = 0x13
	regStatus = 0x0F

	// OSF, A2F, A1F. Writing 1 to a flag bit leaves it as is.
	statusFlagMask = 0x83
)

// ErrAddressMismatch is returned for transactions aimed at a different
// device address.
var ErrAddressMismatch = errors.New("chipsim: address mismatch")

// Chip is an in-memory DS3231 register file. The zero value is not usable;
// call New. It is safe for concurrent use, though the driver it backs
// serializes its own transactions anyway.
type Chip struct {
	mu   sync.Mutex
	addr uint16
	ptr  uint8
	regs [regCount]byte
}

// New creates a Chip answering at the standard address 0x68.
func New() *Chip {
	return &Chip{addr: 0x68}
}

// NewAt creates a Chip answering at a specific bus address.
func NewAt(addr uint16) *Chip {
	return &Chip{addr: addr}
}

// Tx implements the blocking bus contract. The write half moves the address
// pointer (first byte) and stores any following bytes; the read half
// returns consecutive registers from the pointer. Both halves advance the
// pointer, wrapping past the last register back to zero.
func (c *Chip) Tx(addr uint16, w, r []byte) error {
	if addr != c.addr {
		return ErrAddressMismatch
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(w) > 0 {
		c.ptr = w[0] % regCount
		for _, b := range w[1:] {
			c.store(c.ptr, b)
			c.advance()
		}
	}
	for i := range r {
		r[i] = c.regs[c.ptr]
		c.advance()
	}
	return nil
}

func (c *Chip) advance() {
	c.ptr++
	if c.ptr >= regCount {
		c.ptr = 0
	}
}

// store applies one register write, honouring the status register's
// clear-only flag bits: a flag stays set only if it was set AND the written
// byte keeps it set, so writing back a read value clears nothing extra.
// EN32kHz is plain read-write and BSY is read-only.
func (c *Chip) store(reg, b byte) {
	if reg == regStatus {
		old := c.regs[regStatus]
		c.regs[regStatus] = (old & b & statusFlagMask) | (b & 0x08) | (old & 0x04)
		return
	}
	c.regs[reg] = b
}

// Poke sets a register directly, bypassing bus semantics. Test setup only.
func (c *Chip) Poke(reg, value byte) {
	c.mu.Lock()
	c.regs[reg%regCount] = value
	c.mu.Unlock()
}

// Peek reads a register directly, bypassing bus semantics.
func (c *Chip) Peek(reg byte) byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs[reg%regCount]
}

// ContextBus adapts a Chip to the suspending bus contract. Cancellation is
// checked once up front; the in-memory transaction itself is instantaneous.
type ContextBus struct {
	Chip *Chip
}

func (b ContextBus) Tx(ctx context.Context, addr uint16, w, r []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.Chip.Tx(addr, w, r)
}
