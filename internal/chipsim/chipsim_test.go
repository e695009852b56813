package chipsim

import (
	"context"
	"errors"
	"testing"
)

func TestPointerAutoIncrement(t *testing.T) {
	c := New()
	if err := c.Tx(0x68, []byte{0x00, 0x45, 0x30, 0x14}, nil); err != nil {
		t.Fatal(err)
	}
	if got := c.Peek(0x00); got != 0x45 {
		t.Errorf("reg 0x00 = %#02x", got)
	}
	if got := c.Peek(0x02); got != 0x14 {
		t.Errorf("reg 0x02 = %#02x", got)
	}

	r := make([]byte, 3)
	if err := c.Tx(0x68, []byte{0x00}, r); err != nil {
		t.Fatal(err)
	}
	if r[0] != 0x45 || r[1] != 0x30 || r[2] != 0x14 {
		t.Errorf("read back %#02x", r)
	}
}

func TestPointerWrapsPastLastRegister(t *testing.T) {
	c := New()
	c.Poke(0x12, 0xAA)
	c.Poke(0x00, 0xBB)

	r := make([]byte, 2)
	if err := c.Tx(0x68, []byte{0x12}, r); err != nil {
		t.Fatal(err)
	}
	if r[0] != 0xAA || r[1] != 0xBB {
		t.Errorf("wrap read = %#02x, want [AA BB]", r)
	}
}

func TestStatusFlagBitsAreClearOnly(t *testing.T) {
	c := New()
	c.Poke(0x0F, 0x83)

	// Writing 1s must not set or keep-alive anything beyond what was set.
	if err := c.Tx(0x68, []byte{0x0F, 0xFF}, nil); err != nil {
		t.Fatal(err)
	}
	if got := c.Peek(0x0F); got&0x83 != 0x83 {
		t.Errorf("writing 1s cleared flags: %#02x", got)
	}

	// Writing 0 to one flag clears only that flag.
	if err := c.Tx(0x68, []byte{0x0F, 0x82}, nil); err != nil {
		t.Fatal(err)
	}
	if got := c.Peek(0x0F); got&0x83 != 0x82 {
		t.Errorf("selective clear failed: %#02x", got)
	}

	// A clear flag cannot be set over the bus.
	if err := c.Tx(0x68, []byte{0x0F, 0x01}, nil); err != nil {
		t.Fatal(err)
	}
	if got := c.Peek(0x0F); got&0x01 != 0 {
		t.Errorf("flag set over the bus: %#02x", got)
	}
}

func TestStatusEnableBitIsWritable(t *testing.T) {
	c := New()
	if err := c.Tx(0x68, []byte{0x0F, 0x08}, nil); err != nil {
		t.Fatal(err)
	}
	if got := c.Peek(0x0F); got != 0x08 {
		t.Errorf("EN32kHz not set: %#02x", got)
	}
	if err := c.Tx(0x68, []byte{0x0F, 0x00}, nil); err != nil {
		t.Fatal(err)
	}
	if got := c.Peek(0x0F); got != 0x00 {
		t.Errorf("EN32kHz not cleared: %#02x", got)
	}
}

func TestAddressMismatch(t *testing.T) {
	c := NewAt(0x69)
	if err := c.Tx(0x68, []byte{0x00}, nil); !errors.Is(err, ErrAddressMismatch) {
		t.Fatalf("err = %v, want ErrAddressMismatch", err)
	}
}

func TestContextBusHonorsCancellation(t *testing.T) {
	c := New()
	bus := ContextBus{Chip: c}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := bus.Tx(ctx, 0x68, []byte{0x00}, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if err := bus.Tx(context.Background(), 0x68, []byte{0x00, 0x55}, nil); err != nil {
		t.Fatal(err)
	}
	if got := c.Peek(0x00); got != 0x55 {
		t.Errorf("reg 0x00 = %#02x", got)
	}
}
