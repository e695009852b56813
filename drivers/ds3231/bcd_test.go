package ds3231

import (
	"errors"
	"testing"

	"ds3231-go/errcode"
)

func TestBCDRoundTrip(t *testing.T) {
	for n := uint8(0); n <= 99; n++ {
		b, err := bcdEncode(n)
		if err != nil {
			t.Fatalf("bcdEncode(%d): %v", n, err)
		}
		if got := bcdDecode(b); got != n {
			t.Fatalf("bcdDecode(bcdEncode(%d)) = %d", n, got)
		}
	}
}

func TestBCDEncodeVectors(t *testing.T) {
	cases := []struct {
		n    uint8
		want uint8
	}{
		{0, 0x00},
		{9, 0x09},
		{10, 0x10},
		{45, 0x45},
		{59, 0x59},
		{99, 0x99},
	}
	for _, c := range cases {
		got, err := bcdEncode(c.n)
		if err != nil {
			t.Fatalf("bcdEncode(%d): %v", c.n, err)
		}
		if got != c.want {
			t.Errorf("bcdEncode(%d) = %#02x, want %#02x", c.n, got, c.want)
		}
	}
}

func TestBCDEncodeOutOfRange(t *testing.T) {
	for _, n := range []uint8{100, 101, 200, 255} {
		if _, err := bcdEncode(n); !errors.Is(err, ErrBCDRange) {
			t.Errorf("bcdEncode(%d): err = %v, want ErrBCDRange", n, err)
		}
	}
	_, err := bcdEncode(100)
	if errcode.Of(err) != errcode.InvalidInput {
		t.Errorf("code = %q, want %q", errcode.Of(err), errcode.InvalidInput)
	}
}
