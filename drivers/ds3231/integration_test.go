package ds3231

import (
	"testing"
	"time"

	"ds3231-go/internal/chipsim"
)

// These tests run the driver against the register-file emulator instead of
// a scripted bus, so multi-step flows exercise real register state.

func TestAlarmServiceFlow(t *testing.T) {
	chip := chipsim.New()
	dev := New(chip)

	if err := dev.Configure(Config{InterruptControl: OutputAlarmInterrupt}); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetAlarm1(Alarm1{Mode: Alarm1MatchTime, Hour: 6, Minute: 30}); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetAlarm1Interrupt(true); err != nil {
		t.Fatal(err)
	}
	ctrl, err := dev.Control()
	if err != nil {
		t.Fatal(err)
	}
	if !ctrl.Has(CtrlAlarm1IntEnable) || !ctrl.Has(CtrlInterruptControl) {
		t.Fatalf("control = %#02x, alarm interrupt not armed", byte(ctrl))
	}

	// Both alarms fire and the oscillator-stop flag is latched.
	chip.Poke(byte(RegStatus), 0x83)

	st, err := dev.Status()
	if err != nil {
		t.Fatal(err)
	}
	if !st.Has(StatusAlarm1Flag) || !st.Has(StatusAlarm2Flag) || !st.Has(StatusOscStopped) {
		t.Fatalf("status = %#02x", byte(st))
	}

	if err := dev.ClearAlarm1Flag(); err != nil {
		t.Fatal(err)
	}
	st, err = dev.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st.Has(StatusAlarm1Flag) {
		t.Error("alarm 1 flag survived clear")
	}
	if !st.Has(StatusAlarm2Flag) || !st.Has(StatusOscStopped) {
		t.Errorf("sibling flags lost: status = %#02x", byte(st))
	}

	if err := dev.ClearAlarm2Flag(); err != nil {
		t.Fatal(err)
	}
	if err := dev.ClearOscillatorStopFlag(); err != nil {
		t.Fatal(err)
	}
	st, err = dev.Status()
	if err != nil {
		t.Fatal(err)
	}
	if byte(st)&0x83 != 0 {
		t.Errorf("flags remain: status = %#02x", byte(st))
	}
}

func TestNowSetRoundTrip(t *testing.T) {
	chip := chipsim.New()
	dev := New(chip)

	want := time.Date(2105, time.July, 4, 9, 15, 0, 0, time.UTC)
	if err := dev.Set(want); err != nil {
		t.Fatal(err)
	}
	got, err := dev.Now()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	// Century bit survives in the month register.
	if chip.Peek(byte(RegMonthCentury))&0x80 == 0 {
		t.Error("century bit not latched for year 2105")
	}
}

func Test32kHzOutputToggle(t *testing.T) {
	chip := chipsim.New()
	dev := New(chip)

	if err := dev.Set32kHzOutput(true); err != nil {
		t.Fatal(err)
	}
	st, err := dev.Status()
	if err != nil {
		t.Fatal(err)
	}
	if !st.Has(Status32kHzEnable) {
		t.Fatalf("status = %#02x, EN32kHz clear", byte(st))
	}
	if err := dev.Set32kHzOutput(false); err != nil {
		t.Fatal(err)
	}
	st, err = dev.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st.Has(Status32kHzEnable) {
		t.Fatalf("status = %#02x, EN32kHz still set", byte(st))
	}
}

func TestAgingOffsetRoundTrip(t *testing.T) {
	chip := chipsim.New()
	dev := New(chip)

	for _, v := range []int8{-128, -1, 0, 1, 127} {
		if err := dev.SetAgingOffset(v); err != nil {
			t.Fatal(err)
		}
		got, err := dev.AgingOffset()
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("aging offset %d round-tripped to %d", v, got)
		}
	}
}
