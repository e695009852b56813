// Command selftest drives the ds3231 package against the in-memory chip
// emulator. It exists to exercise the full driver path on a host without
// hardware attached; every bus transaction is printed.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"ds3231-go/drivers/ds3231"
	"ds3231-go/internal/chipsim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "selftest:", err)
		os.Exit(1)
	}
	fmt.Println("selftest: ok")
}

func run() error {
	chip := chipsim.New()
	dev := ds3231.New(chip)
	dev.SetTrace(&ds3231.LineTracer{Print: func(s string) { fmt.Println(s) }})

	err := dev.Configure(ds3231.Config{
		TimeFormat:          ds3231.TwentyFourHour,
		SquareWaveFrequency: ds3231.SquareWave1Hz,
		InterruptControl:    ds3231.OutputAlarmInterrupt,
		Oscillator:          ds3231.OscillatorEnabled,
	})
	if err != nil {
		return err
	}

	want := ds3231.DateTime{
		Year: 2024, Month: time.March, Day: 15,
		Hour: 14, Minute: 30, Second: 45,
	}
	if err := dev.SetDateTime(want); err != nil {
		return err
	}
	got, err := dev.DateTime()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("datetime round trip: got %+v want %+v", got, want)
	}
	fmt.Printf("time %s (%s)\n", got.Time().Format(time.RFC3339), got.Weekday())

	alarm := ds3231.Alarm1{Mode: ds3231.Alarm1MatchTime, Hour: 6, Minute: 30}
	if err := dev.SetAlarm1(alarm); err != nil {
		return err
	}
	back, err := dev.Alarm1()
	if err != nil {
		return err
	}
	if back != alarm {
		return fmt.Errorf("alarm1 round trip: got %+v want %+v", back, alarm)
	}
	if err := dev.SetAlarm1Interrupt(true); err != nil {
		return err
	}

	// Simulate the alarm firing, then service it.
	chip.Poke(0x0F, 0x81)
	st, err := dev.Status()
	if err != nil {
		return err
	}
	fmt.Printf("status %08b\n", byte(st))
	if err := dev.ClearAlarm1Flag(); err != nil {
		return err
	}
	st, err = dev.Status()
	if err != nil {
		return err
	}
	if st.Has(ds3231.StatusAlarm1Flag) {
		return fmt.Errorf("alarm1 flag not cleared")
	}
	if !st.Has(ds3231.StatusOscStopped) {
		return fmt.Errorf("oscillator stop flag lost while clearing alarm1")
	}
	if err := dev.ClearOscillatorStopFlag(); err != nil {
		return err
	}

	chip.Poke(0x11, 0xE7)
	chip.Poke(0x12, 0xC0)
	temp, err := dev.Temperature()
	if err != nil {
		return err
	}
	fmt.Printf("temperature %d.%02d C\n", temp.Centicelsius()/100, abs(temp.Centicelsius()%100))

	// Same sequence through the suspending façade.
	ctx := context.Background()
	cdev := ds3231.NewContext(chipsim.ContextBus{Chip: chip}, ds3231.DefaultAddress)
	cgot, err := cdev.DateTime(ctx)
	if err != nil {
		return err
	}
	if cgot != got {
		return fmt.Errorf("context datetime: got %+v want %+v", cgot, got)
	}
	return nil
}

func abs(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}
