// Package ds3231 provides a protocol driver for the DS3231 real-time clock,
// translating between the chip's BCD-encoded register file and calendar
// time, alarm configuration, control/status state and temperature readings.
//
// Every operation is offered twice with identical semantics: on Device,
// which blocks the calling goroutine for the duration of each bus
// transaction, and on DeviceContext, which takes a context.Context and
// suspends at each transaction boundary. Both are thin adapters over the
// same codec and sequencing logic, so the two can not drift apart.
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/DS3231.pdf
package ds3231

// DefaultAddress is the 7-bit I2C address the chip is strapped to (1101_000b).
const DefaultAddress = 0x68

// RegAddr identifies one of the chip's addressable registers. Each value is
// the fixed byte offset defined by the datasheet.
type RegAddr uint8

const (
	RegSeconds       RegAddr = 0x00
	RegMinutes       RegAddr = 0x01
	RegHours         RegAddr = 0x02
	RegDay           RegAddr = 0x03
	RegDate          RegAddr = 0x04
	RegMonthCentury  RegAddr = 0x05
	RegYear          RegAddr = 0x06
	RegAlarm1Seconds RegAddr = 0x07
	RegAlarm1Minutes RegAddr = 0x08
	RegAlarm1Hours   RegAddr = 0x09
	RegAlarm1DayDate RegAddr = 0x0A
	RegAlarm2Minutes RegAddr = 0x0B
	RegAlarm2Hours   RegAddr = 0x0C
	RegAlarm2DayDate RegAddr = 0x0D
	RegControl       RegAddr = 0x0E
	RegStatus        RegAddr = 0x0F
	RegAgingOffset   RegAddr = 0x10
	RegTempMSB       RegAddr = 0x11
	RegTempLSB       RegAddr = 0x12
)

// Hours register (0x02, and the alarm hours registers).
const (
	hoursFormat12 = 1 << 6 // set = 12-hour encoding
	hoursPM20     = 1 << 5 // PM flag (12-hour) or twenty-hours bit (24-hour)
)

// Month/century register (0x05).
const monthCentury = 1 << 7 // set = year base 2100 instead of 2000

// Alarm registers: top bit of each register is the AxMy match-disable bit;
// bit 6 of the day/date register selects day-of-week over date-of-month.
const (
	alarmMask      = 1 << 7
	alarmDaySelect = 1 << 6
)

// ControlBits is the control register (0x0E) as a bitmask.
type ControlBits uint8

const (
	CtrlAlarm1IntEnable  ControlBits = 1 << 0 // A1IE
	CtrlAlarm2IntEnable  ControlBits = 1 << 1 // A2IE
	CtrlInterruptControl ControlBits = 1 << 2 // INTCN: set routes alarms to INT/SQW
	CtrlRateSelect1      ControlBits = 1 << 3 // RS1
	CtrlRateSelect2      ControlBits = 1 << 4 // RS2
	CtrlConvertTemp      ControlBits = 1 << 5 // CONV
	CtrlBatteryBackedSQW ControlBits = 1 << 6 // BBSQW
	CtrlDisableOsc       ControlBits = 1 << 7 // EOSC-bar: clear = oscillator running
)

func (b ControlBits) Has(flag ControlBits) bool { return b&flag != 0 }

// StatusBits is the status register (0x0F) as a bitmask.
type StatusBits uint8

const (
	StatusAlarm1Flag   StatusBits = 1 << 0 // A1F: alarm 1 matched
	StatusAlarm2Flag   StatusBits = 1 << 1 // A2F: alarm 2 matched
	StatusBusy         StatusBits = 1 << 2 // BSY: TCXO conversion in progress
	Status32kHzEnable  StatusBits = 1 << 3 // EN32kHz
	StatusOscStopped   StatusBits = 1 << 7 // OSF: oscillator stopped, time may be invalid
)

func (b StatusBits) Has(flag StatusBits) bool { return b&flag != 0 }
