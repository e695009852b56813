package ds3231

import "ds3231-go/errcode"

// Validation failures are rejected before any bus traffic. Decode failures
// mean the chip holds registers that do not form a representable value.
// Classify with errcode.Of: invalid_input, invalid_stored_value or
// transport_error.
var (
	ErrBCDRange         = &errcode.E{C: errcode.InvalidInput, Msg: "value not representable in BCD (must be < 100)"}
	ErrYearRange        = &errcode.E{C: errcode.InvalidInput, Msg: "year must be in 2000..2199"}
	ErrTimeRange        = &errcode.E{C: errcode.InvalidInput, Msg: "time component out of range"}
	ErrDateRange        = &errcode.E{C: errcode.InvalidInput, Msg: "date of month must be 1..31"}
	ErrDayRange         = &errcode.E{C: errcode.InvalidInput, Msg: "day of week must be 1..7"}
	ErrDayDateConflict  = &errcode.E{C: errcode.InvalidInput, Msg: "alarm cannot match both day of week and date of month"}
	ErrAlarmMode        = &errcode.E{C: errcode.InvalidInput, Msg: "unknown alarm mode"}
	ErrConfigValue      = &errcode.E{C: errcode.InvalidInput, Msg: "config field out of range"}

	ErrStoredTime  = &errcode.E{C: errcode.InvalidStored, Msg: "time registers hold an invalid value"}
	ErrStoredAlarm = &errcode.E{C: errcode.InvalidStored, Msg: "alarm registers hold an invalid value"}
)

// transportErr wraps a bus failure with the operation it interrupted. The
// cause is preserved through Unwrap and never retried here.
func transportErr(op string, err error) error {
	return &errcode.E{C: errcode.Transport, Op: op, Err: err}
}
