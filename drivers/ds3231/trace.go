package ds3231

import "ds3231-go/x/conv"

// TraceSink observes register transactions for diagnostics. It is never on
// the critical path of a result: the driver calls it after a transaction
// has already succeeded, and the default sink does nothing.
type TraceSink interface {
	RegisterRead(reg RegAddr, data []byte)
	RegisterWrite(reg RegAddr, data []byte)
}

type nopTrace struct{}

func (nopTrace) RegisterRead(RegAddr, []byte)  {}
func (nopTrace) RegisterWrite(RegAddr, []byte) {}

// LineTracer renders each transaction as one text line, e.g.
// "ds3231 rd @00 45 30 14". It avoids fmt so it stays usable on MCUs.
// Print defaults to the builtin println.
type LineTracer struct {
	Print func(string)
}

func (t *LineTracer) RegisterRead(reg RegAddr, data []byte)  { t.line("rd", reg, data) }
func (t *LineTracer) RegisterWrite(reg RegAddr, data []byte) { t.line("wr", reg, data) }

func (t *LineTracer) line(dir string, reg RegAddr, data []byte) {
	buf := make([]byte, 0, 12+3*len(data))
	buf = append(buf, "ds3231 "...)
	buf = append(buf, dir...)
	buf = append(buf, " @"...)
	buf = conv.AppendU8Hex(buf, uint8(reg))
	for _, b := range data {
		buf = append(buf, ' ')
		buf = conv.AppendU8Hex(buf, b)
	}
	if t.Print != nil {
		t.Print(string(buf))
		return
	}
	println(string(buf))
}
