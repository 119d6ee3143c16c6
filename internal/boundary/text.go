package boundary

import (
	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/icu"
	"github.com/puzpuzpuz/xsync/v3"
	zlog "github.com/rs/zerolog/log"
)

var liveBorrows = xsync.NewCounter()

// LiveBorrows returns the number of borrowed texts not yet released.
func LiveBorrows() int64 {
	return liveBorrows.Value()
}

// Text is a zero-terminated byte copy of a host string. It is valid until
// Release.
type Text struct {
	buf      []byte
	released bool
}

// BorrowText copies s into a zero-terminated buffer. The caller must call
// Release exactly once.
func BorrowText(s string) *Text {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	liveBorrows.Inc()
	return &Text{buf: buf}
}

// Bytes returns the buffer including its zero terminator, or nil once
// released.
func (t *Text) Bytes() []byte {
	return t.buf
}

func (t *Text) String() string {
	if t.released {
		return ""
	}
	return string(t.buf[:len(t.buf)-1])
}

// Release gives the buffer back. Releasing twice is logged and ignored.
func (t *Text) Release() {
	if t.released {
		zlog.Warn().Msg("Text already released")
		return
	}
	t.released = true
	t.buf = nil
	liveBorrows.Dec()
}

// Converter is a preflighting UTF-16 to UTF-8 conversion with the contract
// of icu.StrToUTF8.
type Converter func(dest []byte, src []uint16) (int, icu.ErrorCode)

// Marshaler turns library output into host strings.
type Marshaler struct {
	convert Converter
}

// NewMarshaler returns a Marshaler using convert, or icu.StrToUTF8 when
// convert is nil.
func NewMarshaler(convert Converter) *Marshaler {
	if convert == nil {
		convert = icu.StrToUTF8
	}
	return &Marshaler{convert: convert}
}

var defaultMarshaler = NewMarshaler(nil)

// ProduceText converts a zero-terminated UTF-16 buffer with the default
// Marshaler.
func ProduceText(buf []uint16) (string, error) {
	return defaultMarshaler.ProduceText(buf)
}

// ProduceText measures the UTF-8 size of buf, allocates exactly that much
// and converts into it. A fill pass that disagrees with the measuring pass
// is an assertion failure; the output is never truncated.
func (m *Marshaler) ProduceText(buf []uint16) (string, error) {
	n, status := m.convert(nil, buf)
	switch {
	case status == icu.U_BUFFER_OVERFLOW_ERROR:
	case status.Failure():
		return "", Check(status)
	case n == 0:
		return "", nil
	default:
		return "", errors.AssertionFailedf("measuring %d bytes reported %s", n, status.Name())
	}

	out := make([]byte, n)
	written, status := m.convert(out, buf)
	if status == icu.U_BUFFER_OVERFLOW_ERROR || (status.Success() && written != n) {
		return "", errors.AssertionFailedf("measured %d bytes, conversion needed %d (%s)", n, written, status.Name())
	}
	if status.Failure() {
		return "", Check(status)
	}
	return string(out), nil
}
