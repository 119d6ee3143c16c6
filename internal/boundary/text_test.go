package boundary

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/icu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowText(t *testing.T) {
	before := LiveBorrows()

	text := BorrowText("ar_AE@calendar=islamic")
	assert.Equal(t, before+1, LiveBorrows())
	assert.Equal(t, "ar_AE@calendar=islamic", text.String())
	b := text.Bytes()
	require.Len(t, b, len("ar_AE@calendar=islamic")+1)
	assert.Equal(t, byte(0), b[len(b)-1])

	text.Release()
	text.Release()
	assert.Equal(t, before, LiveBorrows())
	assert.Empty(t, text.String())
	assert.Nil(t, text.Bytes())
}

func TestProduceText(t *testing.T) {
	testCases := []struct {
		name string
		in   []uint16
		want string
	}{
		{name: "ascii", in: icu.UString("January 1, 2024"), want: "January 1, 2024"},
		{name: "terminated", in: append(icu.UString("1 января 2024 г."), 0, 0), want: "1 января 2024 г."},
		{name: "supplementary", in: icu.UString("🗓 2024"), want: "🗓 2024"},
		{name: "empty", in: nil, want: ""},
		{name: "only terminator", in: []uint16{0}, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ProduceText(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProduceTextInvalidInput(t *testing.T) {
	_, err := ProduceText([]uint16{'a', 0xD800})
	require.Error(t, err)
	assert.Equal(t, icu.U_INVALID_CHAR_FOUND, CodeOf(err))
	assert.Equal(t, "ICU Error: U_INVALID_CHAR_FOUND", err.Error())
}

// recordingConverter wraps icu.StrToUTF8 and records the capacity of every
// fill pass.
type recordingConverter struct {
	capacities []int
}

func (r *recordingConverter) convert(dest []byte, src []uint16) (int, icu.ErrorCode) {
	if dest != nil {
		r.capacities = append(r.capacities, len(dest))
	}
	return icu.StrToUTF8(dest, src)
}

func TestProduceTextAllocatesMeasuredCapacity(t *testing.T) {
	rec := &recordingConverter{}
	m := NewMarshaler(rec.convert)

	got, err := m.ProduceText(icu.UString("יום שני"))
	require.NoError(t, err)
	assert.Equal(t, "יום שני", got)
	assert.Equal(t, []int{len("יום שני")}, rec.capacities)
}

func TestProduceTextMismatch(t *testing.T) {
	testCases := []struct {
		name    string
		convert Converter
	}{
		{
			name: "fill needs more than measured",
			convert: func(dest []byte, src []uint16) (int, icu.ErrorCode) {
				if dest == nil {
					return 3, icu.U_BUFFER_OVERFLOW_ERROR
				}
				return 5, icu.U_BUFFER_OVERFLOW_ERROR
			},
		},
		{
			name: "fill writes less than measured",
			convert: func(dest []byte, src []uint16) (int, icu.ErrorCode) {
				if dest == nil {
					return 8, icu.U_BUFFER_OVERFLOW_ERROR
				}
				return 4, icu.U_ZERO_ERROR
			},
		},
		{
			name: "measure pass does not report a size",
			convert: func(dest []byte, src []uint16) (int, icu.ErrorCode) {
				return 4, icu.U_ZERO_ERROR
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewMarshaler(tc.convert).ProduceText(icu.UString("abc"))
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.IsAssertionFailure(err), "%+v", err)
			assert.Equal(t, icu.U_INTERNAL_PROGRAM_ERROR, CodeOf(err))
		})
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(icu.U_ZERO_ERROR))
	assert.NoError(t, Check(icu.U_USING_DEFAULT_WARNING))

	err := Check(icu.U_ILLEGAL_ARGUMENT_ERROR)
	require.Error(t, err)
	assert.Equal(t, "ICU Error: U_ILLEGAL_ARGUMENT_ERROR", err.Error())

	var be *BoundaryError
	require.True(t, errors.As(errors.Wrap(err, "building instant"), &be))
	assert.Equal(t, "U_ILLEGAL_ARGUMENT_ERROR", be.Name())
	assert.Equal(t, icu.U_ZERO_ERROR, CodeOf(nil))
}
