package dateapi

import (
	"testing"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/boundary"
	"github.com/osa030/icudate/internal/icu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestParseRequest(t *testing.T) {
	req := DateRequest{Year: 2024, Month: 0, Day: 1, Locale: "en_US"}
	got, err := ParseRequest(req.Struct())
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestParseRequestInvalid(t *testing.T) {
	testCases := map[string]map[string]any{
		"missing year":      {"month": 0, "day": 1},
		"fractional month":  {"year": 2024, "month": 0.5, "day": 1},
		"string day":        {"year": 2024, "month": 0, "day": "1"},
		"year out of range": {"year": 1e12, "month": 0, "day": 1},
		"locale not string": {"year": 2024, "month": 0, "day": 1, "locale": 7},
	}
	for name, fields := range testCases {
		t.Run(name, func(t *testing.T) {
			s, err := structpb.NewStruct(fields)
			require.NoError(t, err)
			_, err = ParseRequest(s)
			assert.Error(t, err)
		})
	}
}

func TestParseRequestDefaultLocale(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{"year": 2024, "month": 11, "day": 31})
	require.NoError(t, err)
	got, err := ParseRequest(s)
	require.NoError(t, err)
	assert.Equal(t, DateRequest{Year: 2024, Month: 11, Day: 31}, got)
}

func TestErrorRoundTrip(t *testing.T) {
	cerr := NewError(&boundary.BoundaryError{Code: icu.U_UNSUPPORTED_ERROR})
	assert.Equal(t, connect.CodeInvalidArgument, cerr.Code())
	assert.Equal(t, "ICU Error: U_UNSUPPORTED_ERROR", cerr.Message())

	be, ok := FromError(errors.Wrap(cerr, "calling service"))
	require.True(t, ok)
	assert.Equal(t, icu.U_UNSUPPORTED_ERROR, be.Code)

	_, ok = FromError(connect.NewError(connect.CodeUnavailable, errors.New("down")))
	assert.False(t, ok)
	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
}
