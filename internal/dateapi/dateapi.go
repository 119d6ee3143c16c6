// Package dateapi defines the Connect protocol of the date service. Messages
// are well-known protobuf types, so no generated code is needed.
package dateapi

import (
	"math"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/boundary"
	"github.com/osa030/icudate/internal/icu"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName            = "icudate.v1.DateService"
	GetDateStringProcedure = "/" + ServiceName + "/GetDateString"
)

// DateRequest asks for the long date of Year, Month (zero-based) and Day in
// Locale.
type DateRequest struct {
	Year   int
	Month  int
	Day    int
	Locale string
}

// Struct encodes the request.
func (r DateRequest) Struct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"year":   structpb.NewNumberValue(float64(r.Year)),
		"month":  structpb.NewNumberValue(float64(r.Month)),
		"day":    structpb.NewNumberValue(float64(r.Day)),
		"locale": structpb.NewStringValue(r.Locale),
	}}
}

// ParseRequest decodes a request. year, month and day are required 32-bit
// integers; locale is optional.
func ParseRequest(s *structpb.Struct) (DateRequest, error) {
	var r DateRequest
	var err error
	if r.Year, err = intField(s, "year"); err != nil {
		return r, err
	}
	if r.Month, err = intField(s, "month"); err != nil {
		return r, err
	}
	if r.Day, err = intField(s, "day"); err != nil {
		return r, err
	}

	if v, ok := s.GetFields()["locale"]; ok {
		str, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return r, errors.New(`field "locale" is not a string`)
		}
		r.Locale = str.StringValue
	}
	return r, nil
}

func intField(s *structpb.Struct, name string) (int, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, errors.Newf("missing field %q", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.Newf("field %q is not a number", name)
	}
	f := n.NumberValue
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errors.Newf("field %q is not a 32-bit integer", name)
	}
	return int(f), nil
}

// NewError converts a library failure to a Connect error carrying the
// status name as a detail.
func NewError(be *boundary.BoundaryError) *connect.Error {
	cerr := connect.NewError(connect.CodeInvalidArgument, errors.New(be.Error()))
	if detail, err := connect.NewErrorDetail(wrapperspb.String(be.Name())); err == nil {
		cerr.AddDetail(detail)
	}
	return cerr
}

// FromError recovers the library failure from a Connect error built by
// NewError.
func FromError(err error) (*boundary.BoundaryError, bool) {
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		return nil, false
	}
	for _, detail := range cerr.Details() {
		msg, derr := detail.Value()
		if derr != nil {
			continue
		}
		name, ok := msg.(*wrapperspb.StringValue)
		if !ok {
			continue
		}
		if code, ok := icu.ErrorCodeByName(name.GetValue()); ok {
			return &boundary.BoundaryError{Code: code}, true
		}
	}
	return nil, false
}
