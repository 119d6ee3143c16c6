package dateclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/boundary"
	"github.com/osa030/icudate/internal/dateapi"
	"github.com/osa030/icudate/internal/icu"
	"github.com/stretchr/testify/suite"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ClientTestSuite struct {
	suite.Suite
	ts     *httptest.Server
	client *Client
	last   dateapi.DateRequest
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, &ClientTestSuite{})
}

// SetupTest serves a stub that answers by locale.
func (s *ClientTestSuite) SetupTest() {
	mux := http.NewServeMux()
	mux.Handle("/"+dateapi.ServiceName+"/", connect.NewUnaryHandler(
		dateapi.GetDateStringProcedure,
		func(_ context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[wrapperspb.StringValue], error) {
			dr, err := dateapi.ParseRequest(req.Msg)
			if err != nil {
				return nil, connect.NewError(connect.CodeInvalidArgument, err)
			}
			s.last = dr
			switch dr.Locale {
			case "unsupported":
				return nil, dateapi.NewError(&boundary.BoundaryError{Code: icu.U_UNSUPPORTED_ERROR})
			case "internal":
				return nil, connect.NewError(connect.CodeInternal, errors.New("boom"))
			}
			return connect.NewResponse(wrapperspb.String("January 1, 2024")), nil
		},
	))
	s.ts = httptest.NewServer(mux)
	s.client = NewClient(s.ts.Client(), s.ts.URL)
}

func (s *ClientTestSuite) TearDownTest() {
	s.ts.Close()
}

func (s *ClientTestSuite) TestGetDateString() {
	got, err := s.client.GetDateString(context.Background(), 2024, 0, 1, "en_US")
	s.Require().NoError(err)
	s.Equal("January 1, 2024", got)
	s.Equal(dateapi.DateRequest{Year: 2024, Month: 0, Day: 1, Locale: "en_US"}, s.last)
}

func (s *ClientTestSuite) TestRecoversBoundaryError() {
	got, err := s.client.GetDateString(context.Background(), 2024, 0, 1, "unsupported")
	s.Require().Error(err)
	s.Empty(got)

	var be *boundary.BoundaryError
	s.Require().True(errors.As(err, &be))
	s.Equal(icu.U_UNSUPPORTED_ERROR, be.Code)
	s.Equal("ICU Error: U_UNSUPPORTED_ERROR", err.Error())
}

func (s *ClientTestSuite) TestOtherErrorsAreWrapped() {
	_, err := s.client.GetDateString(context.Background(), 2024, 0, 1, "internal")
	s.Require().Error(err)

	var be *boundary.BoundaryError
	s.False(errors.As(err, &be))
	s.Equal(connect.CodeInternal, connect.CodeOf(err))
	s.Contains(err.Error(), "error date service")
	s.Equal(icu.U_INTERNAL_PROGRAM_ERROR, boundary.CodeOf(err))
}

func (s *ClientTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.client.GetDateString(ctx, 2024, 0, 1, "en_US")
	s.Require().Error(err)
	s.Equal(connect.CodeCanceled, connect.CodeOf(err))
}
