package dateclient

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/dateapi"
	zlog "github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Client struct {
	getDateString *connect.Client[structpb.Struct, wrapperspb.StringValue]
}

func NewClient(httpClient connect.HTTPClient, url string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		getDateString: connect.NewClient[structpb.Struct, wrapperspb.StringValue](
			httpClient,
			url+dateapi.GetDateStringProcedure,
		),
	}
}

// GetDateString asks the service for the long date of year, month
// (zero-based) and day in locale. Library failures are returned as
// *boundary.BoundaryError.
func (c *Client) GetDateString(ctx context.Context, year, month, day int, locale string) (string, error) {
	req := dateapi.DateRequest{Year: year, Month: month, Day: day, Locale: locale}
	res, err := c.getDateString.CallUnary(ctx, connect.NewRequest(req.Struct()))
	if err != nil {
		if be, ok := dateapi.FromError(err); ok {
			zlog.Debug().Msgf("GetDateString(%s) failed: %v", locale, be)
			return "", be
		}
		zlog.Error().Msgf("Error date service: %v", err)
		return "", errors.Wrap(err, "error date service")
	}
	text := res.Msg.GetValue()
	zlog.Debug().Msgf("GetDateString(%s) success: %s", locale, text)
	return text, nil
}
