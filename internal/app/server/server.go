// Package server serves the date formatter over Connect.
package server

import (
	"context"
	"net"
	"net/http"
	"sync"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/boundary"
	"github.com/osa030/icudate/internal/bridge"
	"github.com/osa030/icudate/internal/dateapi"
	zlog "github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Server struct {
	config   *ServerConfig
	http     *http.Server
	listener net.Listener
	errCh    chan error
	wg       sync.WaitGroup
}

func NewServer(cfg *ServerConfig) *Server {
	mux := http.NewServeMux()
	mux.Handle(NewHandler())

	return &Server{
		config: cfg,
		http:   &http.Server{Handler: mux},
		errCh:  make(chan error, 1),
	}
}

// NewHandler returns the mount path and handler of the date service.
func NewHandler(opts ...connect.HandlerOption) (string, http.Handler) {
	return "/" + dateapi.ServiceName + "/", connect.NewUnaryHandler(
		dateapi.GetDateStringProcedure,
		getDateString,
		opts...,
	)
}

func getDateString(
	ctx context.Context,
	req *connect.Request[structpb.Struct],
) (*connect.Response[wrapperspb.StringValue], error) {
	dr, err := dateapi.ParseRequest(req.Msg)
	if err != nil {
		zlog.Warn().Msgf("Bad request: %v", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	text, err := bridge.DateString(dr.Year, dr.Month, dr.Day, dr.Locale)
	if err != nil {
		var be *boundary.BoundaryError
		if !errors.As(err, &be) {
			ex := bridge.Translate(err)
			return nil, connect.NewError(connect.CodeInternal, errors.New(ex.Message))
		}
		zlog.Info().Msgf("GetDateString(%d, %d, %d, %s): %v", dr.Year, dr.Month, dr.Day, dr.Locale, be)
		return nil, dateapi.NewError(be)
	}

	zlog.Debug().Msgf("GetDateString(%d, %d, %d, %s): %s", dr.Year, dr.Month, dr.Day, dr.Locale, text)
	return connect.NewResponse(wrapperspb.String(text)), nil
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() error {
	zlog.Info().Msgf("Starting server on %s...", s.config.Addr)

	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return errors.Wrapf(err, "error listening on %s", s.config.Addr)
	}
	s.listener = ln

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error().Msgf("Error serving: %v", err)
			s.handleError(err)
		}
	}()
	return nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.config.Addr
	}
	return s.listener.Addr().String()
}

func (s *Server) Stop() {
	zlog.Info().Msg("Stopping server...")

	ctx := context.Background()
	if s.config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()
	}
	if err := s.http.Shutdown(ctx); err != nil {
		zlog.Error().Msgf("Error shutting down: %v", err)
	}

	s.wg.Wait()
	zlog.Info().Msg("Server stopped")
}

func (s *Server) handleError(err error) {
	select {
	case s.errCh <- err:
	default:
	}
}

func (s *Server) GetError() <-chan error {
	return s.errCh
}
