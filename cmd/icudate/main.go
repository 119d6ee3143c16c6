// Package main provides the icudate entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/osa030/icudate/internal/app/server"
	"github.com/osa030/icudate/internal/app/show"
	"github.com/osa030/icudate/internal/dateclient"
	"github.com/osa030/icudate/internal/device"
	"github.com/osa030/icudate/internal/icu"
	"github.com/osa030/icudate/internal/logger"
	zlog "github.com/rs/zerolog/log"
)

const (
	defaultAddr      = "localhost:8080"
	defaultServerURL = "http://localhost:8080"
)

var (
	app     = kingpin.New("icudate", "Localized long dates")
	verbose = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Envar("VERBOSE").Bool()
	logfile = app.Flag("logfile", "Path to log file (default: stderr)").Default("stderr").Envar("LOGFILE").String()
	zone    = app.Flag("zone", "Time zone for building and formatting dates").Envar("ICUDATE_ZONE").String()

	showCmd      = app.Command("show", "Print a date in several locales (default)").Default()
	showLocales  = showCmd.Flag("locale", "Locale id, repeatable (default: sample locales)").Short('l').Strings()
	deviceLocale = showCmd.Flag("device-locale", "Also show the device locale").Bool()

	year, month, day int

	serveCmd     = app.Command("serve", "Serve dates over Connect")
	serveAddr    = serveCmd.Flag("addr", "Listen address").Default(defaultAddr).Envar("ICUDATE_ADDR").String()
	serveTimeout = serveCmd.Flag("shutdown-timeout", "Graceful shutdown timeout").Default("5s").Duration()

	queryCmd    = app.Command("query", "Print a date in several locales using a running server")
	queryServer = queryCmd.Flag("server", "Server address").Default(defaultServerURL).Envar("ICUDATE_SERVER_URL").String()
)

func init() {
	device.Init()

	today := time.Now()
	for _, cmd := range []*kingpin.CmdClause{showCmd, queryCmd} {
		cmd.Flag("year", "Year (default: today)").Default(strconv.Itoa(today.Year())).IntVar(&year)
		cmd.Flag("month", "Zero-based month (default: today)").Default(strconv.Itoa(int(today.Month()) - 1)).IntVar(&month)
		cmd.Flag("day", "Day of month (default: today)").Default(strconv.Itoa(today.Day())).IntVar(&day)
	}
	queryCmd.Flag("locale", "Locale id, repeatable (default: sample locales)").Short('l').StringsVar(showLocales)
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	closeLog, err := logger.Init(logger.Options{Verbose: *verbose, File: *logfile})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	code := run(command)
	_ = closeLog()
	os.Exit(code)
}

func run(command string) int {
	if *zone != "" {
		loc, err := time.LoadLocation(*zone)
		if err != nil {
			zlog.Error().Msgf("Unknown zone[%s]: %v", *zone, err)
			return 1
		}
		icu.SetDefaultZone(loc)
	}
	if l := device.Locale(); l != "" {
		zlog.Debug().Msgf("device locale:[%s]", l)
		icu.SetDefaultLocale(l)
	}

	switch command {
	case showCmd.FullCommand():
		return runShow(show.Local{})
	case queryCmd.FullCommand():
		return runShow(dateclient.NewClient(nil, *queryServer))
	case serveCmd.FullCommand():
		return runServe()
	}
	return 1
}

func runShow(src show.DateSource) int {
	cfg := show.ShowConfig{
		Year:    year,
		Month:   month,
		Day:     day,
		Locales: *showLocales,
	}
	if len(cfg.Locales) == 0 {
		cfg.Locales = append(cfg.Locales, show.SampleLocales...)
	}
	if *deviceLocale {
		cfg.Locales = append(cfg.Locales, icu.DefaultLocale())
	}

	if err := cfg.Validate(); err != nil {
		zlog.Error().Msgf("Config validation failed: %v", err)
		return 1
	}
	zlog.Debug().Msgf("config.date:[%d-%d-%d]", cfg.Year, cfg.Month, cfg.Day)
	zlog.Debug().Msgf("config.locales:%v", cfg.Locales)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := show.Run(ctx, os.Stdout, src, &cfg); err != nil {
		zlog.Error().Msgf("Failed to show dates: %v", err)
		return 1
	}
	return 0
}

func runServe() int {
	cfg := server.ServerConfig{
		Addr:            *serveAddr,
		ShutdownTimeout: *serveTimeout,
	}
	if err := cfg.Validate(); err != nil {
		zlog.Error().Msgf("Config validation failed: %v", err)
		zlog.Info().Msg("Please provide required settings via flags or environment variables.")
		return 1
	}

	srv := server.NewServer(&cfg)
	if err := srv.Start(); err != nil {
		zlog.Error().Msgf("Failed to start server: %v", err)
		return 1
	}
	defer srv.Stop()

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case err := <-srv.GetError():
		zlog.Error().Msgf("Server error: %v", err)
		return 1
	}
	return 0
}
