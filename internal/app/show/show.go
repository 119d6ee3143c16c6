// Package show prints a date in several locales, one line per locale.
package show

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/osa030/icudate/internal/bridge"
	zlog "github.com/rs/zerolog/log"
)

// DateSource formats a date. month is zero-based.
type DateSource interface {
	GetDateString(ctx context.Context, year, month, day int, locale string) (string, error)
}

// Local formats in process through the host entry point.
type Local struct{}

func (Local) GetDateString(_ context.Context, year, month, day int, locale string) (string, error) {
	env := bridge.NewEnv()
	text := bridge.GetDateString(env, year, month, day, locale)
	if ex := env.ExceptionOccurred(); ex != nil {
		env.ExceptionClear()
		return "", errors.New(ex.Message)
	}
	return text, nil
}

// Run writes "locale: text" for every configured locale. A locale that fails
// is written with its error and does not stop the others.
func Run(ctx context.Context, w io.Writer, src DateSource, cfg *ShowConfig) error {
	failed := 0
	for _, locale := range cfg.Locales {
		text, err := src.GetDateString(ctx, cfg.Year, cfg.Month, cfg.Day, locale)
		if err != nil {
			zlog.Debug().Msgf("Locale[%s] failed: %v", locale, err)
			text = err.Error()
			failed++
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", locale, text); err != nil {
			return errors.Wrap(err, "error writing output")
		}
	}
	if failed == len(cfg.Locales) {
		return errors.Newf("all %d locales failed", failed)
	}
	return nil
}
