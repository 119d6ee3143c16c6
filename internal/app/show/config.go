package show

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SampleLocales are shown when no locale is given.
var SampleLocales = []string{
	"en_US",
	"ar_AE@calendar=islamic",
	"he_HE@calendar=hebrew",
	"bo_BO@calendar=buddhist",
}

type ShowConfig struct {
	Year    int
	Month   int
	Day     int
	Locales []string `validate:"min=1,dive,max=157"`
}

// Validate validates the configuration.
func (c *ShowConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	return nil
}
