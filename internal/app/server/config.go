package server

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ServerConfig struct {
	Addr            string        `validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `validate:"gte=0"`
}

// Validate validates the configuration.
func (c *ServerConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	return nil
}
