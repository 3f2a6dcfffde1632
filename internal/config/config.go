package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/mongotools/mongopass/internal/encoder"
)

type Config struct {
	// URI template settings
	Username string `mapstructure:"username" validate:"required"`
	Cluster  string `mapstructure:"cluster" validate:"required,hostname"`
	Database string `mapstructure:"database" validate:"required"`

	// Encoding settings
	Encoder string `mapstructure:"encoder" validate:"required"`
	ShowAll bool   `mapstructure:"showAll"`

	// Other settings
	LogLevel string `mapstructure:"logLevel"`

	Args []string
}

// Validate checks all configured values and reports every problem at
// once rather than stopping at the first one.
func (c *Config) Validate() error {
	var result *multierror.Error

	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fe := range validationErrors {
				result = multierror.Append(result,
					fmt.Errorf("invalid %s: failed on the '%s' rule", fe.Field(), fe.Tag()))
			}
		} else {
			result = multierror.Append(result, err)
		}
	}

	if _, ok := encoder.Encoders[c.Encoder]; !ok {
		result = multierror.Append(result,
			fmt.Errorf("unknown encoder: %s (available: %s)",
				c.Encoder, strings.Join(encoder.Names(), ", ")))
	}

	return result.ErrorOrNil()
}
