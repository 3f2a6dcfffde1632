package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Username: "username",
		Cluster:  "cluster.mongodb.net",
		Database: "database",
		Encoder:  "URIComponent",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		errPart string
	}{
		{
			name:    "empty username",
			mutate:  func(c *Config) { c.Username = "" },
			errPart: "invalid Username",
		},
		{
			name:    "bad cluster host",
			mutate:  func(c *Config) { c.Cluster = "not a hostname" },
			errPart: "invalid Cluster",
		},
		{
			name:    "empty database",
			mutate:  func(c *Config) { c.Database = "" },
			errPart: "invalid Database",
		},
		{
			name:    "unknown encoder",
			mutate:  func(c *Config) { c.Encoder = "ROT13" },
			errPart: "unknown encoder: ROT13",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := validConfig()
			test.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), test.errPart)
		})
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()

	require.Error(t, err)
	for _, part := range []string{"Username", "Cluster", "Database", "unknown encoder"} {
		assert.Contains(t, err.Error(), part)
	}
}
