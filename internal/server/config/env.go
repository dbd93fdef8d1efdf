package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the environment variables the server understands.
// PORT is honored separately for parity with the original deployment, where
// only the port number was configurable.
type envConfig struct {
	Addr                  string        `env:"ADDRESS"`
	Port                  string        `env:"PORT"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY_DURATION"`
	CORSOrigin            string        `env:"CORS_ORIGIN"`
	S3RootUser            string        `env:"S3_ROOT_USER"`
	S3RootPassword        string        `env:"S3_ROOT_PASSWORD"`
	S3Bucket              string        `env:"S3_BUCKET"`
	S3Region              string        `env:"S3_REGION"`
	S3BaseEndpoint        string        `env:"S3_BASE_ENDPOINT"`
}

// parseEnv overlays values from the environment onto config. Unset variables
// leave the current values untouched. A malformed variable (e.g. an
// unparsable duration) panics, same as a broken JSON config file.
func parseEnv(config *Config) {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	if e.Addr != "" {
		config.Addr = e.Addr
	} else if e.Port != "" {
		config.Addr = ":" + e.Port
	}
	if e.DatabaseDSN != "" {
		config.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.TokenValidityDuration != 0 {
		config.TokenValidityDuration = e.TokenValidityDuration
	}
	if e.CORSOrigin != "" {
		config.CORSOrigin = e.CORSOrigin
	}
	if e.S3RootUser != "" {
		config.S3RootUser = e.S3RootUser
	}
	if e.S3RootPassword != "" {
		config.S3RootPassword = e.S3RootPassword
	}
	if e.S3Bucket != "" {
		config.S3Bucket = e.S3Bucket
	}
	if e.S3Region != "" {
		config.S3Region = e.S3Region
	}
	if e.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = e.S3BaseEndpoint
	}
}
