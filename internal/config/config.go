package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

type ServerConfig struct {
	RunAddress          string
	DatabaseDSN         string
	Secret              []byte
	AuthCookieExpiresIn int
}

// envConfig keeps the secret a string while parsing; env treats a []byte
// field as a list of numbers.
type envConfig struct {
	RunAddress          string `env:"RUN_ADDRESS"`
	DatabaseDSN         string `env:"DATABASE_URI"`
	Secret              string `env:"AUTH_SECRET"`
	AuthCookieExpiresIn int    `env:"AUTH_COOKIE_EXPIRES_SECONDS" envDefault:"86400"`
}

func NewConfig() (*ServerConfig, error) {
	var fromEnv envConfig
	err := env.Parse(&fromEnv)
	if err != nil {
		return nil, err
	}

	var commandLineParams envConfig

	flag.StringVar(&commandLineParams.RunAddress, "a", "localhost:8080", "Base address to listen on")
	flag.StringVar(&commandLineParams.DatabaseDSN, "d", "postgres://postgres@localhost:5432/repairshop?sslmode=disable", "Database DSN")
	flag.StringVar(&commandLineParams.Secret, "s", "", "Secret used to sign auth cookies")
	flag.Parse()

	if fromEnv.RunAddress == "" {
		fromEnv.RunAddress = commandLineParams.RunAddress
	}
	if fromEnv.DatabaseDSN == "" {
		fromEnv.DatabaseDSN = commandLineParams.DatabaseDSN
	}
	if fromEnv.Secret == "" {
		fromEnv.Secret = commandLineParams.Secret
	}

	return &ServerConfig{
		RunAddress:          fromEnv.RunAddress,
		DatabaseDSN:         fromEnv.DatabaseDSN,
		Secret:              []byte(fromEnv.Secret),
		AuthCookieExpiresIn: fromEnv.AuthCookieExpiresIn,
	}, nil
}
