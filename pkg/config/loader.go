package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by Load when no files are given. A missing default
// file is not an error.
const DefaultEnvFile = ".env"

// Load reads dotenv files into the process environment and parses the
// environment into v based on its `env` field tags.
//
// Explicit files must exist. Variables already present in the environment
// win over values from files, and earlier files win over later ones.
//
// Example:
//
//	var cfg slug.Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := loadEnvFiles(files); err != nil {
		return err
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadPrefixed works like Load but only considers variables starting with
// prefix, so one struct can be reused for several components.
func LoadPrefixed[T any](v *T, prefix string, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := loadEnvFiles(files); err != nil {
		return err
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		files = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
