// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: dotenv
// files are merged into the process environment first, then the environment
// is parsed into the struct using `env` and `envDefault` field tags.
//
// # Usage
//
//	var cfg slug.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	// explicit files must exist
//	err := config.Load(&cfg, "deploy/.env", "deploy/.env.local")
//
//	// only APP_ prefixed variables, e.g. APP_SLUG_SPACE
//	err = config.LoadPrefixed(&cfg, "APP_")
//
// Values already set in the environment are never overwritten by files.
//
// # Errors
//
// ErrParsingConfig and ErrLoadingEnvFile are joined with the underlying error
// and can be matched with errors.Is.
package config
