// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
//	    MongoDB  string `env:"MONGODB_DATABASE" envDefault:"hirekit"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Parsed values are cached per type for the life of the process. Reset clears
// the cache, which tests use after changing the environment.
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile and can be matched with
// errors.Is.
package config
