// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads optional .env files, and
// github.com/caarlos0/env/v11, which maps variables onto struct fields through
// `env` and `envDefault` tags.
//
//	cfg := config.MustLoad[site.Config]()
//
// Every package that needs settings declares its own Config struct; the
// application loads each one it uses.
package config
