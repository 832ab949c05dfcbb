// Package config loads typed configuration structs from environment
// variables, with struct tags interpreted by caarlos0/env and a best-effort
// .env autoload via godotenv for local development.
//
// Each configuration type is parsed once per process and cached, so services
// can call Load for the same type from several places without re-reading the
// environment:
//
//	type HTTPConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
package config
