// Package config loads environment variables into typed configuration
// structs. A .env file in the working directory is loaded once per process
// before the first parse, which keeps local development friction-free while
// production relies on real environment variables.
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
package config
