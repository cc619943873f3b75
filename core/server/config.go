package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReadTimeoutSeconds bounds how long a request may take to be read.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"15"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
