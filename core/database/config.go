package database

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds configuration for the database connection.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"park_ops"`
	// TimeoutSeconds bounds connection setup and individual reads/writes.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Timeout returns the connection timeout, defaulting to 10 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DSN renders the go-sql-driver/mysql connection string. The password is
// URL-encoded so that special characters survive.
func (c Config) DSN() string {
	userInfo := url.UserPassword(c.User, c.Password).String()
	secs := int(c.Timeout() / time.Second)
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, c.Host, c.Port, c.Name, secs, secs, secs)
}
