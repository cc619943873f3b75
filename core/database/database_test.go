package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "park_ops",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3306, User: "sync", Password: "p@ss:w/rd", Name: "park_ops"}

	assert.Equal(t,
		"sync:p%40ss%3Aw%2Frd@tcp(db:3306)/park_ops?charset=utf8mb4&parseTime=True&loc=Local&timeout=10s&readTimeout=10s&writeTimeout=10s",
		cfg.DSN())

	cfg.TimeoutSeconds = 3
	assert.Equal(t, 3*time.Second, cfg.Timeout())
	assert.Contains(t, cfg.DSN(), "timeout=3s&readTimeout=3s&writeTimeout=3s")
}
