// Package singleton implements the singleton pattern with a process-wide
// database configuration. Instance reads connection settings from the
// environment exactly once; every caller afterwards gets the same pointer,
// so the configuration stays consistent across modules.
package singleton

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds database connection settings read from the environment.
//
// Environment variables (with defaults):
//
//	DB_HOST     host of the database server (localhost)
//	DB_PORT     port of the database server (5432)
//	DB_USER     database user (postgres)
//	DB_PASSWORD user password (postgres)
//	DB_NAME     database name (mydatabase)
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

var (
	once     sync.Once
	instance *Config
)

// Instance returns the shared configuration, reading the environment on
// first use only.
func Instance() *Config {
	once.Do(func() {
		instance = loadFromEnv()
	})
	return instance
}

// ResetForTest clears the shared instance so the next Instance call reads
// the environment again. Test hook only.
func ResetForTest() {
	once = sync.Once{}
	instance = nil
}

func loadFromEnv() *Config {
	return &Config{
		Host:     envOr("DB_HOST", "localhost"),
		Port:     envIntOr("DB_PORT", 5432),
		User:     envOr("DB_USER", "postgres"),
		Password: envOr("DB_PASSWORD", "postgres"),
		Database: envOr("DB_NAME", "mydatabase"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// ConnString renders the configuration as a connection URI. The password is
// masked unless hidePassword is false.
func (c *Config) ConnString(hidePassword bool) string {
	password := c.Password
	if hidePassword {
		password = "****"
	}
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s", c.User, password, c.Host, c.Port, c.Database)
}

// ConnMap returns the connection parameters as a map.
func (c *Config) ConnMap() map[string]any {
	return map[string]any{
		"host":     c.Host,
		"port":     c.Port,
		"user":     c.User,
		"password": c.Password,
		"database": c.Database,
	}
}

// String renders the configuration with the password omitted.
func (c *Config) String() string {
	return fmt.Sprintf("Config(host=%s, port=%d, database=%s)", c.Host, c.Port, c.Database)
}
