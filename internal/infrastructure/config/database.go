package config

import (
	"fmt"
	"time"
)

// DatabaseConfig selects where game snapshots are stored
type DatabaseConfig struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`

	// sqlite file, or ":memory:"
	Path string `mapstructure:"path" validate:"required_if=Type sqlite"`

	// Postgres DSN; overrides the Postgres section when set
	URL string `mapstructure:"url"`

	Postgres PostgresConfig `mapstructure:"postgres"`

	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// PostgresConfig holds the discrete connection fields used when no URL is given
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
}

// DSN returns the connection string for the configured driver
func (c DatabaseConfig) DSN() string {
	switch {
	case c.Type == "sqlite":
		return c.Path
	case c.URL != "":
		return c.URL
	default:
		p := c.Postgres
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
	}
}
