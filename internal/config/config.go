// Package config loads the application configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // sqlite3 or postgres
		Source string `yaml:"source"`
	} `yaml:"database"`

	Auth struct {
		JWTSecret     string `yaml:"jwt_secret"`
		AdminEmail    string `yaml:"admin_email"`
		AdminPassword string `yaml:"admin_password"`
	} `yaml:"auth"`

	Restaurant struct {
		Name           string  `yaml:"name"`
		TaxRatePercent float64 `yaml:"tax_rate_percent"`
		Currency       string  `yaml:"currency"`
		Address        string  `yaml:"address"`
		Phone          string  `yaml:"phone"`
		Email          string  `yaml:"email"`
	} `yaml:"restaurant"`
}

// Load reads the configuration file and fills in defaults for anything
// left unset.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Database.Driver = "sqlite3"
	cfg.Database.Source = "restropos.db"
	cfg.Auth.JWTSecret = "termiz-restaurant-secret"
	cfg.Auth.AdminEmail = "admin@termizrestaurant.com"
	cfg.Auth.AdminPassword = "admin123"
	cfg.Restaurant.Name = "Termiz Restaurant"
	cfg.Restaurant.TaxRatePercent = 5.25
	cfg.Restaurant.Currency = "PKR"
	return cfg
}
