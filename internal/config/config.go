// Package config loads the goruuvi-gateway YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	MQTT     MQTT   `yaml:"mqtt"`
	LogLevel string `yaml:"log_level"`
}

type MQTT struct {
	Broker   string `yaml:"broker"`
	Port     int    `yaml:"port"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Load reads and validates a configuration file, filling defaults for
// optional fields.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	cfg := Config{
		MQTT: MQTT{
			Broker:   "localhost",
			Port:     1883,
			ClientID: "goruuvi-gateway",
			Topic:    "ruuvi/#",
		},
		LogLevel: "info",
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MQTT.Broker == "" {
		return Config{}, fmt.Errorf("mqtt.broker must not be empty")
	}
	if cfg.MQTT.Port <= 0 || cfg.MQTT.Port > 65535 {
		return Config{}, fmt.Errorf("mqtt.port %d out of range", cfg.MQTT.Port)
	}
	if cfg.MQTT.Topic == "" {
		return Config{}, fmt.Errorf("mqtt.topic must not be empty")
	}
	return cfg, nil
}
