// Package config provides configuration management for Kinship.
// It loads settings from environment variables with the KINSHIP_ prefix
// and provides sensible defaults for all configuration options.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration settings for the kinship CLI.
type Config struct {
	Tree   TreeConfig
	Engine EngineConfig
	Output OutputConfig
}

// TreeConfig contains tree document settings.
type TreeConfig struct {
	Path string // Path to the YAML tree document (default: ./tree.yaml)
}

// EngineConfig contains traversal defaults passed to the engine.
type EngineConfig struct {
	MaxGenerations int // Default generation cutoff for queries, 0 = unlimited (default: 0)
	MaxPersons     int // Traversal person cap, 0 = engine default (default: 0)
}

// OutputConfig contains result formatting settings.
type OutputConfig struct {
	NeutralLabels bool // Use gender-neutral relationship labels (default: false)
}

// LoadConfig loads configuration from environment variables with
// sensible defaults. All environment variables use the KINSHIP_ prefix.
func LoadConfig() (*Config, error) {
	return &Config{
		Tree: TreeConfig{
			Path: getEnv("KINSHIP_TREE_PATH", "./tree.yaml"),
		},
		Engine: EngineConfig{
			MaxGenerations: getEnvInt("KINSHIP_MAX_GENERATIONS", 0),
			MaxPersons:     getEnvInt("KINSHIP_MAX_PERSONS", 0),
		},
		Output: OutputConfig{
			NeutralLabels: getEnvBool("KINSHIP_NEUTRAL_LABELS", false),
		},
	}, nil
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value.
// If the environment variable exists but cannot be parsed as an integer,
// it returns the default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value.
// It recognizes "true", "1", "yes" as true and "false", "0", "no" as false (case-insensitive).
// If the environment variable exists but cannot be parsed as a boolean,
// it returns the default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch value {
		case "true", "1", "yes", "True", "TRUE", "Yes", "YES":
			return true
		case "false", "0", "no", "False", "FALSE", "No", "NO":
			return false
		}
	}
	return defaultValue
}
