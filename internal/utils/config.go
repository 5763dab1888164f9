package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration loaded at startup.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    LoggerConfig    `yaml:"logger"`
	API       APIConfig       `yaml:"api"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
}

type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Prefork bool   `yaml:"prefork"`
}

type LoggerConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Level      string `yaml:"level"`
}

// APIConfig carries the service metadata served at the documentation root.
type APIConfig struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	Version        string `yaml:"version"`
	DocsURL        string `yaml:"docs_url"`
	TermsOfService string `yaml:"terms_of_service"`
	ContactName    string `yaml:"contact_name"`
	ContactEmail   string `yaml:"contact_email"`
	Website        string `yaml:"website"`
}

// ThumbnailConfig holds the endpoint prefix and the dimension bounds the
// renderer clamps against.
type ThumbnailConfig struct {
	EndpointPrefix string `yaml:"endpoint_prefix"`
	MinWidth       int    `yaml:"min_width"`
	MaxWidth       int    `yaml:"max_width"`
	MinHeight      int    `yaml:"min_height"`
	MaxHeight      int    `yaml:"max_height"`
	DefaultWidth   int    `yaml:"default_width"`
	DefaultHeight  int    `yaml:"default_height"`
}

// AppConfig holds the last configuration loaded by LoadConfig.
var AppConfig Config

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: ":8080",
		},
		Logger: LoggerConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Level:      "info",
		},
		API: APIConfig{
			Title:       "Thumbnail Generator",
			Description: "Generates gradient share thumbnails with centered text.",
			Version:     "1.0.0",
			DocsURL:     "/",
			Website:     "https://github.com/akamhy/thumbnail-generator",
		},
		Thumbnail: ThumbnailConfig{
			EndpointPrefix: "/thumb/",
			MinWidth:       100,
			MaxWidth:       1920,
			MinHeight:      100,
			MaxHeight:      1080,
			DefaultWidth:   1200,
			DefaultHeight:  630,
		},
	}
}

// LoadConfig reads the YAML config file named by CONFIG_PATH (default
// config.yaml) on top of the built-in defaults. A missing file is fine and
// yields the defaults; a file that exists but cannot be parsed is fatal.
func LoadConfig() Config {
	cfg := defaultConfig()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			panic(fmt.Sprintf("invalid config %s: %v", path, err))
		}
	}

	AppConfig = cfg
	return cfg
}

// GetConfig returns the configuration loaded by the last LoadConfig call.
func GetConfig() Config {
	return AppConfig
}
