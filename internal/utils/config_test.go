package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	cfg := LoadConfig()
	if cfg.Thumbnail.DefaultWidth != 1200 || cfg.Thumbnail.DefaultHeight != 630 {
		t.Fatalf("unexpected default dimensions: %dx%d", cfg.Thumbnail.DefaultWidth, cfg.Thumbnail.DefaultHeight)
	}
	if cfg.Thumbnail.EndpointPrefix != "/thumb/" {
		t.Fatalf("unexpected endpoint prefix: %q", cfg.Thumbnail.EndpointPrefix)
	}
	if cfg.Thumbnail.MinWidth >= cfg.Thumbnail.MaxWidth {
		t.Fatalf("bad width bounds: [%d, %d]", cfg.Thumbnail.MinWidth, cfg.Thumbnail.MaxWidth)
	}
	if cfg.Logger.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logger.Level)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	p := writeConfig(t, `server:
  port: ":9000"
thumbnail:
  endpoint_prefix: "/t/"
  min_width: 10
  max_width: 500
api:
  title: "Custom Title"
`)
	t.Setenv("CONFIG_PATH", p)

	cfg := LoadConfig()
	if cfg.Server.Port != ":9000" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Thumbnail.EndpointPrefix != "/t/" {
		t.Fatalf("unexpected prefix: %q", cfg.Thumbnail.EndpointPrefix)
	}
	if cfg.Thumbnail.MinWidth != 10 || cfg.Thumbnail.MaxWidth != 500 {
		t.Fatalf("unexpected width bounds: [%d, %d]", cfg.Thumbnail.MinWidth, cfg.Thumbnail.MaxWidth)
	}
	if cfg.API.Title != "Custom Title" {
		t.Fatalf("unexpected title: %q", cfg.API.Title)
	}
	// Untouched sections keep their defaults.
	if cfg.Thumbnail.DefaultWidth != 1200 {
		t.Fatalf("default width lost: %d", cfg.Thumbnail.DefaultWidth)
	}
}

func TestLoadConfig_PanicsOnInvalidYAML(t *testing.T) {
	p := writeConfig(t, "thumbnail: [not a mapping")
	t.Setenv("CONFIG_PATH", p)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = LoadConfig()
}

func TestGetConfig_ReturnsLastLoaded(t *testing.T) {
	p := writeConfig(t, `api:
  title: "From File"
`)
	t.Setenv("CONFIG_PATH", p)

	_ = LoadConfig()
	if GetConfig().API.Title != "From File" {
		t.Fatalf("GetConfig out of sync: %q", GetConfig().API.Title)
	}
}
