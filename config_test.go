package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	expect := Config{
		Prompt:     ":",
		Verbose:    true,
		Scroll:     10,
		HangupFile: "/tmp/led.hup",
		LogLevel:   "debug",
	}
	tests := []struct {
		name    string
		content string
	}{
		{name: "config.toml", content: `
prompt = ":"
verbose = true
scroll = 10
hangup_file = "/tmp/led.hup"
log_level = "debug"
`},
		{name: "config.yaml", content: `
prompt: ":"
verbose: true
scroll: 10
hangup_file: /tmp/led.hup
log_level: debug
`},
		{name: "config.yml", content: `
prompt: ":"
verbose: true
scroll: 10
hangup_file: /tmp/led.hup
log_level: debug
`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := loadConfig(writeConfig(t, test.name, test.content), true)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(expect, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := loadConfig(path, false)
	if err != nil {
		t.Fatalf("expected a missing optional config to be ignored, got %v", err)
	}
	if diff := cmp.Diff(Config{}, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if _, err := loadConfig(path, true); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected %v, got %v", fs.ErrNotExist, err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, test := range []struct{ name, content string }{
		{name: "negative.toml", content: "scroll = -1\n"},
		{name: "broken.toml", content: "prompt = \n"},
		{name: "broken.yaml", content: "prompt: [\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, test.name, test.content), true); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := Config{Prompt: ">", Silent: true, Scroll: 5, HangupFile: "x.hup"}
	ed := NewEditor(cfg.options()...)
	if ed.Prompt() != ">" || !ed.silent || ed.scroll != 5 || ed.hup != "x.hup" {
		t.Fatalf("options not applied: prompt %q, silent %v, scroll %d, hup %q",
			ed.Prompt(), ed.silent, ed.scroll, ed.hup)
	}

	ed = NewEditor(Config{}.options()...)
	if ed.Prompt() != "" || ed.scroll != DefaultScroll || ed.hup != DefaultHangupFile {
		t.Fatalf("expected defaults, got prompt %q, scroll %d, hup %q", ed.Prompt(), ed.scroll, ed.hup)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(configEnv, "/etc/led.yaml")
	if got := defaultConfigPath(); got != "/etc/led.yaml" {
		t.Fatalf("expected %q, got %q", "/etc/led.yaml", got)
	}
}
