//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/logs/onair.log", filepath.Join(home, "logs", "onair.log")},
		{"absolute path unchanged", "/var/log/onair.log", "/var/log/onair.log"},
		{"relative path unchanged", "logs/onair.log", "logs/onair.log"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if paths[len(paths)-1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[len(paths)-1], "config.toml")
	}
	if filepath.Base(filepath.Dir(paths[0])) != "onair" {
		t.Errorf("first config path = %q, want it under an onair directory", paths[0])
	}
}

func TestGetStreamConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	s := cfg.GetStreamConfig()

	if s.URL != DefaultStreamURL {
		t.Errorf("URL = %q, want %q", s.URL, DefaultStreamURL)
	}
	if !s.CleartextAllowed() {
		t.Error("cleartext should be allowed by default")
	}
	if s.ProgressEvery() != 500*time.Millisecond {
		t.Errorf("ProgressEvery() = %v, want 500ms", s.ProgressEvery())
	}
	if s.ProgressMaxTicks != 60 {
		t.Errorf("ProgressMaxTicks = %d, want 60", s.ProgressMaxTicks)
	}
	if s.ElapsedEvery() != 500*time.Millisecond {
		t.Errorf("ElapsedEvery() = %v, want 500ms", s.ElapsedEvery())
	}
	if s.ReadTimeoutDuration() != 5*time.Second {
		t.Errorf("ReadTimeoutDuration() = %v, want 5s", s.ReadTimeoutDuration())
	}
}

func TestGetStreamConfig_InvalidValues(t *testing.T) {
	cfg := &Config{Stream: StreamConfig{
		ProgressInterval: -1,
		ProgressMaxTicks: 0,
		ElapsedInterval:  -500,
	}}
	s := cfg.GetStreamConfig()

	if s.ProgressInterval != 500 || s.ProgressMaxTicks != 60 || s.ElapsedInterval != 500 {
		t.Errorf("invalid values not replaced by defaults: %+v", s)
	}
}

func TestGetConnectivityConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	c := cfg.GetConnectivityConfig()

	want := []string{"1.1.1.1:53", "[2606:4700:4700::1111]:53"}
	if !slices.Equal(c.ProbeAddrs, want) {
		t.Errorf("ProbeAddrs = %q, want %q", c.ProbeAddrs, want)
	}
	if c.PollEvery() != 5*time.Second {
		t.Errorf("PollEvery() = %v, want 5s", c.PollEvery())
	}
}

func TestGetLabels_KeepsCustomValues(t *testing.T) {
	cfg := &Config{Labels: LabelsConfig{ShortName: "Radio", Timeout: "Gave up"}}
	l := cfg.GetLabels()

	if l.ShortName != "Radio" {
		t.Errorf("ShortName = %q, want %q", l.ShortName, "Radio")
	}
	if l.Timeout != "Gave up" {
		t.Errorf("Timeout = %q, want %q", l.Timeout, "Gave up")
	}
	if l.StartPos != "00:00" {
		t.Errorf("StartPos = %q, want %q", l.StartPos, "00:00")
	}
	if l.Play != "Play" || l.Pause != "Pause" || l.Exit != "Exit" {
		t.Errorf("action labels = %q/%q/%q", l.Play, l.Pause, l.Exit)
	}
}

func TestEnabledFlags(t *testing.T) {
	disabled := false
	tests := []struct {
		name   string
		config Config
		notify bool
		mpris  bool
	}{
		{"unset means enabled", Config{}, true, true},
		{
			"explicitly disabled",
			Config{
				Notifications: NotificationsConfig{Enabled: &disabled},
				MPRIS:         MPRISConfig{Enabled: &disabled},
			},
			false, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.NotificationsEnabled(); got != tt.notify {
				t.Errorf("NotificationsEnabled() = %v, want %v", got, tt.notify)
			}
			if got := tt.config.MPRISEnabled(); got != tt.mpris {
				t.Errorf("MPRISEnabled() = %v, want %v", got, tt.mpris)
			}
		})
	}
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
	return tmpDir
}

func TestLoad_EmptyConfig(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadWith(Overrides{})
	if err != nil {
		t.Fatalf("LoadWith(Overrides{}) error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadWith(Overrides{}) returned nil config")
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	dir := chdirTemp(t)

	content := `
icons = "unicode"

[stream]
url = "  https://example.com/live.mp3  "
allow_cleartext = false
progress_max_ticks = 10

[connectivity]
poll_interval = 1000

[labels]
short_name = "Example FM"

[log]
level = "debug"
file = "~/onair.log"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWith(Overrides{})
	if err != nil {
		t.Fatalf("LoadWith(Overrides{}) error = %v", err)
	}

	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "unicode")
	}
	s := cfg.GetStreamConfig()
	if s.URL != "https://example.com/live.mp3" {
		t.Errorf("URL = %q, want trimmed url", s.URL)
	}
	if s.CleartextAllowed() {
		t.Error("allow_cleartext = false was not honoured")
	}
	if s.ProgressMaxTicks != 10 {
		t.Errorf("ProgressMaxTicks = %d, want 10", s.ProgressMaxTicks)
	}
	if cfg.GetConnectivityConfig().PollEvery() != time.Second {
		t.Errorf("PollEvery() = %v, want 1s", cfg.GetConnectivityConfig().PollEvery())
	}
	if cfg.GetLabels().ShortName != "Example FM" {
		t.Errorf("ShortName = %q", cfg.GetLabels().ShortName)
	}
	if cfg.GetLogConfig().Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.GetLogConfig().Level)
	}
	if home, err := os.UserHomeDir(); err == nil {
		if cfg.Log.File != filepath.Join(home, "onair.log") {
			t.Errorf("Log.File = %q, want expanded path", cfg.Log.File)
		}
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	dir := chdirTemp(t)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[stream\nurl ="), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadWith(Overrides{}); err == nil {
		t.Error("LoadWith(Overrides{}) expected error for invalid TOML, got nil")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	dir := chdirTemp(t)

	extra := filepath.Join(dir, "extra.toml")
	if err := os.WriteFile(extra, []byte("[stream]\nurl = \"https://file.example/stream\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWith(Overrides{ConfigFile: extra})
	if err != nil {
		t.Fatalf("LoadWith() error = %v", err)
	}
	if cfg.GetStreamConfig().URL != "https://file.example/stream" {
		t.Errorf("URL = %q, want value from --config file", cfg.GetStreamConfig().URL)
	}

	cfg, err = LoadWith(Overrides{
		ConfigFile:     extra,
		StreamURL:      "https://flag.example/stream",
		LogLevel:       "warn",
		NoNotification: true,
		NoMPRIS:        true,
	})
	if err != nil {
		t.Fatalf("LoadWith() error = %v", err)
	}
	if cfg.GetStreamConfig().URL != "https://flag.example/stream" {
		t.Errorf("URL = %q, want flag value", cfg.GetStreamConfig().URL)
	}
	if cfg.GetLogConfig().Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.GetLogConfig().Level)
	}
	if cfg.NotificationsEnabled() || cfg.MPRISEnabled() {
		t.Error("--no-notify / --no-mpris overrides were not applied")
	}
}
