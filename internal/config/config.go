package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "onair"

// DefaultStreamURL is the stream played when no url is configured.
const DefaultStreamURL = "http://stream.live.vc.bbcmedia.co.uk/bbc_world_service"

type Config struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	Stream        StreamConfig        `koanf:"stream"`
	Connectivity  ConnectivityConfig  `koanf:"connectivity"`
	Notifications NotificationsConfig `koanf:"notifications"`
	MPRIS         MPRISConfig         `koanf:"mpris"`
	Labels        LabelsConfig        `koanf:"labels"`
	Log           LogConfig           `koanf:"log"`
}

// StreamConfig holds the stream location and the preparation timings.
type StreamConfig struct {
	URL              string `koanf:"url"`
	AllowCleartext   *bool  `koanf:"allow_cleartext"`    // permit http:// (default: true)
	ProgressInterval int    `koanf:"progress_interval"`  // ms between loading ticks (default: 500)
	ProgressMaxTicks int    `koanf:"progress_max_ticks"` // ticks before giving up (default: 60)
	ElapsedInterval  int    `koanf:"elapsed_interval"`   // ms between elapsed updates (default: 500)
	ReadTimeout      int    `koanf:"read_timeout"`       // ms the server may stay silent before playback fails (default: 5000)
}

// ConnectivityConfig controls the network availability poll.
type ConnectivityConfig struct {
	ProbeAddrs   []string `koanf:"probe_addrs"`   // host:port routes to check, any one is enough (default: Cloudflare DNS over IPv4 and IPv6)
	PollInterval int      `koanf:"poll_interval"` // ms between checks while offline (default: 5000)
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// MPRISConfig holds media key integration settings.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// LabelsConfig holds every user-facing text of the screen.
type LabelsConfig struct {
	ShortName string `koanf:"short_name"`
	Loading   string `koanf:"loading"`
	NoNetwork string `koanf:"no_network"`
	Error     string `koanf:"error"`
	Timeout   string `koanf:"timeout"`
	StartPos  string `koanf:"start_pos"`
	Play      string `koanf:"play"`
	Pause     string `koanf:"pause"`
	Exit      string `koanf:"exit"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level"` // logrus level name (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/onair/onair.log
}

// Overrides are values set on the command line; they win over every file.
type Overrides struct {
	ConfigFile     string
	StreamURL      string
	LogLevel       string
	NoNotification bool
	NoMPRIS        bool
}

// LoadWith reads the config files and applies command line overrides.
func LoadWith(o Overrides) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()
	if o.ConfigFile != "" {
		configPaths = append(configPaths, expandPath(o.ConfigFile))
	}

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.apply(o)

	cfg.Stream.URL = strings.TrimSpace(cfg.Stream.URL)
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func (c *Config) apply(o Overrides) {
	if o.StreamURL != "" {
		c.Stream.URL = o.StreamURL
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.NoNotification {
		disabled := false
		c.Notifications.Enabled = &disabled
	}
	if o.NoMPRIS {
		disabled := false
		c.MPRIS.Enabled = &disabled
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/onair/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetStreamConfig returns the stream configuration with defaults applied.
func (c *Config) GetStreamConfig() StreamConfig {
	cfg := c.Stream

	if cfg.URL == "" {
		cfg.URL = DefaultStreamURL
	}
	if cfg.AllowCleartext == nil {
		allow := true
		cfg.AllowCleartext = &allow
	}
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = 500
	}
	if cfg.ProgressMaxTicks <= 0 {
		cfg.ProgressMaxTicks = 60
	}
	if cfg.ElapsedInterval <= 0 {
		cfg.ElapsedInterval = 500
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 5000
	}

	return cfg
}

// ProgressEvery returns the loading tick period.
func (s StreamConfig) ProgressEvery() time.Duration {
	return time.Duration(s.ProgressInterval) * time.Millisecond
}

// ReadTimeoutDuration returns how long a stalled stream is tolerated.
func (s StreamConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Millisecond
}

// ElapsedEvery returns the elapsed-time tick period.
func (s StreamConfig) ElapsedEvery() time.Duration {
	return time.Duration(s.ElapsedInterval) * time.Millisecond
}

// CleartextAllowed reports whether http:// stream URLs may be used.
func (s StreamConfig) CleartextAllowed() bool {
	return s.AllowCleartext == nil || *s.AllowCleartext
}

// GetConnectivityConfig returns the connectivity configuration with defaults applied.
func (c *Config) GetConnectivityConfig() ConnectivityConfig {
	cfg := c.Connectivity

	if len(cfg.ProbeAddrs) == 0 {
		cfg.ProbeAddrs = []string{"1.1.1.1:53", "[2606:4700:4700::1111]:53"}
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5000
	}

	return cfg
}

// PollEvery returns the connectivity poll period.
func (c ConnectivityConfig) PollEvery() time.Duration {
	return time.Duration(c.PollInterval) * time.Millisecond
}

// NotificationsEnabled returns true if the persistent notification is shown.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// MPRISEnabled returns true if media keys are exposed over MPRIS.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// GetLabels returns the user-facing texts with defaults applied.
func (c *Config) GetLabels() LabelsConfig {
	l := c.Labels

	if l.ShortName == "" {
		l.ShortName = "BBC WS"
	}
	if l.Loading == "" {
		l.Loading = "Connecting"
	}
	if l.NoNetwork == "" {
		l.NoNetwork = "Waiting for network connection"
	}
	if l.Error == "" {
		l.Error = "Unable to load the stream"
	}
	if l.Timeout == "" {
		l.Timeout = "Unable to connect"
	}
	if l.StartPos == "" {
		l.StartPos = "00:00"
	}
	if l.Play == "" {
		l.Play = "Play"
	}
	if l.Pause == "" {
		l.Pause = "Pause"
	}
	if l.Exit == "" {
		l.Exit = "Exit"
	}

	return l
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}

	return cfg
}
