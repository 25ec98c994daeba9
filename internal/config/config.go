package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/stickypager/internal/sticky"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Header   HeaderConfig  `toml:"header"`
	NavBar   NavBarConfig  `toml:"navbar"`
	Reload   ReloadConfig  `toml:"reload"`
	UI       UIConfig      `toml:"ui"`
	Keybinds KeybindConfig `toml:"keybinds"`
	Pages    []PageConfig  `toml:"pages"`
}

type HeaderConfig struct {
	Title      string  `toml:"title"`
	MinHeight  float64 `toml:"min_height"`
	MaxHeight  float64 `toml:"max_height"`
	MaxStretch float64 `toml:"max_stretch"`
}

type NavBarConfig struct {
	Title  string  `toml:"title"`
	Height float64 `toml:"height"`
}

type ReloadConfig struct {
	SpinnerHeight     float64 `toml:"spinner_height"`
	AnimateThreshold  float64 `toml:"animate_threshold"`
	RelayoutOnFailure bool    `toml:"relayout_on_failure"`
	LatencyMS         int     `toml:"latency_ms"`
	FailEvery         int     `toml:"fail_every"` // every Nth reload fails, 0 = never
}

type UIConfig struct {
	Fullscreen bool    `toml:"fullscreen"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	SafeTop    float64 `toml:"safe_top"` // simulated safe-area top inset, e.g. a notch
	LastPage   int     `toml:"last_page"`
}

type KeybindConfig struct {
	NextPage   string `toml:"next_page"`
	PrevPage   string `toml:"prev_page"`
	Reload     string `toml:"reload"`
	ScrollTop  string `toml:"scroll_top"`
	Fullscreen string `toml:"fullscreen"`
}

type PageConfig struct {
	Title      string   `toml:"title"`
	Rows       int      `toml:"rows"`
	Reloadable bool     `toml:"reloadable"`
	Feeds      []string `toml:"feeds,omitempty"` // one section per feed; empty means one feed named after the page
}

// FeedNames returns the feeds backing the page.
func (p PageConfig) FeedNames() []string {
	if len(p.Feeds) == 0 {
		return []string{p.Title}
	}
	return p.Feeds
}

func DefaultConfig() *Config {
	return &Config{
		Header: HeaderConfig{
			Title:      "Sticky Pager",
			MinHeight:  64,
			MaxHeight:  200,
			MaxStretch: 60,
		},
		NavBar: NavBarConfig{
			Title:  "Sticky Pager",
			Height: 64,
		},
		Reload: ReloadConfig{
			SpinnerHeight:    sticky.DefaultSpinnerHeight,
			AnimateThreshold: sticky.DefaultAnimateThreshold,
			LatencyMS:        1200,
			FailEvery:        4,
		},
		UI: UIConfig{
			Width:  480,
			Height: 860,
		},
		Keybinds: KeybindConfig{
			NextPage:   "Right",
			PrevPage:   "Left",
			Reload:     "R",
			ScrollTop:  "T",
			Fullscreen: "F",
		},
		Pages: []PageConfig{
			{Title: "Feed", Rows: 20, Reloadable: true, Feeds: []string{"Top", "Latest"}},
			{Title: "Photos", Rows: 25, Reloadable: true},
			{Title: "About", Rows: 6},
		},
	}
}

// Metrics returns the header metrics described by the config.
func (c *Config) Metrics() sticky.HeaderMetrics {
	return sticky.HeaderMetrics{
		MinHeight:  c.Header.MinHeight,
		MaxHeight:  c.Header.MaxHeight,
		MaxStretch: c.Header.MaxStretch,
	}
}

// Validate rejects values that would break the header math or the window.
func (c *Config) Validate() error {
	if err := c.Metrics().Validate(); err != nil {
		return fmt.Errorf("%w: header: %v", ErrInvalid, err)
	}
	if c.NavBar.Height < 0 || c.NavBar.Height > c.Header.MaxHeight {
		return fmt.Errorf("%w: navbar height %v must be within [0, %v]", ErrInvalid, c.NavBar.Height, c.Header.MaxHeight)
	}
	if c.Reload.SpinnerHeight < 0 {
		return fmt.Errorf("%w: spinner height %v is negative", ErrInvalid, c.Reload.SpinnerHeight)
	}
	if c.Reload.AnimateThreshold < 0 || c.Reload.AnimateThreshold > 1 {
		return fmt.Errorf("%w: animate threshold %v must be within [0, 1]", ErrInvalid, c.Reload.AnimateThreshold)
	}
	if c.Reload.LatencyMS < 0 || c.Reload.FailEvery < 0 {
		return fmt.Errorf("%w: reload latency and fail_every must not be negative", ErrInvalid)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.UI.Width, c.UI.Height)
	}
	if c.UI.SafeTop < 0 || c.UI.SafeTop >= float64(c.UI.Height) {
		return fmt.Errorf("%w: safe_top %v must be within [0, %d)", ErrInvalid, c.UI.SafeTop, c.UI.Height)
	}
	if c.UI.LastPage < 0 {
		return fmt.Errorf("%w: last_page %d is negative", ErrInvalid, c.UI.LastPage)
	}
	for i, p := range c.Pages {
		if p.Rows < 0 {
			return fmt.Errorf("%w: page %d (%q) has %d rows", ErrInvalid, i, p.Title, p.Rows)
		}
	}
	return nil
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stickypager"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from ConfigPath, falling back to defaults when the
// file does not exist.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// An explicit pages list replaces the demo pages.
	cfg.Pages = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Pages == nil {
		cfg.Pages = DefaultConfig().Pages
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
