package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AuthModeCookie = "cookie"
	AuthModeToken  = "token"
)

// Latency categories. Each business route belongs to exactly one; the
// configured delay for its category is applied before the handler runs.
const (
	CategoryLogin    = "login"
	CategoryMenu     = "menu"
	CategoryOverview = "overview"
	CategoryReserve  = "reserve"
	CategoryRooms    = "rooms"
)

type LatencySettings struct {
	LoginMs    int `yaml:"login_ms" json:"login_ms"`
	MenuMs     int `yaml:"menu_ms" json:"menu_ms"`
	OverviewMs int `yaml:"overview_ms" json:"overview_ms"`
	ReserveMs  int `yaml:"reserve_ms" json:"reserve_ms"`
	RoomsMs    int `yaml:"rooms_ms" json:"rooms_ms"`
}

// Settings is the startup shape of the service configuration. Latency, chaos
// and auth mode are mutable at runtime through /config; the rest is fixed for
// the process lifetime.
type Settings struct {
	Latency      LatencySettings `yaml:"latency" json:"latency"`
	ChaosPercent int             `yaml:"chaos_percent" json:"chaos_percent"`
	AuthMode     string          `yaml:"auth_mode" json:"auth_mode"`
	CatalogPath  string          `yaml:"catalog_path" json:"-"`
	ImageDir     string          `yaml:"image_dir" json:"-"`
}

func DefaultSettings() Settings {
	return Settings{
		AuthMode:    AuthModeCookie,
		CatalogPath: "rooms.yaml",
		ImageDir:    "static/img",
	}
}

// LoadSettings reads the YAML settings file. A missing file is not an error;
// the defaults apply.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse config: %w", err)
	}
	if s.AuthMode != AuthModeCookie && s.AuthMode != AuthModeToken {
		return s, fmt.Errorf("invalid auth_mode %q", s.AuthMode)
	}
	if s.ChaosPercent < 0 || s.ChaosPercent > 100 {
		return s, fmt.Errorf("chaos_percent must be 0-100, got %d", s.ChaosPercent)
	}
	return s, nil
}

// Runtime holds the live settings shared by every request handler. All reads
// and writes go through the mutex; nothing caches the values between requests.
type Runtime struct {
	mu sync.RWMutex
	s  Settings
}

func NewRuntime(s Settings) *Runtime {
	return &Runtime{s: s}
}

func (r *Runtime) Snapshot() Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s
}

func (r *Runtime) AuthMode() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.AuthMode
}

func (r *Runtime) SetAuthMode(mode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.AuthMode = mode
}

func (r *Runtime) ChaosPercent() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.ChaosPercent
}

func (r *Runtime) SetChaosPercent(pct int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.ChaosPercent = pct
}

// LatencyFor returns the configured artificial delay for a route category.
func (r *Runtime) LatencyFor(category string) time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ms := 0
	switch category {
	case CategoryLogin:
		ms = r.s.Latency.LoginMs
	case CategoryMenu:
		ms = r.s.Latency.MenuMs
	case CategoryOverview:
		ms = r.s.Latency.OverviewMs
	case CategoryReserve:
		ms = r.s.Latency.ReserveMs
	case CategoryRooms:
		ms = r.s.Latency.RoomsMs
	}
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}

func (r *Runtime) SetLatency(category string, ms int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch category {
	case CategoryLogin:
		r.s.Latency.LoginMs = ms
	case CategoryMenu:
		r.s.Latency.MenuMs = ms
	case CategoryOverview:
		r.s.Latency.OverviewMs = ms
	case CategoryReserve:
		r.s.Latency.ReserveMs = ms
	case CategoryRooms:
		r.s.Latency.RoomsMs = ms
	}
}
