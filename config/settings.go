package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig marks configuration that cannot produce a runnable session.
var ErrBadConfig = errors.New("config: invalid settings")

//go:embed settings.yaml
var defaultSettings []byte

//go:embed spawn.tengo
var defaultSpawnScript []byte

// Settings is the immutable per-session tuning. Loaded once at startup; in
// dev mode a watcher may replace the whole struct between sessions.
type Settings struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	Gravity          float64 `yaml:"gravity"`
	PlayerAccel      float64 `yaml:"player_accel"`
	Friction         float64 `yaml:"friction"`
	JumpVelocity     float64 `yaml:"jump_velocity"`
	JumpCutThreshold float64 `yaml:"jump_cut_threshold"`

	RunFrameMs   int `yaml:"run_frame_ms"`
	IdleFrameMs  int `yaml:"idle_frame_ms"`
	SlimeFrameMs int `yaml:"slime_frame_ms"`

	SlimeSpeedMin int `yaml:"slime_speed_min"`
	SlimeSpeedMax int `yaml:"slime_speed_max"`

	BaseHeight      int     `yaml:"base_height"`
	CloudBand       float64 `yaml:"cloud_band"`
	ScrollThreshold float64 `yaml:"scroll_threshold"`
	MinScroll       float64 `yaml:"min_scroll"`

	Layers Layers `yaml:"layers"`
}

// Layers are draw-order indices only; they carry no collision meaning.
type Layers struct {
	Background int `yaml:"background"`
	Cloud      int `yaml:"cloud"`
	Terrain    int `yaml:"terrain"`
	Enemy      int `yaml:"enemy"`
	Player     int `yaml:"player"`
}

// Default returns the embedded settings. The embedded file is part of the
// build, so a parse failure here is a programmer error.
func Default() *Settings {
	s, err := Parse(defaultSettings)
	if err != nil {
		panic("config: embedded settings.yaml: " + err.Error())
	}
	return s
}

// Load reads settings from a yaml file, falling back to the embedded
// defaults when path is empty.
func Load(path string) (*Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s, nil
}

// Parse unmarshals and validates settings.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	check := func(ok bool, field string) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrBadConfig, field)
	}
	for _, c := range []struct {
		ok    bool
		field string
	}{
		{s.Width > 0 && s.Height > 0, "width/height must be positive"},
		{s.Gravity >= 0, "gravity must not be negative"},
		{s.PlayerAccel > 0, "player_accel must be positive"},
		{s.Friction > 0 && s.Friction < 1, "friction must be in (0, 1)"},
		{s.JumpVelocity > 0, "jump_velocity must be positive"},
		{s.JumpCutThreshold > 0, "jump_cut_threshold must be positive"},
		{s.RunFrameMs > 0 && s.IdleFrameMs > 0 && s.SlimeFrameMs > 0, "frame intervals must be positive"},
		{s.SlimeSpeedMin >= 1 && s.SlimeSpeedMax >= s.SlimeSpeedMin, "slime speed range is inverted"},
		{s.BaseHeight > 0 && s.BaseHeight < s.Height, "base_height must fit the screen"},
		{s.CloudBand > 0 && s.CloudBand <= 1, "cloud_band must be in (0, 1]"},
		{s.ScrollThreshold > 0 && s.ScrollThreshold < 1, "scroll_threshold must be in (0, 1)"},
		{s.MinScroll >= 0, "min_scroll must not be negative"},
	} {
		if err := check(c.ok, c.field); err != nil {
			return err
		}
	}
	return nil
}

// SpawnScript returns the spawn-director script: the file at path when
// given, the embedded default otherwise.
func SpawnScript(path string) ([]byte, error) {
	if path == "" {
		return defaultSpawnScript, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read script %s: %w", path, err)
	}
	return data, nil
}
