package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Prefs are the few user choices that survive restarts. Session tuning stays
// in Settings; this is only what a player toggles at runtime.
type Prefs struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"`
}

func DefaultPrefs() *Prefs {
	return &Prefs{
		SoundEnabled: true,
		SoundVolume:  0.8,
	}
}

const (
	prefsObject   = "settings"
	prefsProperty = "prefs"
)

// PrefsStore persists Prefs through gdata's per-platform data dir. A nil
// manager degrades to in-memory defaults so tests and sandboxed builds work
// without a writable home.
type PrefsStore struct {
	manager *gdata.Manager
	prefs   *Prefs
}

func NewPrefsStore(manager *gdata.Manager) *PrefsStore {
	st := &PrefsStore{
		manager: manager,
		prefs:   DefaultPrefs(),
	}
	if err := st.Load(); err != nil {
		log.Printf("config: load prefs: %v (using defaults)", err)
	}
	return st
}

func (st *PrefsStore) Prefs() *Prefs {
	return st.prefs
}

func (st *PrefsStore) Load() error {
	if st.manager == nil {
		return nil
	}
	if !st.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := st.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("config: load prefs: %w", err)
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("config: unmarshal prefs: %w", err)
	}
	st.prefs = &p
	return nil
}

func (st *PrefsStore) Save() error {
	if st.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st.prefs)
	if err != nil {
		return fmt.Errorf("config: marshal prefs: %w", err)
	}
	if err := st.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("config: save prefs: %w", err)
	}
	return nil
}
