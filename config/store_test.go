package config

import "testing"

func TestPrefsStoreWithoutBackend(t *testing.T) {
	st := NewPrefsStore(nil)

	p := st.Prefs()
	if p == nil || !p.SoundEnabled || p.SoundVolume != 0.8 {
		t.Fatalf("defaults = %+v", p)
	}

	// no backend: persistence calls are harmless no-ops
	p.SoundEnabled = false
	if err := st.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := st.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Prefs().SoundEnabled {
		t.Fatal("in-memory prefs must keep the toggled value")
	}
}
