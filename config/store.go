package config

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/petridecus/viso/anim"
)

// Storage location inside the gdata app dir
const (
	prefsObject   = "prefs"
	prefsProperty = "animation"
)

// Store persists the animation preference table across sessions. A nil
// gdata manager degrades to in-memory only: loads yield defaults and
// saves quietly do nothing
type Store struct {
	manager *gdata.Manager
	prefs   *anim.Preferences
}

// NewStore creates a store and loads any saved preferences. A load
// failure is not fatal; the store starts from defaults and reports the
// error for logging
func NewStore(manager *gdata.Manager) (*Store, error) {
	s := &Store{
		manager: manager,
		prefs:   anim.DefaultPreferences(),
	}
	err := s.Load()
	return s, err
}

// Preferences returns the current in-memory table
func (s *Store) Preferences() *anim.Preferences {
	return s.prefs
}

// SetPreferences replaces the in-memory table. Call Save to persist
func (s *Store) SetPreferences(prefs *anim.Preferences) {
	if prefs != nil {
		s.prefs = prefs
	}
}

// Load reads saved preferences, falling back to defaults when nothing
// is stored or the payload cannot be parsed
func (s *Store) Load() error {
	if s.manager == nil {
		s.prefs = anim.DefaultPreferences()
		return nil
	}

	if !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		s.prefs = anim.DefaultPreferences()
		return nil
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		s.prefs = anim.DefaultPreferences()
		return fmt.Errorf("load animation prefs: %w", err)
	}

	var stored Prefs
	if err := yaml.Unmarshal(data, &stored); err != nil {
		s.prefs = anim.DefaultPreferences()
		return fmt.Errorf("unmarshal animation prefs: %w", err)
	}

	prefs, err := stored.Build()
	if err != nil {
		s.prefs = anim.DefaultPreferences()
		return fmt.Errorf("build animation prefs: %w", err)
	}

	s.prefs = prefs
	return nil
}

// Save writes the current table. Nil manager saves nowhere and reports
// no error
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(FromPreferences(s.prefs))
	if err != nil {
		return fmt.Errorf("marshal animation prefs: %w", err)
	}

	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save animation prefs: %w", err)
	}
	return nil
}
