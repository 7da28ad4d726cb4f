package project

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory
const AppName = "logo2video"

const projectsObject = "projects"

// Store autosaves projects into the per-user data directory. A Store without
// a manager keeps nothing and never fails.
type Store struct {
	manager *gdata.Manager
}

// NewStore wraps manager, which may be nil
func NewStore(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

// OpenStore opens the data directory for appName. When that is not possible
// the store degrades to a no-op instead of failing.
func OpenStore(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[!] Autosave unavailable: %v", err)
		return NewStore(nil)
	}
	return NewStore(manager)
}

// Enabled reports whether saves are persisted
func (s *Store) Enabled() bool {
	return s.manager != nil
}

// Save stores f under name
func (s *Store) Save(name string, f *File) error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := s.manager.SaveObjectProp(projectsObject, name, data); err != nil {
		return fmt.Errorf("failed to save project %s: %w", name, err)
	}
	return nil
}

// Load returns the project saved under name. It reports false when nothing
// was saved, including in degraded mode.
func (s *Store) Load(name string) (*File, bool, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(projectsObject, name) {
		return nil, false, nil
	}

	data, err := s.manager.LoadObjectProp(projectsObject, name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load project %s: %w", name, err)
	}

	f, err := decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("project %s: %w", name, err)
	}
	return f, true, nil
}
