package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ivlev/logo2video/internal/scene"
)

// ErrElementNotFound is returned when an id does not name a scene element
var ErrElementNotFound = errors.New("scene element not found")

// SceneStore holds the primitives placed around the logo
type SceneStore struct {
	mu       sync.RWMutex
	elements []scene.Element
	ids      *IDGenerator
}

// NewSceneStore creates a store seeded with saved elements
func NewSceneStore(initial []scene.Element) *SceneStore {
	s := &SceneStore{ids: NewIDGenerator("element")}
	s.elements = append(s.elements, initial...)
	return s
}

// Add places a new element of type t and returns its id
func (s *SceneStore) Add(t scene.ElementType) (string, error) {
	el := scene.NewElement(s.ids.Next(), t)
	if err := el.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.elements = append(s.elements, el)
	s.mu.Unlock()
	return el.ID, nil
}

// Update edits a copy of the element and stores it if it is still valid
func (s *SceneStore) Update(id string, edit func(*scene.Element)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.elements {
		if s.elements[i].ID != id {
			continue
		}
		el := s.elements[i]
		edit(&el)
		el.ID = id
		if err := el.Validate(); err != nil {
			return fmt.Errorf("scene element %s: %w", id, err)
		}
		s.elements[i] = el
		return nil
	}
	return fmt.Errorf("%w: %s", ErrElementNotFound, id)
}

// Remove deletes the element with the given id
func (s *SceneStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.elements {
		if s.elements[i].ID == id {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrElementNotFound, id)
}

func (s *SceneStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

// Snapshot returns a copy of the elements in insertion order
func (s *SceneStore) Snapshot() []scene.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]scene.Element, len(s.elements))
	copy(out, s.elements)
	return out
}
