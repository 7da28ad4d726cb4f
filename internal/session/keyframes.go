package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ivlev/logo2video/internal/animation"
)

// ErrKeyframeNotFound is returned when an id does not name a stored keyframe
var ErrKeyframeNotFound = errors.New("keyframe not found")

// KeyframeStore owns the animation keyframes of an editing session.
// The interpolation engine only ever sees copies taken by Snapshot.
type KeyframeStore struct {
	mu        sync.RWMutex
	keyframes []animation.Keyframe
	ids       *IDGenerator
}

// NewKeyframeStore creates a store seeded with existing keyframes
func NewKeyframeStore(initial []animation.Keyframe) *KeyframeStore {
	s := &KeyframeStore{ids: NewIDGenerator("kf")}
	s.keyframes = append(s.keyframes, initial...)
	return s
}

// AddAt records params as a new keyframe at timestamp and returns its id
func (s *KeyframeStore) AddAt(timestamp float64, params animation.Parameters) (string, error) {
	if timestamp < 0 {
		return "", fmt.Errorf("negative timestamp %g", timestamp)
	}
	if err := params.Validate(); err != nil {
		return "", err
	}

	kf := animation.Keyframe{
		ID:        s.ids.Next(),
		Timestamp: timestamp,
		Settings:  params,
	}

	s.mu.Lock()
	s.keyframes = append(s.keyframes, kf)
	s.mu.Unlock()

	return kf.ID, nil
}

// Update replaces the keyframe with the given id in place. The edit function
// receives a copy; the result is validated before it is stored.
func (s *KeyframeStore) Update(id string, edit func(*animation.Keyframe)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.keyframes {
		if s.keyframes[i].ID != id {
			continue
		}
		kf := s.keyframes[i]
		edit(&kf)
		kf.ID = id
		if kf.Timestamp < 0 {
			return fmt.Errorf("keyframe %s: negative timestamp %g", id, kf.Timestamp)
		}
		if err := kf.Settings.Validate(); err != nil {
			return fmt.Errorf("keyframe %s: %w", id, err)
		}
		s.keyframes[i] = kf
		return nil
	}
	return fmt.Errorf("%w: %s", ErrKeyframeNotFound, id)
}

// Remove deletes the keyframe with the given id
func (s *KeyframeStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.keyframes {
		if s.keyframes[i].ID == id {
			s.keyframes = append(s.keyframes[:i], s.keyframes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrKeyframeNotFound, id)
}

// Clear drops every keyframe
func (s *KeyframeStore) Clear() {
	s.mu.Lock()
	s.keyframes = nil
	s.mu.Unlock()
}

// modify hands a copy of the keyframes to fn and stores what it returns,
// holding the lock throughout so no concurrent edit is lost
func (s *KeyframeStore) modify(fn func([]animation.Keyframe) ([]animation.Keyframe, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := append([]animation.Keyframe(nil), s.keyframes...)
	next, err := fn(current)
	if err != nil {
		return err
	}
	s.keyframes = append([]animation.Keyframe(nil), next...)
	return nil
}

// Len returns the number of stored keyframes
func (s *KeyframeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keyframes)
}

// Snapshot returns a copy of the keyframes in insertion order
func (s *KeyframeStore) Snapshot() []animation.Keyframe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]animation.Keyframe, len(s.keyframes))
	copy(out, s.keyframes)
	return out
}
