package session

import (
	"strings"
	"sync"
	"testing"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyframeStoreAddUpdateRemove(t *testing.T) {
	store := NewKeyframeStore(nil)
	params := animation.DefaultParameters()

	id, err := store.AddAt(1.5, params)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "kf-"))
	assert.Equal(t, 1, store.Len())

	err = store.Update(id, func(kf *animation.Keyframe) {
		kf.ID = "hijacked"
		kf.Timestamp = 2
		kf.Settings.Scale = 3
	})
	require.NoError(t, err)

	kfs := store.Snapshot()
	require.Len(t, kfs, 1)
	assert.Equal(t, id, kfs[0].ID, "ids are stable")
	assert.Equal(t, 2.0, kfs[0].Timestamp)
	assert.Equal(t, 3.0, kfs[0].Settings.Scale)

	require.NoError(t, store.Remove(id))
	assert.Equal(t, 0, store.Len())
	assert.ErrorIs(t, store.Remove(id), ErrKeyframeNotFound)
}

func TestKeyframeStoreRejectsInvalid(t *testing.T) {
	store := NewKeyframeStore(nil)

	_, err := store.AddAt(-1, animation.DefaultParameters())
	assert.Error(t, err)

	bad := animation.DefaultParameters()
	bad.Opacity = 2
	_, err = store.AddAt(1, bad)
	assert.Error(t, err)

	id, err := store.AddAt(1, animation.DefaultParameters())
	require.NoError(t, err)

	err = store.Update(id, func(kf *animation.Keyframe) { kf.Settings.ColorTint = "nope" })
	assert.Error(t, err)
	assert.Equal(t, "#ffffff", store.Snapshot()[0].Settings.ColorTint, "failed edits are discarded")

	assert.ErrorIs(t, store.Update("missing", func(*animation.Keyframe) {}), ErrKeyframeNotFound)
}

func TestKeyframeStoreSnapshotIsCopy(t *testing.T) {
	seed := []animation.Keyframe{{ID: "a", Timestamp: 0, Settings: animation.DefaultParameters()}}
	store := NewKeyframeStore(seed)

	seed[0].ID = "changed"
	snap := store.Snapshot()
	assert.Equal(t, "a", snap[0].ID)

	snap[0].Timestamp = 99
	assert.Equal(t, 0.0, store.Snapshot()[0].Timestamp)

	store.Clear()
	assert.Equal(t, 0, store.Len())
}

func TestKeyframeStoreConcurrentAdds(t *testing.T) {
	store := NewKeyframeStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.AddAt(float64(i), animation.DefaultParameters())
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, kf := range store.Snapshot() {
		seen[kf.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestIDGeneratorUnique(t *testing.T) {
	g := NewIDGenerator("x")
	a, b := g.Next(), g.Next()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "x-"))
	assert.True(t, strings.HasSuffix(b, "-2"))
}
