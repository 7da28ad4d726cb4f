package session

import (
	"testing"

	"github.com/ivlev/logo2video/internal/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraPathKeepsTimeOrder(t *testing.T) {
	path := NewCameraPath([]camera.Keyframe{
		{ID: "late", Time: 4, Pose: camera.Pose{FOV: 70}},
		{ID: "early", Time: 0, Pose: camera.Pose{FOV: 30}},
	})

	id, err := path.Add(2, camera.Pose{FOV: 50})
	require.NoError(t, err)

	kfs := path.Snapshot()
	require.Len(t, kfs, 3)
	assert.Equal(t, []string{"early", id, "late"}, []string{kfs[0].ID, kfs[1].ID, kfs[2].ID})

	require.NoError(t, path.Update("early", func(kf *camera.Keyframe) { kf.Time = 5 }))
	kfs = path.Snapshot()
	assert.Equal(t, "early", kfs[2].ID)

	_, err = path.Add(-1, camera.Pose{})
	assert.Error(t, err)
	assert.ErrorIs(t, path.Update("missing", func(*camera.Keyframe) {}), ErrKeyframeNotFound)
}

func TestCameraPathSelection(t *testing.T) {
	path := NewCameraPath(nil)
	id, err := path.Add(0, camera.Pose{FOV: 50})
	require.NoError(t, err)

	path.Select(id)
	assert.Equal(t, id, path.Selected())

	require.NoError(t, path.Remove(id))
	assert.Empty(t, path.Selected())
	assert.ErrorIs(t, path.Remove(id), ErrKeyframeNotFound)
}

func TestCameraPathRecordingState(t *testing.T) {
	path := NewCameraPath(nil)
	assert.Equal(t, Idle, path.State())

	path.StartRecording()
	assert.Equal(t, Recording, path.State())

	path.StopRecording()
	assert.Equal(t, Idle, path.State())
}

func TestCameraPathPreset(t *testing.T) {
	path := NewCameraPath([]camera.Keyframe{{ID: "old", Time: 1}})
	path.Select("old")

	preset, err := camera.NewPreset("dolly-zoom")
	require.NoError(t, err)
	path.ApplyPreset(preset, camera.PresetOptions{Duration: 4})

	kfs := path.Snapshot()
	require.Len(t, kfs, 3)
	assert.Empty(t, path.Selected())
	for _, kf := range kfs {
		assert.NotEmpty(t, kf.ID)
		assert.NotEqual(t, "old", kf.ID)
	}

	pose, ok := path.PoseAt(4)
	require.True(t, ok)
	assert.Equal(t, 70.0, pose.FOV)

	path.Clear()
	_, ok = path.PoseAt(1)
	assert.False(t, ok)
}
