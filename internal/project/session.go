package project

import (
	"github.com/ivlev/logo2video/internal/audio"
	"github.com/ivlev/logo2video/internal/session"
)

// Open starts an editing session from the project
func (f *File) Open(player audio.Player) (*session.Controller, error) {
	c, err := session.NewController(f.Settings, f.Camera, player)
	if err != nil {
		return nil, err
	}
	c.Scene = session.NewSceneStore(f.Scene)
	return c, nil
}

// Capture copies the current state of a session into the project
func (f *File) Capture(c *session.Controller) {
	f.Settings = c.Settings()
	f.Camera = c.Camera.Snapshot()
	f.Scene = c.Scene.Snapshot()
}
