package audio

import "path/filepath"

// Selection is the soundtrack chosen in the editor: either a bundled track
// id or a user supplied file. A custom file wins when both are set.
type Selection struct {
	TrackID    string `yaml:"track_id,omitempty"`
	CustomPath string `yaml:"custom_path,omitempty"`
}

// Library maps bundled track ids to files under Dir
type Library struct {
	Dir string
}

// Resolve returns the file to use for sel, or false when nothing is selected
func (l Library) Resolve(sel Selection) (string, bool) {
	if sel.CustomPath != "" {
		return sel.CustomPath, true
	}
	if sel.TrackID != "" {
		return filepath.Join(l.Dir, sel.TrackID+".mp3"), true
	}
	return "", false
}
