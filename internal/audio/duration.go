package audio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
)

// Duration returns the length of an audio file in seconds. WAV files are
// read directly; other formats are probed with ffprobe.
func Duration(path string) (float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return wavDuration(path)
	}
	return probeDuration(path)
}

func wavDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return 0, fmt.Errorf("%s: not a valid wav file", path)
	}
	dur, err := d.Duration()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return dur.Seconds(), nil
}

func probeDuration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, err
	}

	var duration float64
	_, err = fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &duration)
	if err != nil {
		return 0, err
	}

	return duration, nil
}
