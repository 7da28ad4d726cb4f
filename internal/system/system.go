package system

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

var (
	AudioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".aac", ".flac"}
	LogoExtensions  = []string{".png", ".jpg", ".jpeg", ".svg", ".pdf"}
)

// DefaultWorkers returns the number of physical cores, falling back to the
// logical CPU count when the platform does not report them
func DefaultWorkers() int {
	n, err := cpu.Counts(false)
	if err != nil || n <= 0 {
		if err != nil {
			log.Printf("[!] Failed to count physical cores: %v", err)
		}
		return runtime.NumCPU()
	}
	return n
}

// FindLatestAudio returns the newest audio file in dir
func FindLatestAudio(dir string) (string, error) {
	return findLatest(dir, AudioExtensions, "audio files")
}

// FindLatestLogo returns the newest logo file in dir
func FindLatestLogo(dir string) (string, error) {
	return findLatest(dir, LogoExtensions, "logos")
}

func findLatest(dir string, extensions []string, what string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExtension(f.Name(), extensions) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no %s found in %s", what, dir)
	}

	return latestFile, nil
}

func hasExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
