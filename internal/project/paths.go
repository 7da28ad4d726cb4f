package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GeneratePath creates a timestamped project filename inside dir
func GeneratePath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("project_%s.yaml", timestamp))
}

// FindLatest finds the most recently modified project file in dir
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read projects directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var projects []candidate
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		projects = append(projects, candidate{filepath.Join(dir, entry.Name()), info.ModTime()})
	}

	if len(projects) == 0 {
		return "", fmt.Errorf("no project files found in %s", dir)
	}

	// Newest first
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].modTime.After(projects[j].modTime)
	})

	return projects[0].path, nil
}
