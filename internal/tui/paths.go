package tui

import (
	"os"
	"path/filepath"
	"strings"
)

// audioExts mirrors the file-picker filter of the desktop original.
var audioExts = map[string]bool{
	".wav": true, ".mp3": true, ".aiff": true, ".aif": true,
	".m4a": true, ".flac": true, ".aac": true,
}

// expandAudioPaths turns a user-entered path into concrete audio files: a
// file is taken as-is, a directory is scanned one level deep for known audio
// extensions. Unknown paths return nothing; the status line reports that.
func expandAudioPaths(path string) []string {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return []string{path}
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if audioExts[strings.ToLower(filepath.Ext(e.Name()))] {
			out = append(out, filepath.Join(path, e.Name()))
		}
	}
	return out
}
