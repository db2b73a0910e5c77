package dto

import (
	"path/filepath"
	"strings"
)

// Task is one conversion: a source file, the directory the result goes to,
// and the parameters of its kind. Tasks cross the worker process boundary
// over net/rpc, so every field is exported and gob-encodable.
type Task struct {
	Kind           Kind
	SourcePath     string
	DestinationDir string

	// Quality is the JPEG quality for images.
	Quality int
	// FFmpegPath is the resolved transcoding tool for videos.
	FFmpegPath string
}

func NewImageTask(sourcePath, destinationDir string, quality int) *Task {
	return &Task{
		Kind:           KindImage,
		SourcePath:     sourcePath,
		DestinationDir: destinationDir,
		Quality:        quality,
	}
}

func NewVideoTask(sourcePath, destinationDir, ffmpegPath string) *Task {
	return &Task{
		Kind:           KindVideo,
		SourcePath:     sourcePath,
		DestinationDir: destinationDir,
		FFmpegPath:     ffmpegPath,
	}
}

// Stem is the source file name without its extension.
func (t *Task) Stem() string {
	base := filepath.Base(t.SourcePath)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DestinationPath is the deterministic output path: the source stem with the
// kind's extension, flat in the destination directory.
func (t *Task) DestinationPath() string {
	return filepath.Join(t.DestinationDir, t.Stem()+t.Kind.OutputExtension())
}
