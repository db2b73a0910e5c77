package dto

import (
	"fmt"
	"time"
)

// Outcome is the result of one task. On failure Message is self-describing:
// the source path followed by the cause.
type Outcome struct {
	Success         bool
	SourcePath      string
	DestinationPath string
	Message         string
	Duration        time.Duration
}

func Succeeded(sourcePath, destinationPath string, duration time.Duration) *Outcome {
	return &Outcome{
		Success:         true,
		SourcePath:      sourcePath,
		DestinationPath: destinationPath,
		Duration:        duration,
	}
}

func Failed(sourcePath string, cause string) *Outcome {
	return &Outcome{
		SourcePath: sourcePath,
		Message:    fmt.Sprintf("%s: %s", sourcePath, cause),
	}
}
