package dto

// ScanRequest describes one directory scan.
type ScanRequest struct {
	InputDir  string
	OutputDir string
	Quality   int
	// FFmpegPath is empty when no video transcoding tool is available.
	FFmpegPath string
}

// ScanResult holds the tasks built from a scan and what was left out.
type ScanResult struct {
	Tasks []*Task
	// Ignored counts regular files with unrecognized extensions.
	Ignored int
	// SkippedVideos counts videos dropped because no tool is available.
	SkippedVideos int
}
