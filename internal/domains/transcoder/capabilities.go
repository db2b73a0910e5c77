package transcoder

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
)

const defaultFFmpegName = "ffmpeg"

// Capabilities detects the video transcoding tool. A configured path must
// resolve on its own; otherwise ffmpeg is looked up in PATH. Absence is
// reported as an empty FFmpegPath, never as an error.
func (t *Transcoder) Capabilities() *dto.Capabilities {
	configured := ""
	if config := t.app.Config(); config != nil {
		configured = config.Transcoding.FFmpeg
	}

	path, err := lookupFFmpeg(configured)
	if err != nil {
		t.app.Logger().WithError(err).Warn("No ffmpeg available, video files will be skipped")

		return new(dto.Capabilities)
	}

	t.app.Logger().WithField("ffmpeg", path).Debug("Found ffmpeg")

	return &dto.Capabilities{FFmpegPath: path}
}

func lookupFFmpeg(configured string) (string, error) {
	name := defaultFFmpegName
	if configured != "" {
		name = configured
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrToolNotFound, err)
	}

	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}

	return absolutePath, nil
}
