package transcoder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
)

// videoArgs is the fixed ffmpeg invocation: H.264 + AAC in MP4, the fastest
// preset, and a single encoder thread. Parallelism comes from running many
// worker processes, not from ffmpeg threads.
func videoArgs(sourcePath, destinationPath string) []string {
	return []string{
		"-y",
		"-i", sourcePath,
		"-vcodec", "libx264",
		"-preset", "ultrafast",
		"-threads", "1",
		"-acodec", "aac",
		"-strict", "experimental",
		// The temporary output name has no .mp4 suffix to guess from.
		"-f", "mp4",
		destinationPath,
	}
}

// ConvertVideo transcodes a video with ffmpeg. Output of ffmpeg itself is
// discarded; a non-zero exit code becomes a failed outcome carrying it.
func (t *Transcoder) ConvertVideo(ctx context.Context, task *cdto.Task) *dto.Outcome {
	started := time.Now()
	destination := task.DestinationPath()

	logger := t.app.Logger().WithFields(logrus.Fields{
		"source file": task.SourcePath,
		"destination": destination,
	})

	if task.FFmpegPath == "" {
		return t.failed(logger, task, fmt.Errorf("%w: %w", ErrTranscoder, ErrToolNotFound))
	}

	if _, err := os.Stat(task.FFmpegPath); err != nil {
		return t.failed(logger, task, fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrToolNotFound, err))
	}

	if _, err := os.Stat(task.SourcePath); err != nil {
		return t.failed(logger, task, fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrSourceNotReadable, err))
	}

	logger.Debug("Transcoding video using ffmpeg...")

	err := t.produce(destination, func(tempPath string) error {
		ffmpegArgs := videoArgs(task.SourcePath, tempPath)

		logger.WithField(
			"ffmpeg command", task.FFmpegPath+" "+strings.Join(ffmpegArgs, " "),
		).Debug("FFmpeg parameters")

		ffmpeg := exec.CommandContext(ctx, task.FFmpegPath, ffmpegArgs...)

		err := ffmpeg.Run()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return fmt.Errorf("%w: %w (exit code %d)", ErrTranscoder, ErrToolExited, exitErr.ExitCode())
			}

			return fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrTranscodeError, err)
		}

		// ffmpeg may exit cleanly without producing anything useful.
		transcodedFileStat, err := os.Stat(tempPath)
		if err != nil {
			return fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrTranscodedFileNotFound, err)
		}

		if transcodedFileStat.Size() == 0 {
			return fmt.Errorf("%w: %w", ErrTranscoder, ErrTranscodedFileIsEmpty)
		}

		return nil
	})
	if err != nil {
		return t.failed(logger, task, err)
	}

	logger.WithField("took", time.Since(started)).Info("Video transcoded successfully")

	return dto.Succeeded(task.SourcePath, destination, time.Since(started))
}
