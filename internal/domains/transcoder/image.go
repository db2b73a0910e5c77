package transcoder

import (
	"fmt"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
)

// ConvertImage decodes a HEIC image and stores it as a baseline JPEG with
// the task's quality. The quality is passed to the encoder as is.
func (t *Transcoder) ConvertImage(task *cdto.Task) *dto.Outcome {
	started := time.Now()
	destination := task.DestinationPath()

	logger := t.app.Logger().WithFields(logrus.Fields{
		"source file": task.SourcePath,
		"destination": destination,
		"quality":     task.Quality,
	})
	logger.Debug("Converting image...")

	source, err := os.Open(task.SourcePath)
	if err != nil {
		return t.failed(logger, task, fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrSourceNotReadable, err))
	}
	defer source.Close()

	img, err := t.decodeImage(source)
	if err != nil {
		return t.failed(logger, task, fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrDecodeFailed, err))
	}

	err = t.produce(destination, func(tempPath string) error {
		output, err := os.Create(tempPath)
		if err != nil {
			return fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrEncodeFailed, err)
		}

		err = imaging.Encode(output, img, imaging.JPEG, imaging.JPEGQuality(task.Quality))
		if err != nil {
			output.Close()

			return fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrEncodeFailed, err)
		}

		err = output.Close()
		if err != nil {
			return fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrEncodeFailed, err)
		}

		return nil
	})
	if err != nil {
		return t.failed(logger, task, err)
	}

	logger.WithField("took", time.Since(started)).Info("Image converted successfully")

	return dto.Succeeded(task.SourcePath, destination, time.Since(started))
}

func (t *Transcoder) failed(logger *logrus.Entry, task *cdto.Task, err error) *dto.Outcome {
	logger.WithError(err).Error("Conversion failed")

	return dto.Failed(task.SourcePath, err.Error())
}
