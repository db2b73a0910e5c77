package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/mediaconvert/internal/configuration"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	ddto "source.hodakov.me/hdkv/mediaconvert/internal/domains/dispatcher/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/engine/dto"
)

// RunConversion converts every eligible file of the input directory.
//
// A missing input directory and an input without eligible files are
// reported as ErrInputDirectoryMissing and ErrNoEligibleFiles before any
// worker starts or the output directory is created. Everything else that
// goes wrong with single files is part of the returned summary.
func (e *Engine) RunConversion(
	ctx context.Context, request *dto.Request, onProgress domains.ProgressFunc,
) (*ddto.Summary, error) {
	outputDir := request.OutputDir
	if outputDir == "" {
		outputDir = configuration.DefaultOutputDir(request.InputDir)
	}

	if absoluteOutputDir, err := filepath.Abs(outputDir); err == nil {
		outputDir = absoluteOutputDir
	}

	capabilities := e.transcoder.Capabilities()

	scan, err := e.classifier.Scan(&cdto.ScanRequest{
		InputDir:   request.InputDir,
		OutputDir:  outputDir,
		Quality:    request.Quality,
		FFmpegPath: capabilities.FFmpegPath,
	})
	if err != nil {
		if errors.Is(err, classifier.ErrInputDirectoryMissing) {
			return nil, fmt.Errorf("%w: %w (%s)", ErrEngine, ErrInputDirectoryMissing, request.InputDir)
		}

		return nil, fmt.Errorf("%w: %w (%w)", ErrEngine, ErrScanFailed, err)
	}

	logger := e.app.Logger().WithFields(logrus.Fields{
		"input directory":  request.InputDir,
		"output directory": outputDir,
	})

	if scan.SkippedVideos > 0 {
		logger.WithField("videos", scan.SkippedVideos).Warn("ffmpeg is not available, skipping videos")
	}

	if len(scan.Tasks) == 0 {
		return nil, fmt.Errorf("%w: %w (%s)", ErrEngine, ErrNoEligibleFiles, request.InputDir)
	}

	logger.WithFields(logrus.Fields{
		"files":   len(scan.Tasks),
		"ignored": scan.Ignored,
	}).Info("Found files to convert")

	return e.dispatcher.Run(ctx, scan.Tasks, max(request.Workers, 1), onProgress)
}
