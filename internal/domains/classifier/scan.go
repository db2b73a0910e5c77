package classifier

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
)

// Scan lists the direct children of the input directory and builds a task
// for every regular file of a known kind. Videos are only included when a
// transcoding tool is available. Task order follows directory order.
func (c *Classifier) Scan(request *dto.ScanRequest) (*dto.ScanResult, error) {
	info, err := os.Stat(request.InputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w (%w)", ErrClassifier, ErrInputDirectoryMissing, err)
		}

		return nil, fmt.Errorf("%w: %w (%w)", ErrClassifier, ErrFailedToReadDirectory, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %w (%s)", ErrClassifier, ErrInputIsNotDirectory, request.InputDir)
	}

	dirEntries, err := os.ReadDir(request.InputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (%w)", ErrClassifier, ErrFailedToReadDirectory, err)
	}

	result := new(dto.ScanResult)
	destinations := make(map[string]string)

	for _, dirEntry := range dirEntries {
		if !isRegularFile(request.InputDir, dirEntry) {
			continue
		}

		entry := c.entry(request.InputDir, dirEntry.Name())

		var task *dto.Task

		switch entry.Kind {
		case dto.KindImage:
			task = dto.NewImageTask(entry.Path, request.OutputDir, request.Quality)
		case dto.KindVideo:
			if request.FFmpegPath == "" {
				result.SkippedVideos++

				continue
			}

			task = dto.NewVideoTask(entry.Path, request.OutputDir, request.FFmpegPath)
		default:
			result.Ignored++

			continue
		}

		destination := task.DestinationPath()
		if previous, ok := destinations[destination]; ok {
			c.app.Logger().WithFields(logrus.Fields{
				"destination": destination,
				"first":       previous,
				"second":      entry.Path,
			}).Warn("Two source files map to the same output file, one will overwrite the other")
		}

		destinations[destination] = entry.Path

		result.Tasks = append(result.Tasks, task)
	}

	c.app.Logger().WithFields(logrus.Fields{
		"input directory": request.InputDir,
		"tasks":           len(result.Tasks),
		"ignored":         result.Ignored,
		"skipped videos":  result.SkippedVideos,
	}).Debug("Scanned input directory")

	return result, nil
}

func (c *Classifier) entry(dir, name string) *dto.Entry {
	path := filepath.Join(dir, name)
	if absolutePath, err := filepath.Abs(path); err == nil {
		path = absolutePath
	}

	extension := filepath.Ext(name)

	return &dto.Entry{
		Path:      path,
		Extension: extension,
		Kind:      Classify(extension),
	}
}

// isRegularFile follows symlinks, so a link to a photo counts as a photo.
func isRegularFile(dir string, dirEntry fs.DirEntry) bool {
	if dirEntry.Type()&fs.ModeSymlink == 0 {
		return dirEntry.Type().IsRegular()
	}

	info, err := os.Stat(filepath.Join(dir, dirEntry.Name()))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
