package transcoder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// produce lets write fill a hidden temporary file next to destination and
// renames it into place only on success, so a failed conversion never
// leaves a partial output under the final name.
func (t *Transcoder) produce(destination string, write func(tempPath string) error) error {
	tempPath := filepath.Join(
		filepath.Dir(destination),
		"."+filepath.Base(destination)+"."+uuid.NewString()+".part",
	)

	err := write(tempPath)
	if err != nil {
		os.Remove(tempPath)

		return err
	}

	err = os.Rename(tempPath, destination)
	if err != nil {
		os.Remove(tempPath)

		return fmt.Errorf("%w: %w (%w)", ErrTranscoder, ErrFailedToPlaceOutput, err)
	}

	return nil
}
