package transcoder

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
)

// Convert runs the transcoder matching the task's kind. It always returns an
// outcome: a panic anywhere below is turned into a failed one.
func (t *Transcoder) Convert(ctx context.Context, task *cdto.Task) (outcome *dto.Outcome) {
	defer func() {
		if recovered := recover(); recovered != nil {
			t.app.Logger().WithFields(logrus.Fields{
				"source file": task.SourcePath,
				"panic":       recovered,
			}).Error("Recovered from panic during conversion")

			outcome = dto.Failed(task.SourcePath, fmt.Sprintf("%s: %s (%v)", ErrTranscoder, ErrUnexpectedPanic, recovered))
		}
	}()

	switch task.Kind {
	case cdto.KindImage:
		return t.ConvertImage(task)
	case cdto.KindVideo:
		return t.ConvertVideo(ctx, task)
	default:
		return dto.Failed(task.SourcePath, fmt.Sprintf("%s: %s (%s)", ErrTranscoder, ErrUnsupportedKind, task.Kind))
	}
}
