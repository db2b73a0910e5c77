package domains

import (
	"context"

	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
)

const TranscoderName = "transcoder"

type Transcoder interface {
	Capabilities() *dto.Capabilities
	Convert(ctx context.Context, task *cdto.Task) *dto.Outcome
	ConvertImage(task *cdto.Task) *dto.Outcome
	ConvertVideo(ctx context.Context, task *cdto.Task) *dto.Outcome
}
