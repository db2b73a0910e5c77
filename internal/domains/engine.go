package domains

import (
	"context"

	ddto "source.hodakov.me/hdkv/mediaconvert/internal/domains/dispatcher/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/engine/dto"
)

const EngineName = "engine"

type Engine interface {
	RunConversion(ctx context.Context, request *dto.Request, onProgress ProgressFunc) (*ddto.Summary, error)
}
