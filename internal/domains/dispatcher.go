package domains

import (
	"context"

	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/dispatcher/dto"
)

const DispatcherName = "dispatcher"

// ProgressFunc is called once per completed task, in completion order.
// It runs on the dispatcher's collecting goroutine and must not block long.
type ProgressFunc func(completed, total int)

type Dispatcher interface {
	Run(
		ctx context.Context, tasks []*cdto.Task, concurrency int, onProgress ProgressFunc,
	) (*dto.Summary, error)
}
