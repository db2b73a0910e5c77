package dispatcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/aggregator"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/dispatcher/dto"
	tdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/worker"
)

// Run converts every task in one of at most concurrency worker processes
// and reports each completion through onProgress. Task failures, worker
// crashes included, end up in the summary and never as an error.
//
// When ctx is done no further tasks are handed out, running ones are
// killed and reported as failed, and the partial summary is returned
// together with ErrInterrupted.
func (d *Dispatcher) Run(
	ctx context.Context, tasks []*cdto.Task, concurrency int, onProgress domains.ProgressFunc,
) (*dto.Summary, error) {
	started := time.Now()
	total := len(tasks)

	if total == 0 {
		return aggregator.New(0).Summary(0), nil
	}

	err := d.prepareDestinations(tasks)
	if err != nil {
		return nil, err
	}

	workers := min(max(concurrency, 1), total)

	d.app.Logger().WithFields(logrus.Fields{
		"tasks":   total,
		"workers": workers,
	}).Info("Starting conversion")

	hostLogger, hostLogOutput := worker.NewHostLogger(d.app.Logger())
	defer hostLogOutput.Close()

	queue := make(chan *cdto.Task)
	outcomes := make(chan *tdto.Outcome)

	var group errgroup.Group

	group.Go(func() error {
		defer close(queue)

		for _, task := range tasks {
			if ctx.Err() != nil {
				return nil
			}

			select {
			case queue <- task:
			case <-ctx.Done():
				return nil
			}
		}

		return nil
	})

	for id := range workers {
		slot := &slot{
			id:             id,
			dispatcher:     d,
			hostLogger:     hostLogger,
			logger:         d.app.Logger().WithField("slot", id),
			taskTimeout:    d.taskTimeout,
			tasksPerWorker: d.tasksPerWorker,
		}

		group.Go(func() error {
			slot.run(ctx, queue, outcomes)

			return nil
		})
	}

	go func() {
		group.Wait()
		close(outcomes)
	}()

	results := aggregator.New(total)
	for outcome := range outcomes {
		completed := results.Add(outcome)

		if onProgress != nil {
			onProgress(completed, total)
		}
	}

	summary := results.Summary(time.Since(started))
	summary.Cancelled = total - summary.Total

	d.app.Logger().WithFields(logrus.Fields{
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed(),
		"cancelled": summary.Cancelled,
		"took":      summary.Duration,
	}).Info("Conversion finished")

	if ctx.Err() != nil {
		return summary, fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrInterrupted, ctx.Err())
	}

	return summary, nil
}

// prepareDestinations creates every destination directory once, before
// any worker could race on it.
func (d *Dispatcher) prepareDestinations(tasks []*cdto.Task) error {
	created := make(map[string]struct{})

	for _, task := range tasks {
		if _, ok := created[task.DestinationDir]; ok {
			continue
		}

		err := os.MkdirAll(task.DestinationDir, 0o755)
		if err != nil {
			return fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrFailedToCreateDestination, err)
		}

		created[task.DestinationDir] = struct{}{}
	}

	return nil
}
