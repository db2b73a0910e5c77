package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	tdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/worker"
)

// slot owns at most one worker process at a time and feeds it tasks one by
// one. A lost process is replaced when the next task arrives.
type slot struct {
	id         int
	dispatcher *Dispatcher
	hostLogger hclog.Logger
	logger     *logrus.Entry

	taskTimeout    time.Duration
	tasksPerWorker int

	process *worker.Process
}

func (s *slot) run(ctx context.Context, queue <-chan *cdto.Task, outcomes chan<- *tdto.Outcome) {
	defer s.stop()

	for task := range queue {
		outcomes <- s.convert(ctx, task)
	}
}

func (s *slot) convert(ctx context.Context, task *cdto.Task) *tdto.Outcome {
	if s.process == nil || s.process.Exited() {
		s.stop()

		process, err := worker.Start(s.dispatcher.workerCommand(), s.hostLogger)
		if err != nil {
			s.logger.WithError(err).Error("Failed to start worker process")

			return tdto.Failed(task.SourcePath, err.Error())
		}

		s.process = process
	}

	taskCtx, cancel := ctx, context.CancelFunc(func() {})
	if s.taskTimeout > 0 {
		taskCtx, cancel = context.WithTimeout(ctx, s.taskTimeout)
	}
	defer cancel()

	outcome, err := s.process.Convert(taskCtx, task)
	if err != nil {
		// Whatever happened, the process can't be trusted with another task.
		s.stop()

		switch {
		case ctx.Err() != nil:
			err = fmt.Errorf("%w: %w", ErrDispatcher, ErrTaskCancelled)
		case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("%w: %w (after %s)", ErrDispatcher, ErrTaskTimedOut, s.taskTimeout)
		default:
			err = fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrWorkerLost, err)
		}

		s.logger.WithError(err).WithField("source file", task.SourcePath).Error("Task did not complete")

		return tdto.Failed(task.SourcePath, err.Error())
	}

	if s.tasksPerWorker > 0 && s.process.Served() >= s.tasksPerWorker {
		s.logger.WithField("served", s.process.Served()).Debug("Recycling worker process")
		s.stop()
	}

	return outcome
}

func (s *slot) stop() {
	if s.process == nil {
		return
	}

	s.process.Kill()
	s.process = nil
}
