package dispatcher

import (
	"os"
	"os/exec"
	"time"

	"source.hodakov.me/hdkv/mediaconvert/internal/application"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains"
)

var (
	_ domains.Dispatcher = new(Dispatcher)
	_ domains.Domain     = new(Dispatcher)
)

type Dispatcher struct {
	app *application.App

	taskTimeout    time.Duration
	tasksPerWorker int

	// workerCommand returns a fresh command for every worker process.
	workerCommand func() *exec.Cmd
}

func New(app *application.App) *Dispatcher {
	dispatcher := &Dispatcher{
		app: app,
	}

	if config := app.Config(); config != nil {
		dispatcher.taskTimeout = config.Transcoding.Timeout
		dispatcher.tasksPerWorker = config.Transcoding.TasksPerWorker
	}

	dispatcher.workerCommand = dispatcher.selfCommand

	return dispatcher
}

func (d *Dispatcher) ConnectDependencies() error {
	return nil
}

func (d *Dispatcher) Start() error {
	return nil
}

// selfCommand starts this very binary. main recognizes the worker role by
// the handshake cookie go-plugin adds to the environment.
func (d *Dispatcher) selfCommand() *exec.Cmd {
	executable, err := os.Executable()
	if err != nil {
		d.app.Logger().WithError(err).Warn("Can't resolve own executable, falling back to argv[0]")

		executable = os.Args[0]
	}

	cmd := exec.Command(executable)
	cmd.Env = append(
		os.Environ(),
		application.WorkerLogLevelEnv+"="+d.app.Logger().Logger.GetLevel().String(),
	)

	return cmd
}
