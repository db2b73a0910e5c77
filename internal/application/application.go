package application

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/mediaconvert/internal/configuration"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains"
)

// WorkerLogLevelEnv carries the coordinator's log level into worker processes.
const WorkerLogLevelEnv = "MEDIACONVERT_LOG_LEVEL"

type App struct {
	ctx    context.Context
	logger *logrus.Entry
	config *configuration.Config

	domains      map[string]domains.Domain
	domainsMutex sync.RWMutex
}

func (a *App) Config() *configuration.Config {
	return a.config
}

func (a *App) Context() context.Context {
	return a.ctx
}

func (a *App) Logger() *logrus.Entry {
	return a.logger
}

func New(ctx context.Context) *App {
	app := new(App)

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	app.logger = logger.WithContext(ctx).WithField("pid", os.Getpid())

	app.ctx = ctx

	app.domains = make(map[string]domains.Domain)

	return app
}

func (a *App) InitConfig(args []string) error {
	config, err := configuration.New(args)
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrApplication, ErrConfigInitializationError, err)
	}

	a.config = config

	return nil
}

func (a *App) InitLogger() {
	a.logger.Logger.SetLevel(a.config.MediaConvert.LogLevel)

	a.logger.WithField("log level", a.config.MediaConvert.LogLevel).Debug("Set log level")
}

// InitWorkerLogger prepares logging for an isolated worker process. Records
// go to stderr as JSON with the keys go-plugin parses on the host side.
func (a *App) InitWorkerLogger() {
	a.logger.Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "@timestamp",
			logrus.FieldKeyLevel: "@level",
			logrus.FieldKeyMsg:   "@message",
		},
	})

	level := logrus.InfoLevel
	if rawLevel, ok := os.LookupEnv(WorkerLogLevelEnv); ok {
		if parsed, err := logrus.ParseLevel(rawLevel); err == nil {
			level = parsed
		}
	}

	a.logger.Logger.SetLevel(level)
}

func (a *App) RegisterDomain(name string, implementation domains.Domain) {
	a.domainsMutex.Lock()
	defer a.domainsMutex.Unlock()

	a.domains[name] = implementation
}

func (a *App) RetrieveDomain(name string) any {
	a.domainsMutex.RLock()
	defer a.domainsMutex.RUnlock()

	return a.domains[name]
}

func (a *App) ConnectDependencies() error {
	a.domainsMutex.RLock()
	defer a.domainsMutex.RUnlock()

	for _, domain := range a.domains {
		err := domain.ConnectDependencies()
		if err != nil {
			return fmt.Errorf("%w: %w (%w)", ErrApplication, ErrConnectDependencies, err)
		}
	}

	return nil
}

func (a *App) StartDomains() error {
	a.domainsMutex.RLock()
	defer a.domainsMutex.RUnlock()

	for _, domain := range a.domains {
		err := domain.Start()
		if err != nil {
			return fmt.Errorf("%w: %w (%w)", ErrApplication, ErrDomainInit, err)
		}
	}

	return nil
}
