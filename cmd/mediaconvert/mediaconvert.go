package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"source.hodakov.me/hdkv/mediaconvert/internal/application"
	"source.hodakov.me/hdkv/mediaconvert/internal/configuration"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/dispatcher"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/engine"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/engine/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder"
	"source.hodakov.me/hdkv/mediaconvert/internal/report"
	"source.hodakov.me/hdkv/mediaconvert/internal/worker"
)

func main() {
	// The dispatcher starts this same binary for every worker process.
	if worker.IsWorkerProcess() {
		serveWorker()

		return
	}

	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := application.New(ctx)

	err := app.InitConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stdout, configuration.Usage)

			return exitOK
		}

		app.Logger().WithError(err).Error("Failed to initialize configuration")

		if errors.Is(err, configuration.ErrCantParseFlags) {
			fmt.Fprint(os.Stderr, configuration.Usage)
		}

		return exitSetupError
	}

	app.InitLogger()

	app.RegisterDomain(domains.ClassifierName, classifier.New(app))
	app.RegisterDomain(domains.TranscoderName, transcoder.New(app))
	app.RegisterDomain(domains.DispatcherName, dispatcher.New(app))
	app.RegisterDomain(domains.EngineName, engine.New(app))

	err = app.ConnectDependencies()
	if err != nil {
		app.Logger().WithError(err).Error("Failed to connect domains")

		return exitSetupError
	}

	err = app.StartDomains()
	if err != nil {
		app.Logger().WithError(err).Error("Failed to start domains")

		return exitSetupError
	}

	// CTRL+C handler.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	go func() {
		select {
		case signalThing := <-interrupt:
			app.Logger().WithField("signal", signalThing.String()).
				Warn("Got terminating signal, stopping workers...")

			cancel()
		case <-ctx.Done():
		}
	}()

	config := app.Config()
	request := &dto.Request{
		InputDir:  config.Paths.Input,
		OutputDir: config.Paths.Output,
		Quality:   config.Transcoding.Quality,
		Workers:   config.Transcoding.Parallel,
	}

	converter, ok := app.RetrieveDomain(domains.EngineName).(domains.Engine)
	if !ok {
		app.Logger().Error("Engine domain is not registered")

		return exitSetupError
	}

	bar := newProgress(os.Stderr)

	summary, err := converter.RunConversion(ctx, request, bar.update)

	bar.finish()

	interrupted := false

	switch {
	case errors.Is(err, engine.ErrNoEligibleFiles):
		app.Logger().WithField("input directory", request.InputDir).Info("Nothing to convert")

		return exitOK
	case errors.Is(err, dispatcher.ErrInterrupted):
		interrupted = true
	case err != nil:
		app.Logger().WithError(err).Error("Conversion failed")

		return exitSetupError
	}

	printSummary(os.Stdout, summary, interrupted)

	if config.MediaConvert.Report != "" {
		err = report.Write(config.MediaConvert.Report, report.New(request, summary, interrupted, time.Now()))
		if err != nil {
			app.Logger().WithError(err).Error("Failed to write run report")
		}
	}

	return exitCode(summary, interrupted)
}

func serveWorker() {
	app := application.New(context.Background())
	app.InitWorkerLogger()

	worker.Serve(app.Context(), transcoder.New(app), worker.NewServeLogger(app.Logger()))
}
