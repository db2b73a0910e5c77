package engine

import (
	"fmt"

	"source.hodakov.me/hdkv/mediaconvert/internal/application"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains"
)

var (
	_ domains.Engine = new(Engine)
	_ domains.Domain = new(Engine)
)

type Engine struct {
	app *application.App

	classifier domains.Classifier
	transcoder domains.Transcoder
	dispatcher domains.Dispatcher
}

func New(app *application.App) *Engine {
	return &Engine{
		app: app,
	}
}

func (e *Engine) ConnectDependencies() error {
	classifier, ok := e.app.RetrieveDomain(domains.ClassifierName).(domains.Classifier)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrEngine, ErrConnectDependencies,
			"classifier domain interface conversion failed",
		)
	}

	transcoder, ok := e.app.RetrieveDomain(domains.TranscoderName).(domains.Transcoder)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrEngine, ErrConnectDependencies,
			"transcoder domain interface conversion failed",
		)
	}

	dispatcher, ok := e.app.RetrieveDomain(domains.DispatcherName).(domains.Dispatcher)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrEngine, ErrConnectDependencies,
			"dispatcher domain interface conversion failed",
		)
	}

	e.classifier = classifier
	e.transcoder = transcoder
	e.dispatcher = dispatcher

	return nil
}

func (e *Engine) Start() error {
	return nil
}
