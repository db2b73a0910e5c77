package classifier

import (
	"source.hodakov.me/hdkv/mediaconvert/internal/application"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains"
)

var (
	_ domains.Classifier = new(Classifier)
	_ domains.Domain     = new(Classifier)
)

type Classifier struct {
	app *application.App
}

func New(app *application.App) *Classifier {
	return &Classifier{
		app: app,
	}
}

func (c *Classifier) ConnectDependencies() error {
	return nil
}

func (c *Classifier) Start() error {
	return nil
}
