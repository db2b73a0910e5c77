package transcoder

import (
	"image"
	"io"

	"github.com/jdeng/goheif"
	"source.hodakov.me/hdkv/mediaconvert/internal/application"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains"
)

var (
	_ domains.Transcoder = new(Transcoder)
	_ domains.Domain     = new(Transcoder)
)

type Transcoder struct {
	app *application.App

	decodeImage func(io.Reader) (image.Image, error)
}

func New(app *application.App) *Transcoder {
	// Without it, single-tile images point into decoder memory that is
	// released before Decode returns.
	goheif.SafeEncoding = true

	return &Transcoder{
		app:         app,
		decodeImage: decodeHEIC,
	}
}

func (t *Transcoder) ConnectDependencies() error {
	return nil
}

func (t *Transcoder) Start() error {
	return nil
}
