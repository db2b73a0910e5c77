package transcoder

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/jdeng/goheif/heif/bmff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
)

const (
	camelFixture = "testdata/camel.heic"
	camelWidth   = 1596
	camelHeight  = 1064
)

var marker = color.NRGBA{R: 255, A: 255}

func copyFixture(t *testing.T, dir, name string) string {
	t.Helper()

	data, err := os.ReadFile(camelFixture)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestConvertImage_HEIC(t *testing.T) {
	transcoder := newTestTranscoder(t)

	output := t.TempDir()
	source := copyFixture(t, t.TempDir(), "IMG_0001.HEIC")

	outcome := transcoder.ConvertImage(cdto.NewImageTask(source, output, 90))
	require.True(t, outcome.Success, outcome.Message)

	file, err := os.Open(filepath.Join(output, "IMG_0001.jpg"))
	require.NoError(t, err)
	defer file.Close()

	img, err := jpeg.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, camelWidth, camelHeight), img.Bounds())
	assert.Empty(t, leftovers(t, output))
}

func TestDecodeHEIC_PlainReader(t *testing.T) {
	data, err := os.ReadFile(camelFixture)
	require.NoError(t, err)

	// bytes.Buffer has no ReadAt.
	img, err := decodeHEIC(bytes.NewBuffer(data))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, camelWidth, camelHeight), img.Bounds())
}

func markedImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, marker)

	return img
}

func TestOrient(t *testing.T) {
	tests := []struct {
		name       string
		properties []bmff.Box
		size       image.Point
		marker     image.Point
	}{
		{"none", nil, image.Pt(3, 2), image.Pt(0, 0)},
		{"rotate 90", []bmff.Box{&bmff.ImageRotation{Angle: 1}}, image.Pt(2, 3), image.Pt(0, 2)},
		{"rotate 180", []bmff.Box{&bmff.ImageRotation{Angle: 2}}, image.Pt(3, 2), image.Pt(2, 1)},
		{"rotate 270", []bmff.Box{&bmff.ImageRotation{Angle: 3}}, image.Pt(2, 3), image.Pt(1, 0)},
		{"mirror vertical axis", []bmff.Box{&bmff.ImageMirror{Mirror: bmff.MirrorVertical}}, image.Pt(3, 2), image.Pt(2, 0)},
		{"mirror horizontal axis", []bmff.Box{&bmff.ImageMirror{Mirror: bmff.MirrorHorizontal}}, image.Pt(3, 2), image.Pt(0, 1)},
		{
			"rotate then mirror",
			[]bmff.Box{&bmff.ImageRotation{Angle: 1}, &bmff.ImageMirror{Mirror: bmff.MirrorVertical}},
			image.Pt(2, 3), image.Pt(1, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oriented := orient(markedImage(), tt.properties)

			assert.Equal(t, tt.size, oriented.Bounds().Size())
			assert.Equal(t, marker, color.NRGBAModel.Convert(oriented.At(tt.marker.X, tt.marker.Y)))
		})
	}
}
