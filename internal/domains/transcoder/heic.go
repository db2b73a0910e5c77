package transcoder

import (
	"bytes"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/jdeng/goheif"
	"github.com/jdeng/goheif/heif"
	"github.com/jdeng/goheif/heif/bmff"
)

// decodeHEIC decodes the primary image and applies its rotation and mirror
// properties, so the result looks the way viewers render the file.
func decodeHEIC(r io.Reader) (image.Image, error) {
	ra, ok := r.(io.ReaderAt)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		ra = bytes.NewReader(data)
	}

	img, err := goheif.Decode(io.NewSectionReader(ra, 0, 1<<62))
	if err != nil {
		return nil, err
	}

	item, err := heif.Open(ra).PrimaryItem()
	if err != nil {
		return nil, err
	}

	return orient(img, item.Properties), nil
}

// orient applies irot and imir in the order they are listed.
func orient(img image.Image, properties []bmff.Box) image.Image {
	for _, property := range properties {
		switch property := property.(type) {
		case *bmff.ImageRotation:
			switch property.Angle {
			case 1:
				img = imaging.Rotate90(img)
			case 2:
				img = imaging.Rotate180(img)
			case 3:
				img = imaging.Rotate270(img)
			}
		case *bmff.ImageMirror:
			if property.Mirror == bmff.MirrorHorizontal {
				img = imaging.FlipV(img)
			} else {
				img = imaging.FlipH(img)
			}
		}
	}

	return img
}
