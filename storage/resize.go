package storage

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// MaxImageWidth is the widest image a post displays.
const MaxImageWidth = 960

var encodeFormats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
	"image/bmp":  imaging.BMP,
}

// fitWidth decodes the upload and scales it down to maxWidth keeping the
// aspect ratio. Images that already fit are returned untouched.
func fitWidth(buf []byte, fileType string, maxWidth int) ([]byte, error) {
	format, ok := encodeFormats[fileType]
	if !ok {
		return nil, ErrNotAnImage
	}
	img, err := imaging.Decode(bytes.NewReader(buf), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrNotAnImage
	}
	if img.Bounds().Dx() <= maxWidth {
		return buf, nil
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	out := &bytes.Buffer{}
	if err := imaging.Encode(out, resized, format, imaging.JPEGQuality(90)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
