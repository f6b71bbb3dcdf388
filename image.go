package drawing

import (
	"fmt"
	"image"
	_ "image/png" // PNG sources
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ImageSource is the source of an ImageDrawing. The set of
// implementations is closed.
type ImageSource interface {
	// Width and Height return the natural size in pixels.
	Width() float64
	Height() float64

	imageSourceMarker()
}

// BitmapImage is a decoded raster image and the URI it was loaded from.
type BitmapImage struct {
	URI   string
	Image image.Image
}

// NewBitmapImage wraps an already decoded image.
func NewBitmapImage(uri string, img image.Image) *BitmapImage {
	return &BitmapImage{URI: uri, Image: img}
}

// LoadBitmap decodes an image read from r. URIs ending in ".bmp" are
// decoded as BMP; anything else goes through image.Decode.
func LoadBitmap(uri string, r io.Reader) (*BitmapImage, error) {
	var (
		img image.Image
		err error
	)
	if strings.EqualFold(filepath.Ext(uri), ".bmp") {
		img, err = bmp.Decode(r)
	} else {
		img, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("drawing: decode %s: %w", uri, err)
	}
	return &BitmapImage{URI: uri, Image: img}, nil
}

func (b *BitmapImage) Width() float64 {
	if b.Image == nil {
		return 0
	}
	return float64(b.Image.Bounds().Dx())
}

func (b *BitmapImage) Height() float64 {
	if b.Image == nil {
		return 0
	}
	return float64(b.Image.Bounds().Dy())
}

func (*BitmapImage) imageSourceMarker() {}
