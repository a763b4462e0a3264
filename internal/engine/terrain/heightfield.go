package terrain

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"io"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration

	"github.com/Faultbox/hikesim/internal/assets"
)

// Source provides raw asset bytes.
type Source interface {
	Load(kind, name string) ([]byte, error)
}

// LoadHeightField reads and decodes a heightmap image through src.
// Missing and undecodable files are both reported as *assets.AssetLoadError.
func LoadHeightField(src Source, name string) (*HeightField, error) {
	data, err := src.Load(assets.KindHeightmap, name)
	if err != nil {
		return nil, err
	}

	hf, err := DecodeHeightField(bytes.NewReader(data))
	if err != nil {
		return nil, &assets.AssetLoadError{Asset: assets.KindHeightmap, Path: name, Err: err}
	}
	return hf, nil
}

// DecodeHeightField decodes any registered raster format into a HeightField.
func DecodeHeightField(r io.Reader) (*HeightField, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode heightmap: %w", err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode heightmap: empty %s image", format)
	}
	return FromImage(img), nil
}

// FromImage converts an image into a HeightField. Colour images are
// reduced to one channel with the luminance model; alpha is ignored, so a
// translucent or fully transparent pixel keeps its grey value.
func FromImage(img image.Image) *HeightField {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	hf := &HeightField{
		Width:   w,
		Height:  h,
		Heights: make([]float32, w*h),
	}

	if gray, ok := img.(*image.Gray); ok {
		for y := range h {
			row := gray.PixOffset(b.Min.X, b.Min.Y+y)
			for x := range w {
				hf.Heights[y*w+x] = float32(gray.Pix[row+x]) / 255.0
			}
		}
		return hf
	}

	for y := range h {
		for x := range w {
			r, g, bl := opaque(img.At(b.Min.X+x, b.Min.Y+y))
			lum := color.GrayModel.Convert(color.RGBA64{R: r, G: g, B: bl, A: 0xffff}).(color.Gray)
			hf.Heights[y*w+x] = float32(lum.Y) / 255.0
		}
	}
	return hf
}

// opaque returns the straight (non-premultiplied) 16-bit channels of c.
// Non-premultiplied colours are read as stored; premultiplied ones are
// divided by alpha when it is neither zero nor full.
func opaque(c color.Color) (r, g, b uint16) {
	switch c := c.(type) {
	case color.NRGBA:
		return uint16(c.R) * 0x101, uint16(c.G) * 0x101, uint16(c.B) * 0x101
	case color.NRGBA64:
		return c.R, c.G, c.B
	}

	pr, pg, pb, pa := c.RGBA()
	if pa != 0 && pa != 0xffff {
		pr = pr * 0xffff / pa
		pg = pg * 0xffff / pa
		pb = pb * 0xffff / pa
	}
	return uint16(pr), uint16(pg), uint16(pb)
}
