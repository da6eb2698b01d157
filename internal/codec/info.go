package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	Format     string
	Width      int
	Height     int
	ColorModel string
}

// GetInfo reads image dimensions and color model without decoding pixels.
func GetInfo(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &ImageInfo{
		Format:     format,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ColorModel: colorModelName(cfg.ColorModel),
	}, nil
}

func colorModelName(m color.Model) string {
	if p, ok := m.(color.Palette); ok {
		return fmt.Sprintf("Paletted (%d colors)", len(p))
	}
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Grayscale"
	case color.Gray16Model:
		return "Grayscale16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel, color.Alpha16Model:
		return "Alpha"
	default:
		return fmt.Sprintf("%T", m)
	}
}
