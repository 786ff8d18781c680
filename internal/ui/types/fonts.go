package types

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const TitleSize = 82

type Fonts struct {
	Normal font.Face
	Title  font.Face
}

// FallbackFonts uses the built-in bitmap face. It cannot fail.
func FallbackFonts() *Fonts {
	return &Fonts{
		Normal: basicfont.Face7x13,
		Title:  basicfont.Face7x13,
	}
}

// LoadFonts parses the TTF at path, or the embedded Go Regular font when
// path is empty. On error it still returns usable fonts (the bitmap
// fallback) together with the error, so callers can log and carry on.
func LoadFonts(path string, titleSize float64) (*Fonts, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return FallbackFonts(), fmt.Errorf("read font: %w", err)
		}
		data = b
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return FallbackFonts(), fmt.Errorf("parse font %q: %w", path, err)
	}

	title, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    titleSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return FallbackFonts(), fmt.Errorf("title face: %w", err)
	}

	normal, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return FallbackFonts(), fmt.Errorf("normal face: %w", err)
	}

	return &Fonts{Normal: normal, Title: title}, nil
}
