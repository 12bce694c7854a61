// Package fonts provides the text faces used over the whole game, built
// from the embedded Go font so no font files ship with the binary.
package fonts

import (
	"bytes"
	"sync"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title  FontName = "title"
	Normal FontName = "normal"
	Small  FontName = "small"
)

var sizes = map[FontName]float64{
	Title:  48,
	Normal: 20,
	Small:  14,
}

var (
	once   sync.Once
	source *text.GoTextFaceSource
	faces  map[FontName]*text.GoTextFace
)

func load() {
	once.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic("failed to parse embedded font: " + err.Error())
		}
		source = src
		faces = make(map[FontName]*text.GoTextFace, len(sizes))
		for name, size := range sizes {
			faces[name] = &text.GoTextFace{Source: source, Size: size}
		}
	})
}

// Get returns the shared face for a name.
func (f FontName) Get() *text.GoTextFace {
	load()
	face, ok := faces[f]
	if !ok {
		panic("font " + string(f) + " not found")
	}
	return face
}

// WithSize returns a face at an arbitrary size, sharing the parsed source.
func WithSize(size float64) *text.GoTextFace {
	load()
	return &text.GoTextFace{Source: source, Size: size}
}
