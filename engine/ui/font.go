package ui

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

// FontSource returns the shared Go Regular face source.
func FontSource() *text.GoTextFaceSource {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		fontSource = src
	})
	return fontSource
}

// Face returns a Go Regular face at the given size in pixels.
func Face(size float64) text.Face {
	return &text.GoTextFace{Source: FontSource(), Size: size}
}
