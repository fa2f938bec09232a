// internal/ui/fonts.go
package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Шрифты HUD. Берём M+ из ресурсов ebiten, чтобы не таскать
// бинарные ассеты в репозитории.
var (
	BaseFace  font.Face
	TitleFace font.Face
)

func init() {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		log.Fatal(err)
	}
	BaseFace = mustFace(tt, 16)
	TitleFace = mustFace(tt, 30)
}

func mustFace(tt *opentype.Font, size float64) font.Face {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	return face
}
