//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.typeRune(r)
	}

	// Tab and Escape produce no input chars.
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		k.emit(KeyEvent{Code: KeyTab, Press: true})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.emit(KeyEvent{Code: KeyEscape, Press: true})
	}
}
