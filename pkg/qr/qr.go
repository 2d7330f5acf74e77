// Package qr renders text as a block of unicode half-block glyphs.
package qr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mdp/qrterminal/v3"
)

// ErrEmpty is returned for blank input; there is nothing worth encoding.
var ErrEmpty = errors.New("qr: empty input")

// Render encodes text and returns the glyph matrix, one row per line.
func Render(text string) (out string, err error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("qr: encode %q: %v", text, r)
		}
	}()

	var buf strings.Builder
	qrterminal.GenerateWithConfig(text, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         &buf,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		QuietZone:      1,
	})
	return strings.TrimRight(buf.String(), "\n"), nil
}
