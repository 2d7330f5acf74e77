package tui

import (
	"strings"
	"testing"

	"btcdash/pkg/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_NoSizeYet(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)
	h.m.width, h.m.height = 0, 0
	assert.Equal(t, "", h.m.View())
}

func TestView_Dashboard(t *testing.T) {
	h := newHarness(t, []string{"getblockcount", "getmempoolinfo"}, nil)
	view := h.m.View()

	assert.Equal(t, 40, lipgloss.Height(view))
	for _, want := range []string{"Node Info", "Wallet Info", "Commands", "Output", "Main keys:", "getmempoolinfo"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Address Book & QR")
}

func TestView_OverlayValidMainnet(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)
	h.press(runes("w"))

	v := h.m.overlay.validity()
	assert.Equal(t, models.ValidFor(models.Mainnet), v)

	view := h.m.View()
	assert.Contains(t, view, "Address Book & QR")
	assert.Contains(t, view, "Overlay keys:")
	assert.Contains(t, view, "BTC Address — VALID")
	assert.Contains(t, view, "VALID (mainnet)")
	assert.NotContains(t, view, "QR hidden")

	code := h.m.viewQR(v, 200, 100)
	assert.True(t, strings.ContainsAny(code, "▀▄█"), "expected QR glyphs")
}

func TestView_OverlayEmptyBuffer(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)
	h.press(runes("w"))
	h.m.overlay.setBuffer("")

	assert.Equal(t, models.Empty, h.m.overlay.validity().Kind)
	var view string
	require.NotPanics(t, func() { view = h.m.View() })
	assert.Contains(t, view, "(enter an address)")
	assert.Contains(t, view, "QR hidden")
}

func TestView_OverlayInvalid(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)
	h.press(runes("w"))
	h.m.overlay.setBuffer("bc1qnotreally")

	view := h.m.View()
	assert.Contains(t, view, "BTC Address — INVALID")
	assert.Contains(t, view, "QR Code — INVALID")
	assert.Contains(t, view, "QR hidden")
}

func TestView_BookRows(t *testing.T) {
	book := bookWith(t, p2pkhAddr, "bc1q")
	h := newHarness(t, []string{"getblockcount"}, book)
	h.press(runes("w"))

	rows := h.m.viewBook(60, 10)
	first := book.At(0)
	assert.Contains(t, rows, first.CreatedAt.Local().Format("2006-01-02 15:04")+"  1BvBMSEYstWe…7xJaNVN2")
	assert.Contains(t, rows, "  bc1q")

	h = newHarness(t, []string{"getblockcount"}, nil)
	assert.Contains(t, h.m.viewBook(60, 10), "No saved addresses")
}

func TestAddressInput_ScrollsWithCursor(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)
	o := h.m.overlay
	o.setInputWidth(6)
	o.setBuffer("abcdefghij")

	out := o.input.View()
	assert.LessOrEqual(t, lipgloss.Width(out), 6)
	assert.Contains(t, out, "ghij")
	assert.NotContains(t, out, "abc")

	o.input.CursorStart()
	out = o.input.View()
	assert.LessOrEqual(t, lipgloss.Width(out), 6)
	assert.Contains(t, out, "bcde")
}

func TestView_OverlayInputFitsPanel(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)
	h.press(runes("w"))
	h.m.overlay.setBuffer(strings.Repeat("x", 200))

	view := h.m.View()
	assert.Equal(t, 40, lipgloss.Height(view))
	for _, row := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(row), 120)
	}
}

func TestPanel(t *testing.T) {
	out := panel("T", "hello", 10, 4, borderColor, titleStyle)
	assert.Equal(t, 4, lipgloss.Height(out))
	assert.Equal(t, 10, lipgloss.Width(out))
	assert.Contains(t, out, " T ")
	assert.Contains(t, out, "hello")

	assert.Equal(t, "", panel("T", "x", 3, 4, borderColor, titleStyle))
}

func TestPlaceOver(t *testing.T) {
	bg := "aaaaa\nbbbbb\nccccc"
	assert.Equal(t, "aaaaa\nbXYbb\nccccc", placeOver(bg, "XY", 5, 1, 1))
	assert.Equal(t, "aaaaa\nbbbbb\ncccXY", placeOver(bg, "XY\nZZ", 5, 3, 2))
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "Error: a b", oneLine("Error: a\n  b\n"))
}
