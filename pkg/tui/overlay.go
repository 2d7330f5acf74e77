package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"btcdash/pkg/address"
	"btcdash/pkg/addressbook"
	"btcdash/pkg/logging"
	"btcdash/pkg/models"
	"btcdash/pkg/rpc"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// OverlayState is the address overlay: the selection in the address book
// and the last status line. The edit buffer and its cursor live in the
// overlay's text input.
type OverlayState struct {
	Open      bool
	BookIndex int // -1 while the book is empty
	Status    *models.StatusMessage
}

type overlay struct {
	state OverlayState
	input textinput.Model
	book  *addressbook.Store
	exec  rpc.Executor
	ctx   context.Context

	copyText func(string) error
	now      func() time.Time
}

func newOverlay(ctx context.Context, book *addressbook.Store, ex rpc.Executor, defaultAddress string, copyText func(string) error, now func() time.Time) *overlay {
	o := &overlay{
		state:    OverlayState{BookIndex: book.Len() - 1},
		input:    newAddressInput(),
		book:     book,
		exec:     ex,
		ctx:      ctx,
		copyText: copyText,
		now:      now,
	}
	if book.Len() > 0 {
		o.setBuffer(book.At(book.Len() - 1).Address)
	} else {
		o.setBuffer(defaultAddress)
	}
	return o
}

// newAddressInput builds the single-line address editor. Paste and
// completion are switched off so every rune arrives through edit.
func newAddressInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "bc1q… or tb1q…"
	ti.Cursor.Style = cursorStyle
	ti.KeyMap.Paste.SetEnabled(false)
	ti.KeyMap.AcceptSuggestion.SetEnabled(false)
	ti.KeyMap.NextSuggestion.SetEnabled(false)
	ti.KeyMap.PrevSuggestion.SetEnabled(false)
	_ = ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return ti
}

func (o *overlay) address() string {
	return o.input.Value()
}

func (o *overlay) cursor() int {
	return o.input.Position()
}

// validity classifies the buffer as it is right now.
func (o *overlay) validity() models.Validity {
	return address.Validate(o.address())
}

func (o *overlay) setBuffer(s string) {
	o.input.SetValue(s)
	o.input.CursorEnd()
}

// setInputWidth sizes the visible part of the input. One cell is kept for
// the cursor past the last character.
func (o *overlay) setInputWidth(w int) {
	o.input.Width = max(w-1, 1)
	o.input.SetCursor(o.input.Position())
}

func (o *overlay) setStatus(text string, isErr bool) {
	o.state.Status = &models.StatusMessage{Text: text, IsError: isErr, IssuedAt: o.now()}
}

func (o *overlay) open() {
	o.state.Open = true
	if o.book.Len() > 0 && o.state.BookIndex >= 0 {
		o.setBuffer(o.book.At(o.state.BookIndex).Address)
		return
	}
	o.input.CursorEnd()
}

func (o *overlay) close() {
	o.state.Open = false
}

// editable reports whether r may be typed into the buffer. Addresses never
// contain whitespace or control characters.
func editable(r rune) bool {
	return !unicode.IsControl(r) && !unicode.IsSpace(r)
}

// edit hands a key to the address input after dropping runes that cannot
// appear in an address.
func (o *overlay) edit(msg tea.KeyMsg) {
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		kept := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if editable(r) {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			return
		}
		msg.Type, msg.Runes = tea.KeyRunes, kept
	}
	o.input, _ = o.input.Update(msg)
}

func (o *overlay) bookUp() {
	if o.book.Len() == 0 || o.state.BookIndex <= 0 {
		return
	}
	o.state.BookIndex--
	o.setBuffer(o.book.At(o.state.BookIndex).Address)
}

func (o *overlay) bookDown() {
	if o.book.Len() == 0 || o.state.BookIndex >= o.book.Len()-1 {
		return
	}
	o.state.BookIndex++
	o.setBuffer(o.book.At(o.state.BookIndex).Address)
}

// fetchNew asks the wallet for a new address without saving it.
func (o *overlay) fetchNew() {
	addr, err := rpc.NewAddress(o.ctx, o.exec)
	if err != nil {
		logging.Warn("getnewaddress failed", zap.Error(err))
		o.setStatus(fmt.Sprintf("getnewaddress failed: %v", err), true)
		return
	}
	o.setBuffer(addr)
	o.setStatus("Fetched new address (not saved)", false)
}

// fetchNewAndSave appends a fresh address to the book and selects it. The
// entry stays in memory even when writing the book fails.
func (o *overlay) fetchNewAndSave() {
	addr, err := rpc.NewAddress(o.ctx, o.exec)
	if err != nil {
		logging.Warn("getnewaddress failed", zap.Error(err))
		o.setStatus(fmt.Sprintf("getnewaddress failed: %v", err), true)
		return
	}
	if !address.Validate(addr).IsValid() {
		logging.Warn("getnewaddress returned an invalid address", zap.String("address", addr))
		o.setStatus("getnewaddress returned an invalid address", true)
		return
	}

	saveErr := o.book.Append(models.AddressEntry{CreatedAt: o.now().UTC(), Address: addr})
	o.state.BookIndex = o.book.Len() - 1
	o.setBuffer(addr)

	if saveErr != nil {
		o.setStatus(fmt.Sprintf("Address kept in memory, save failed: %v", saveErr), true)
		return
	}
	o.setStatus("Saved new address", false)
}

func (o *overlay) copyAddress() {
	if err := o.copyText(o.address()); err != nil {
		logging.Warn("clipboard copy failed", zap.Error(err))
		o.setStatus(fmt.Sprintf("Clipboard error: %v", err), true)
		return
	}
	o.setStatus("Copied to clipboard", false)
}

// statusLine returns the status text while it is still fresh.
func (o *overlay) statusLine(ttl time.Duration) (text string, isErr, ok bool) {
	s := o.state.Status
	if !s.Visible(o.now(), ttl) {
		return "", false, false
	}
	return strings.TrimSpace(s.Text), s.IsError, true
}
