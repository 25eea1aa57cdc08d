// Package textbuf provides an in-memory single-line text input that stands in
// for a host widget.
package textbuf

import "unicode/utf8"

// Buffer is a line of text with a cursor.
// Every change of the text, by the user or programmatic, is reported to the
// change listener with the cursor position right after the change, the way
// text widgets call their listeners synchronously.
type Buffer struct {
	text     []rune
	cursor   int
	accept   func(rune) bool
	onChange func(cursor int)
	onSelect func(start, end int)
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// OnChange registers fn to be called after every change of the text.
func (b *Buffer) OnChange(fn func(cursor int)) {
	b.onChange = fn
}

// OnSelect registers fn to be called after every cursor move.
func (b *Buffer) OnSelect(fn func(start, end int)) {
	b.onSelect = fn
}

// SetFilter restricts the characters [Buffer.Type] inserts to those accepted by fn.
// A nil fn accepts everything.
func (b *Buffer) SetFilter(fn func(rune) bool) {
	b.accept = fn
}

// Text returns the current text.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Cursor returns the cursor position in runes.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetText replaces the text and moves the cursor to its end.
func (b *Buffer) SetText(text string) {
	b.text = []rune(text)
	b.cursor = len(b.text)
	b.changed()
}

// SetSelection moves the cursor, clamped to the text.
func (b *Buffer) SetSelection(pos int) {
	b.cursor = min(max(pos, 0), len(b.text))
	if b.onSelect != nil {
		b.onSelect(b.cursor, b.cursor)
	}
}

// MoveTo is [Buffer.SetSelection] on behalf of the user.
func (b *Buffer) MoveTo(pos int) {
	b.SetSelection(pos)
}

// Type inserts the characters of s accepted by the filter at the cursor.
// Nothing happens if no character is accepted.
func (b *Buffer) Type(s string) {
	rs := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if b.accept == nil || b.accept(r) {
			rs = append(rs, r)
		}
	}
	b.insert(rs)
}

// Paste inserts s at the cursor, bypassing the filter.
func (b *Buffer) Paste(s string) {
	b.insert([]rune(s))
}

func (b *Buffer) insert(rs []rune) {
	if len(rs) == 0 {
		return
	}
	text := make([]rune, 0, len(b.text)+len(rs))
	text = append(text, b.text[:b.cursor]...)
	text = append(text, rs...)
	text = append(text, b.text[b.cursor:]...)
	b.text = text
	b.cursor += len(rs)
	b.changed()
}

// Backspace deletes the character before the cursor.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	b.changed()
}

// Delete deletes the character after the cursor.
func (b *Buffer) Delete() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
	b.changed()
}

// Render returns the text with a '|' at the cursor.
func (b *Buffer) Render() string {
	return string(b.text[:b.cursor]) + "|" + string(b.text[b.cursor:])
}

func (b *Buffer) changed() {
	if b.onChange != nil {
		b.onChange(b.cursor)
	}
}
