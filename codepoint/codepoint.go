// Package codepoint provides lazy Unicode scalar iteration over the byte and
// 16-bit unit buffers that local path text comes in.
package codepoint

// Iterator yields the scalars of a buffer one at a time. Reading past the end
// returns 0 forever.
type Iterator interface {
	// Get returns the scalar at the current position and advances past it.
	Get() rune
	// End reports whether the whole buffer has been consumed.
	End() bool
}

// ForString iterates text as 8-bit units. A four-byte UTF-8 sequence is
// combined into a single scalar; any other byte is yielded as-is, so
// malformed input passes through unit by unit instead of failing.
func ForString(text string) Iterator {
	return &narrowIterator{text: text}
}

// ForWide iterates units as UTF-16, combining surrogate pairs into a single
// scalar. Unpaired surrogates are yielded as-is.
func ForWide(units []uint16) Iterator {
	return &wideIterator{units: units}
}

type narrowIterator struct {
	text string
	pos  int
}

func (it *narrowIterator) End() bool {
	return it.pos >= len(it.text)
}

func (it *narrowIterator) Get() rune {
	if it.End() {
		return 0
	}
	lead := it.text[it.pos]
	it.pos++
	if lead&0xf8 == 0xf0 && it.pos+3 <= len(it.text) {
		c := rune(lead&0x07) << 18
		c |= rune(it.text[it.pos]&0x3f) << 12
		c |= rune(it.text[it.pos+1]&0x3f) << 6
		c |= rune(it.text[it.pos+2] & 0x3f)
		it.pos += 3
		return c
	}
	return rune(lead)
}

type wideIterator struct {
	units []uint16
	pos   int
}

func (it *wideIterator) End() bool {
	return it.pos >= len(it.units)
}

func (it *wideIterator) Get() rune {
	if it.End() {
		return 0
	}
	unit := it.units[it.pos]
	it.pos++
	if unit >= 0xd800 && unit <= 0xdbff && !it.End() {
		if lo := it.units[it.pos]; lo >= 0xdc00 && lo <= 0xdfff {
			it.pos++
			return 0x10000 + (rune(unit)-0xd800)<<10 + (rune(lo) - 0xdc00)
		}
	}
	return rune(unit)
}
