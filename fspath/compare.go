package fspath

import (
	"cmp"
	"unicode"

	"github.com/mtth/syncpath/codepoint"
	"github.com/mtth/syncpath/escape"
	"github.com/mtth/syncpath/internal/except"
)

// Text enumerates the operand shapes the comparator accepts: plain 8-bit
// strings, 16-bit unit buffers, and either path flavor.
type Text interface {
	string | []uint16 | Local | Remote
}

// CompareUTF orders lhs and rhs codepoint by codepoint in a single lazy
// pass. Sides marked escaped have well-formed percent escapes decoded on the
// fly, malformed ones compare as their literal characters. With
// caseInsensitive, codepoints fold to uppercase before comparing. The first
// difference decides the sign; a strict prefix sorts before its extension.
func CompareUTF[L, R Text](lhs L, lhsEscaped bool, rhs R, rhsEscaped bool, caseInsensitive bool) int {
	ls := stream{it: iterate(lhs), escaped: lhsEscaped, fold: caseInsensitive}
	rs := stream{it: iterate(rhs), escaped: rhsEscaped, fold: caseInsensitive}
	for {
		l, r := ls.next(), rs.next()
		if l != r {
			return cmp.Compare(l, r)
		}
		if l == 0 {
			return 0
		}
	}
}

func iterate[T Text](text T) codepoint.Iterator {
	switch v := any(text).(type) {
	case string:
		return codepoint.ForString(v)
	case []uint16:
		return codepoint.ForWide(v)
	case Local:
		return codepoint.ForString(v.path[v.compareStart():])
	case Remote:
		return codepoint.ForString(v.path)
	default:
		except.Never("comparing unsupported text %T", text)
		return nil
	}
}

// stream adapts an iterator with escape decoding and case folding. It keeps
// up to two lookahead units for when a '%' turns out not to start an escape.
type stream struct {
	it      codepoint.Iterator
	escaped bool
	fold    bool
	pending [2]rune
	queued  int
}

func (s *stream) unit() rune {
	if s.queued > 0 {
		c := s.pending[0]
		s.pending[0] = s.pending[1]
		s.queued--
		return c
	}
	return s.it.Get()
}

func (s *stream) next() rune {
	c := s.unit()
	if s.escaped && c == '%' {
		if d, ok := s.decodeEscape(); ok {
			c = d
		}
	}
	if s.fold {
		c = unicode.ToUpper(c)
	}
	return c
}

// decodeEscape consumes up to two units after a '%'. When they do not form
// an escape they are queued again, terminators excluded, so the caller sees
// them unchanged on the following reads.
func (s *stream) decodeEscape() (rune, bool) {
	hi := s.unit()
	lo := s.unit()
	if hi < 0x80 && lo < 0x80 {
		h, hiOK := escape.HexVal(byte(hi))
		l, loOK := escape.HexVal(byte(lo))
		if hiOK && loOK {
			return rune(h<<4 | l), true
		}
	}
	s.queued = 0
	if hi != 0 {
		s.pending[s.queued] = hi
		s.queued++
	}
	if lo != 0 {
		s.pending[s.queued] = lo
		s.queued++
	}
	return 0, false
}
