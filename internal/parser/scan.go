package parser

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

// fieldScanner splits a stream into records of raw fields. A field
// wrapped in single or double quotes carries the separator and line
// breaks verbatim; a quote rune equal to the separator is never
// treated as a quote. Records end at '\n', "\r\n", a lone '\r', or
// end of input.
type fieldScanner struct {
	br       *bufio.Reader
	sepFirst rune
	sepRest  []byte // bytes of the separator after its first rune
}

func newFieldScanner(br *bufio.Reader, sep string) *fieldScanner {
	first, size := utf8.DecodeRuneInString(sep)
	return &fieldScanner{
		br:       br,
		sepFirst: first,
		sepRest:  []byte(sep[size:]),
	}
}

// next reads one record. It returns io.EOF only when no rune at all
// was available; a final record without a trailing newline is still
// returned. An unterminated quoted span is ErrUnterminatedQuote.
func (s *fieldScanner) next() ([]string, error) {
	var (
		fields  []string
		field   []rune
		started bool
		atStart = true
	)
	endField := func() {
		fields = append(fields, string(field))
		field = field[:0]
	}

	for {
		r, _, err := s.br.ReadRune()
		if err == io.EOF {
			if !started {
				return nil, io.EOF
			}
			endField()
			return fields, nil
		}
		if err != nil {
			return nil, err
		}
		started = true

		switch {
		case r == '\n':
			endField()
			return fields, nil

		case r == '\r':
			s.swallowLF()
			endField()
			return fields, nil

		case r == s.sepFirst && s.matchSepRest():
			endField()
			atStart = true
			continue

		case atStart && (r == '"' || r == '\'') && !s.isSeparator(r):
			quoted, err := s.readQuoted(r)
			if err != nil {
				return nil, err
			}
			field = append(field, quoted...)
			atStart = false

		default:
			field = append(field, r)
			atStart = false
		}
	}
}

func (s *fieldScanner) isSeparator(r rune) bool {
	return r == s.sepFirst && len(s.sepRest) == 0
}

// matchSepRest consumes the remainder of a multi-rune separator whose
// first rune was already read. It reports false without consuming
// anything when the lookahead does not match.
func (s *fieldScanner) matchSepRest() bool {
	if len(s.sepRest) == 0 {
		return true
	}
	peek, err := s.br.Peek(len(s.sepRest))
	if err != nil || !bytes.Equal(peek, s.sepRest) {
		return false
	}
	_, _ = s.br.Discard(len(s.sepRest))
	return true
}

// readQuoted consumes runes up to the matching close quote. No escape
// sequence exists inside a quoted span; the first occurrence of the
// quote rune ends it.
func (s *fieldScanner) readQuoted(quote rune) ([]rune, error) {
	var out []rune
	for {
		r, _, err := s.br.ReadRune()
		if err == io.EOF {
			return nil, ErrUnterminatedQuote
		}
		if err != nil {
			return nil, err
		}
		if r == quote {
			return out, nil
		}
		out = append(out, r)
	}
}

// swallowLF consumes the '\n' of a "\r\n" pair, leaving anything else
// in place.
func (s *fieldScanner) swallowLF() {
	next, _, err := s.br.ReadRune()
	if err != nil {
		return
	}
	if next != '\n' {
		_ = s.br.UnreadRune()
	}
}
