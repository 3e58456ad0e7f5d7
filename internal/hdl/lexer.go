// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"strings"
	"unicode"

	"github.com/db47h/hwdepth/internal/lex"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Ident
	Number
	String
	ParenOpen
	ParenClose
	BracketOpen
	BracketClose
	BraceOpen
	BraceClose
	Comma
	Dot
	Colon
	Hash
	Equal
)

// All item values are strings holding the token text.

// Lexer returns a new lexer for a single HDL statement.
//
func Lexer(input string) lex.Interface {
	return lex.New(strings.NewReader(input), lexInit)
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case isIdentStart(r):
		return lexIdent
	case '0' <= r && r <= '9' || r == '\'':
		return lexNumber
	case r == '"':
		return lexString
	case r == '(':
		l.Emit(ParenOpen, "(")
	case r == ')':
		l.Emit(ParenClose, ")")
	case r == '[':
		l.Emit(BracketOpen, "[")
	case r == ']':
		l.Emit(BracketClose, "]")
	case r == '{':
		l.Emit(BraceOpen, "{")
	case r == '}':
		l.Emit(BraceClose, "}")
	case r == ',':
		l.Emit(Comma, ",")
	case r == '.':
		l.Emit(Dot, ".")
	case r == ':':
		l.Emit(Colon, ":")
	case r == '#':
		l.Emit(Hash, "#")
	case isOperator(r):
		return lexOperator
	default:
		l.Emit(Raw, string(r))
	}
	return nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

func isOperator(r rune) bool {
	return strings.ContainsRune("=<>!&|^~+-*/%?", r)
}

// lexNumber lexes decimal literals and sized or unsized based literals like
// 4'b10x0, 'hFF or 8'sd3.
//
func lexNumber(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.WriteRune(l.Current())
	r := l.Current()
	if r != '\'' {
		r = l.Next()
		for '0' <= r && r <= '9' || r == '_' {
			buf.WriteRune(r)
			r = l.Next()
		}
		if r != '\'' {
			l.Backup()
			l.Emit(Number, buf.String())
			return nil
		}
		buf.WriteRune(r)
	}
	// base specifier
	r = l.Next()
	if r == 's' || r == 'S' {
		buf.WriteRune(r)
		r = l.Next()
	}
	if strings.ContainsRune("bBoOdDhH", r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	for isBasedDigit(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Number, buf.String())
	return nil
}

func isBasedDigit(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F' ||
		strings.ContainsRune("xXzZ?_", r)
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for isIdentPart(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

func lexString(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.WriteRune('"')
	for {
		r := l.Next()
		switch r {
		case lex.EOF:
			l.Emit(String, buf.String())
			return nil
		case '\\':
			buf.WriteRune(r)
			if r = l.Next(); r == lex.EOF {
				l.Emit(String, buf.String())
				return nil
			}
		case '"':
			buf.WriteRune(r)
			l.Emit(String, buf.String())
			return nil
		}
		buf.WriteRune(r)
	}
}

// lexOperator groups a run of operator characters into a single Raw item.
// A lone '=' is emitted as Equal.
//
func lexOperator(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.WriteRune(l.Current())
	r := l.Next()
	for r != lex.EOF && isOperator(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	if op := buf.String(); op == "=" {
		l.Emit(Equal, op)
	} else {
		l.Emit(Raw, op)
	}
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}

// Tokenize lexes the whole input and returns all items up to, but not
// including, EOF.
//
func Tokenize(input string) []lex.Item {
	l := Lexer(input)
	var items []lex.Item
	for {
		i := l.Lex()
		if i.Type == EOF {
			return items
		}
		items = append(items, i)
	}
}
