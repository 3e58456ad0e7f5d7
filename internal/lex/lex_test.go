package lex_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/db47h/hwdepth/internal/lex"
	"github.com/stretchr/testify/assert"
)

const (
	tWord lex.Type = iota + 1
	tNum
	tOther
)

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		l.Emit(lex.EOF, nil)
		return nil
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case unicode.IsLetter(r):
		var b strings.Builder
		b.WriteRune(r)
		for r = l.Next(); unicode.IsLetter(r); r = l.Next() {
			b.WriteRune(r)
		}
		l.Backup()
		l.Emit(tWord, b.String())
	case unicode.IsDigit(r):
		l.AcceptWhile(unicode.IsDigit)
		l.Emit(tNum, "n")
	default:
		if l.Peek() == '=' {
			l.Next()
			l.Emit(tOther, string(r)+"=")
			break
		}
		l.Emit(tOther, r)
	}
	return nil
}

func TestLexer(t *testing.T) {
	l := lex.New(strings.NewReader("héllo  42 <= x+"), lexInit)
	want := []lex.Item{
		{Type: tWord, Pos: 0, Value: "héllo"},
		{Type: tNum, Pos: 8, Value: "n"},
		{Type: tOther, Pos: 11, Value: "<="},
		{Type: tWord, Pos: 14, Value: "x"},
		{Type: tOther, Pos: 15, Value: '+'},
		{Type: lex.EOF, Pos: 16, Value: nil},
		{Type: lex.EOF, Pos: 16, Value: nil},
	}
	for _, w := range want {
		assert.Equal(t, w, l.Lex())
	}
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "abc", lex.Item{Value: "abc"}.String())
	assert.Equal(t, "+", lex.Item{Value: '+'}.String())
	assert.Equal(t, "42", lex.Item{Value: 42}.String())
	assert.Equal(t, "<nil>", lex.Item{}.String())
}

func TestLexer_Backup(t *testing.T) {
	l := lex.New(strings.NewReader("ab"), lexInit)
	assert.Equal(t, 'a', l.Next())
	l.Backup()
	assert.Panics(t, l.Backup)
	assert.Equal(t, 'a', l.Next())
	assert.Equal(t, 'a', l.Current())
	assert.Equal(t, 'b', l.Next())
	assert.Equal(t, rune(lex.EOF), l.Next())
	l.Backup()
	assert.Equal(t, rune(lex.EOF), l.Next())
}
