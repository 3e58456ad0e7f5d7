// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex provides a minimal state function based lexer.
//
// A lexer is driven by StateFn functions. Each call to Lex runs state
// functions until one of them emits an item. A state function returning nil
// resets the lexer to its initial state and marks the start of a new token.
//
package lex

import (
	"bufio"
	"fmt"
	"io"
)

// EOF is both the rune returned by Next at end of input and the Type of the
// item emitted at end of input.
//
const EOF = -1

// Type is the type of a lexed item.
//
type Type int

// Pos is a byte offset in the input.
//
type Pos int

// Item is a lexed item.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	switch v := i.Value.(type) {
	case string:
		return v
	case rune:
		return string(v)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprint(v)
	}
}

// Interface is implemented by lexers.
//
type Interface interface {
	// Lex returns the next item in the input stream.
	Lex() Item
}

// A StateFn is a state function.
//
type StateFn func(l *Lexer) StateFn

// Lexer is a state function based lexer.
//
type Lexer struct {
	r     io.RuneReader
	init  StateFn
	state StateFn
	items []Item

	cur    rune
	width  int
	backed bool
	pos    Pos // offset of the next rune
	start  Pos // offset of the current token
}

// New returns a new lexer reading from r and starting in state init.
//
func New(r io.Reader, init StateFn) *Lexer {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Lexer{r: rr, init: init}
}

// Lex implements Interface.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.start = l.pos
			l.state = l.init
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next returns the next rune in the input or EOF.
//
func (l *Lexer) Next() rune {
	if l.backed {
		l.backed = false
		l.pos += Pos(l.width)
		return l.cur
	}
	r, w, err := l.r.ReadRune()
	if err != nil {
		l.cur, l.width = EOF, 0
		return EOF
	}
	l.cur, l.width = r, w
	l.pos += Pos(w)
	return r
}

// Backup reverts the last call to Next. Only one rune can be backed up.
//
func (l *Lexer) Backup() {
	if l.backed {
		panic("lex: Backup called twice")
	}
	l.backed = true
	l.pos -= Pos(l.width)
}

// Peek returns the next rune without consuming it.
//
func (l *Lexer) Peek() rune {
	r := l.Next()
	l.Backup()
	return r
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune {
	return l.cur
}

// AcceptWhile consumes runes for as long as f returns true.
//
func (l *Lexer) AcceptWhile(f func(r rune) bool) {
	r := l.Next()
	for r != EOF && f(r) {
		r = l.Next()
	}
	l.Backup()
}

// Pos returns the offset of the current token.
//
func (l *Lexer) Pos() Pos {
	return l.start
}

// Emit emits an item of type t at the position of the current token.
// The position of the next token starts right after the last rune returned by
// Next.
//
func (l *Lexer) Emit(t Type, value interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: value})
	l.start = l.pos
}
