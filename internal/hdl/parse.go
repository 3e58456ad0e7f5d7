package hdl

import (
	"strings"

	"github.com/db47h/hwdepth/internal/lex"
	"github.com/pkg/errors"
)

// Port is a single connection in an instance port list.
//
type Port struct {
	Formal string // port name for named connections .Formal(Signal), empty otherwise
	Signal string // connected signal, empty for unconnected ports
}

// Instance is a cell instantiation: Type Name ( Ports ).
//
type Instance struct {
	Type  string
	Name  string
	Ports []Port
}

// Signals returns the connected signals in port order.
//
func (i *Instance) Signals() []string {
	s := make([]string, len(i.Ports))
	for n, p := range i.Ports {
		s[n] = p.Signal
	}
	return s
}

// Assignment is a continuous assignment: assign LHS = expr.
// RHS lists identifiers found in expr, in order of appearance.
//
type Assignment struct {
	LHS string
	RHS []string
}

// Statement is a ';' terminated statement found in a source text.
//
type Statement struct {
	Line int // 1 based line number
	Text string
}

// keywords that can start a statement shaped like an instance but are not one.
var keywords = map[string]bool{
	"module":      true,
	"macromodule": true,
	"primitive":   true,
	"function":    true,
	"task":        true,
	"always":      true,
	"initial":     true,
	"assign":      true,
	"if":          true,
	"else":        true,
	"for":         true,
	"while":       true,
	"repeat":      true,
	"case":        true,
	"casex":       true,
	"casez":       true,
	"begin":       true,
	"end":         true,
	"input":       true,
	"output":      true,
	"inout":       true,
	"wire":        true,
	"reg":         true,
	"parameter":   true,
	"localparam":  true,
	"return":      true,
}

// StripComments replaces // and /* */ comments with blanks. Newlines are
// preserved so that line numbers stay valid.
//
func StripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case inString:
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(c)
				i++
				c = src[i]
			} else if c == '"' || c == '\n' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				b.WriteByte('\n')
			}
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i < len(src) && !(src[i] == '*' && i+1 < len(src) && src[i+1] == '/') {
				if src[i] == '\n' {
					b.WriteByte('\n')
				}
				i++
			}
			i++ // skip '/'
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Statements splits src into ';' terminated statements, line by line.
// Comments are removed first. Unterminated text at the end of a line is
// dropped.
//
func Statements(src string) []Statement {
	var out []Statement
	for n, line := range strings.Split(StripComments(src), "\n") {
		for {
			i := strings.IndexByte(line, ';')
			if i < 0 {
				break
			}
			if s := strings.TrimSpace(line[:i]); s != "" {
				out = append(out, Statement{Line: n + 1, Text: s})
			}
			line = line[i+1:]
		}
	}
	return out
}

// Classify parses a single statement (without its terminating ';') and
// returns either an *Instance or an *Assignment. Statements that are neither
// return a nil value and an error describing why.
//
func Classify(stmt string) (interface{}, error) {
	p := &parser{input: stmt, toks: Tokenize(stmt)}
	if len(p.toks) == 0 || p.toks[0].Type != Ident {
		return nil, p.errorf(0, "expected identifier")
	}
	if p.toks[0].Value == "assign" {
		return p.assignment()
	}
	return p.instance()
}

type parser struct {
	input string
	toks  []lex.Item
}

func (p *parser) errorf(i int, msg string) error {
	pos := lex.Pos(len(p.input))
	if i < len(p.toks) {
		pos = p.toks[i].Pos
	}
	return parseError(p.input, pos, msg)
}

func (p *parser) is(i int, t lex.Type) bool {
	return i < len(p.toks) && p.toks[i].Type == t
}

// skipGroup returns the index right after the group that opens at i.
//
func (p *parser) skipGroup(i int) (int, error) {
	depth := 0
	for j := i; j < len(p.toks); j++ {
		switch p.toks[j].Type {
		case ParenOpen, BracketOpen, BraceOpen:
			depth++
		case ParenClose, BracketClose, BraceClose:
			depth--
			if depth == 0 {
				return j + 1, nil
			}
		}
	}
	return 0, p.errorf(i, "unbalanced "+p.toks[i].String())
}

// skipDelay skips #(...), #number or #ident starting at i.
//
func (p *parser) skipDelay(i int) (int, error) {
	switch {
	case p.is(i+1, ParenOpen):
		return p.skipGroup(i + 1)
	case p.is(i+1, Number), p.is(i+1, Ident):
		return i + 2, nil
	}
	return 0, p.errorf(i+1, "expected value after '#'")
}

func (p *parser) instance() (interface{}, error) {
	typ := p.toks[0].Value.(string)
	if keywords[typ] {
		return nil, p.errorf(0, "unexpected keyword "+typ)
	}
	i := 1
	var err error
	// parameter value assignment or primitive delay
	if p.is(i, Hash) {
		if i, err = p.skipDelay(i); err != nil {
			return nil, err
		}
	}
	if !p.is(i, Ident) {
		return nil, p.errorf(i, "expected instance name")
	}
	inst := &Instance{Type: typ, Name: p.toks[i].Value.(string)}
	i++
	// instance array range
	if p.is(i, BracketOpen) {
		if i, err = p.skipGroup(i); err != nil {
			return nil, err
		}
	}
	if !p.is(i, ParenOpen) {
		return nil, p.errorf(i, "expected '(' after instance name")
	}
	end, err := p.skipGroup(i)
	if err != nil {
		return nil, err
	}
	if end != len(p.toks) {
		return nil, p.errorf(end, "unexpected "+p.toks[end].String()+" after port list")
	}
	// an empty list is a port-less instance
	if end-i == 2 {
		return inst, nil
	}
	for _, r := range p.split(i+1, end-1) {
		port, err := p.port(r[0], r[1])
		if err != nil {
			return nil, err
		}
		inst.Ports = append(inst.Ports, port)
	}
	return inst, nil
}

// split splits toks[start:end] on top level commas and returns the bounds of
// each element.
//
func (p *parser) split(start, end int) [][2]int {
	var out [][2]int
	depth := 0
	from := start
	for j := start; j < end; j++ {
		switch p.toks[j].Type {
		case ParenOpen, BracketOpen, BraceOpen:
			depth++
		case ParenClose, BracketClose, BraceClose:
			depth--
		case Comma:
			if depth == 0 {
				out = append(out, [2]int{from, j})
				from = j + 1
			}
		}
	}
	return append(out, [2]int{from, end})
}

func (p *parser) port(start, end int) (Port, error) {
	if !p.is(start, Dot) {
		return Port{Signal: p.text(start, end)}, nil
	}
	if !p.is(start+1, Ident) {
		return Port{}, p.errorf(start+1, "expected port name after '.'")
	}
	formal := p.toks[start+1].Value.(string)
	if start+2 == end {
		// .port shorthand connects the signal with the same name
		return Port{Formal: formal, Signal: formal}, nil
	}
	if !p.is(start+2, ParenOpen) {
		return Port{}, p.errorf(start+2, "expected '(' after port name")
	}
	rp, err := p.skipGroup(start + 2)
	if err != nil {
		return Port{}, err
	}
	if rp != end {
		return Port{}, p.errorf(rp, "unexpected "+p.toks[rp].String()+" in port connection")
	}
	return Port{Formal: formal, Signal: p.text(start+3, end-1)}, nil
}

// text concatenates token values in toks[start:end].
//
func (p *parser) text(start, end int) string {
	var b strings.Builder
	for _, t := range p.toks[start:end] {
		b.WriteString(t.Value.(string))
	}
	return b.String()
}

func (p *parser) assignment() (interface{}, error) {
	i := 1
	var err error
	if p.is(i, Hash) {
		if i, err = p.skipDelay(i); err != nil {
			return nil, err
		}
	}
	if !p.is(i, Ident) {
		return nil, p.errorf(i, "expected assignment target")
	}
	a := &Assignment{LHS: p.toks[i].Value.(string)}
	i++
	// bit or part select on the target
	if p.is(i, BracketOpen) {
		if i, err = p.skipGroup(i); err != nil {
			return nil, err
		}
	}
	if !p.is(i, Equal) {
		return nil, p.errorf(i, "expected '='")
	}
	i++
	if i == len(p.toks) {
		return nil, p.errorf(i, "empty expression")
	}
	for _, t := range p.toks[i:] {
		if t.Type == Ident {
			a.RHS = append(a.RHS, t.Value.(string))
		}
	}
	return a, nil
}

func parseError(in string, pos lex.Pos, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
