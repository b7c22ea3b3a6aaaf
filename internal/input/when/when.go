// Package when compiles textual context expressions into evaluable
// predicates.
//
// Expressions guard keybindings: a binding fires only when its predicate
// holds against the current context. The grammar covers bare conditions,
// negation, conjunction, disjunction, equality and parentheses:
//
//	editorTextFocus
//	!editorReadonly
//	editorTextFocus && !editorReadonly
//	resourceLangId == go || resourceLangId == python
//
// Parsing and evaluation are separate on purpose: a malformed expression
// must fail at registration time, not silently never (or always) match.
package when

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrParse indicates a malformed context expression.
var ErrParse = errors.New("when: invalid expression")

// Context holds the named values predicates evaluate against.
type Context struct {
	// Conditions holds boolean context keys, e.g. "editorTextFocus".
	Conditions map[string]bool

	// Variables holds string context keys, e.g. "resourceLangId".
	Variables map[string]string
}

// NewContext creates an empty evaluation context.
func NewContext() *Context {
	return &Context{
		Conditions: make(map[string]bool),
		Variables:  make(map[string]string),
	}
}

// Predicate is a compiled context expression.
// The zero-value and nil predicates evaluate to true.
type Predicate struct {
	root node
	expr string
}

// Always is the predicate that matches every context.
var Always = &Predicate{}

// Parse compiles an expression into a Predicate.
// The empty expression compiles to the always-true predicate.
func Parse(expr string) (*Predicate, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Always, nil
	}

	p := &parser{input: trimmed}
	root, err := p.parseOr()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrParse, expr, err)
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("%w: parsing %q: unexpected %q at offset %d",
			ErrParse, expr, rest(p.input, p.pos), p.pos)
	}

	return &Predicate{root: root, expr: trimmed}, nil
}

// Eval evaluates the predicate against a context.
// A nil predicate, the always-true predicate, and a nil context's missing
// keys all follow zero-value semantics: absent conditions are false, absent
// variables are empty.
func (p *Predicate) Eval(ctx *Context) bool {
	if p == nil || p.root == nil {
		return true
	}
	if ctx == nil {
		ctx = NewContext()
	}
	return p.root.eval(ctx)
}

// String returns the source expression, or "" for the always-true predicate.
func (p *Predicate) String() string {
	if p == nil {
		return ""
	}
	return p.expr
}

// Expression nodes.

type node interface {
	eval(ctx *Context) bool
}

type orNode struct{ left, right node }

func (n orNode) eval(ctx *Context) bool { return n.left.eval(ctx) || n.right.eval(ctx) }

type andNode struct{ left, right node }

func (n andNode) eval(ctx *Context) bool { return n.left.eval(ctx) && n.right.eval(ctx) }

type notNode struct{ inner node }

func (n notNode) eval(ctx *Context) bool { return !n.inner.eval(ctx) }

type condNode struct{ name string }

func (n condNode) eval(ctx *Context) bool { return ctx.Conditions[n.name] }

type eqNode struct {
	name   string
	value  string
	negate bool
}

func (n eqNode) eval(ctx *Context) bool {
	eq := ctx.Variables[n.name] == n.value
	if n.negate {
		return !eq
	}
	return eq
}

// Recursive-descent parser.

type parser struct {
	input string
	pos   int
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.consume("||") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.consume("&&") {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '!' && !p.peekIs("!=") {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notNode{inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	p.skipSpace()

	if p.consume("(") {
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.consume(")") {
			return nil, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
		}
		return inner, nil
	}

	name := p.readIdent()
	if name == "" {
		return nil, fmt.Errorf("expected identifier at offset %d", p.pos)
	}

	if p.consume("==") {
		value := p.readIdent()
		if value == "" {
			return nil, fmt.Errorf("expected value after == at offset %d", p.pos)
		}
		return eqNode{name: name, value: value}, nil
	}
	if p.consume("!=") {
		value := p.readIdent()
		if value == "" {
			return nil, fmt.Errorf("expected value after != at offset %d", p.pos)
		}
		return eqNode{name: name, value: value, negate: true}, nil
	}

	return condNode{name: name}, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) consume(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) peekIs(tok string) bool {
	return strings.HasPrefix(p.input[p.pos:], tok)
}

func (p *parser) readIdent() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && isIdentRune(rune(p.input[p.pos])) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-' || r == '/'
}

func rest(s string, pos int) string {
	const max = 12
	if len(s)-pos > max {
		return s[pos:pos+max] + "..."
	}
	return s[pos:]
}
