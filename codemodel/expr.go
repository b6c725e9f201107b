package codemodel

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is an expression in a method body, initializer or annotation.
type Expr interface {
	expr()
}

// Stmt is a statement in a method body.
type Stmt interface {
	stmt()
}

// This is the receiver.
type This struct{}

// FieldRef reads a field of Target, e.g. this.name.
type FieldRef struct {
	Target Expr
	Name   string
}

// ParamRef reads a method parameter.
type ParamRef struct {
	Name string
}

// Literal is a constant. Text is its Java source form; Value is the decoded
// JSON value, for emitters that render literals in another syntax.
type Literal struct {
	Text  string
	Value any
}

// New constructs an instance of Type. Diamond writes "new T<>(...)".
type New struct {
	Type    *Type
	Args    []Expr
	Diamond bool
}

// Invoke calls Method on Target, or statically on Static when Target is nil.
type Invoke struct {
	Target Expr
	Static *Type
	Method string
	Args   []Expr
}

// Return returns Value (or nothing when Value is nil).
type Return struct {
	Value Expr
}

// Assign stores Value into Target.
type Assign struct {
	Target Expr
	Value  Expr
}

func (This) expr()     {}
func (FieldRef) expr() {}
func (ParamRef) expr() {}
func (Literal) expr()  {}
func (New) expr()      {}
func (Invoke) expr()   {}
func (Return) stmt()   {}
func (Assign) stmt()   {}

// ThisField returns this.name.
func ThisField(name string) FieldRef {
	return FieldRef{Target: This{}, Name: name}
}

// Null is the null literal.
var Null = Literal{Text: "null"}

// BoolLit returns a boolean literal.
func BoolLit(v bool) Literal {
	return Literal{Text: strconv.FormatBool(v), Value: v}
}

// IntLit returns an int literal.
func IntLit(v int64) Literal {
	return Literal{Text: strconv.FormatInt(v, 10), Value: v}
}

// LongLit returns a long literal, e.g. 42L.
func LongLit(v int64) Literal {
	return Literal{Text: strconv.FormatInt(v, 10) + "L", Value: v}
}

// DoubleLit returns a double literal, e.g. 2.5D.
func DoubleLit(v float64) Literal {
	return Literal{Text: strconv.FormatFloat(v, 'g', -1, 64) + "D", Value: v}
}

// FloatLit returns a float literal, e.g. 2.5F.
func FloatLit(v float64) Literal {
	return Literal{Text: strconv.FormatFloat(v, 'g', -1, 32) + "F", Value: v}
}

// StringLit returns a Java string literal. Characters outside printable
// ASCII are written as \uXXXX escapes.
func StringLit(s string) Literal {
	return Literal{Text: JavaQuote(s), Value: s}
}

// JavaQuote quotes s as a Java string literal.
func JavaQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				b.WriteRune(r)
			case r > 0xffff:
				// Supplementary characters are written as a surrogate pair.
				r1, r2 := surrogates(r)
				fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
			default:
				fmt.Fprintf(&b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func surrogates(r rune) (rune, rune) {
	r -= 0x10000
	return 0xd800 + (r>>10)&0x3ff, 0xdc00 + r&0x3ff
}

// exprTypes reports every type mentioned by e to visit.
func exprTypes(e Expr, visit func(*Type)) {
	switch e := e.(type) {
	case FieldRef:
		exprTypes(e.Target, visit)
	case New:
		visit(e.Type)
		for _, a := range e.Args {
			exprTypes(a, visit)
		}
	case Invoke:
		if e.Static != nil {
			visit(e.Static)
		}
		if e.Target != nil {
			exprTypes(e.Target, visit)
		}
		for _, a := range e.Args {
			exprTypes(a, visit)
		}
	}
}
