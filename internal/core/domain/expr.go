package domain

import "strings"

// Expr is a value carried into the generated script without being evaluated.
// It is a sequence of literal text and property references; references render as
// "${name}" and are left for the engine that runs the script to resolve.
type Expr struct {
	parts []exprPart
}

type exprPart struct {
	ref  bool
	text string
}

// Lit returns an expression holding literal text.
func Lit(text string) Expr {
	if text == "" {
		return Expr{}
	}
	return Expr{parts: []exprPart{{text: text}}}
}

// Ref returns an expression referencing the named property.
func Ref(name string) Expr {
	return Expr{parts: []exprPart{{ref: true, text: name}}}
}

// Concat joins expressions in order.
func Concat(exprs ...Expr) Expr {
	var out Expr
	for _, e := range exprs {
		for _, p := range e.parts {
			out = out.append(p)
		}
	}
	return out
}

func (e Expr) append(p exprPart) Expr {
	n := len(e.parts)
	if !p.ref && n > 0 && !e.parts[n-1].ref {
		parts := make([]exprPart, n)
		copy(parts, e.parts)
		parts[n-1].text += p.text
		return Expr{parts: parts}
	}
	parts := make([]exprPart, n, n+1)
	copy(parts, e.parts)
	return Expr{parts: append(parts, p)}
}

// Append returns e followed by literal text.
func (e Expr) Append(text string) Expr {
	return Concat(e, Lit(text))
}

// IsZero reports whether the expression renders to nothing.
func (e Expr) IsZero() bool {
	return len(e.parts) == 0
}

// Refs returns the names of the referenced properties in order.
func (e Expr) Refs() []string {
	var refs []string
	for _, p := range e.parts {
		if p.ref {
			refs = append(refs, p.text)
		}
	}
	return refs
}

// String renders the expression in property-reference syntax.
func (e Expr) String() string {
	var b strings.Builder
	for _, p := range e.parts {
		if p.ref {
			b.WriteString("${")
			b.WriteString(p.text)
			b.WriteString("}")
			continue
		}
		b.WriteString(p.text)
	}
	return b.String()
}
