package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for i, decl := range p.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(decl.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (v *VarDecl) String() string {
	var b strings.Builder
	b.WriteString("let ")
	b.WriteString(v.Name.Value)
	if v.DeclaredType != nil {
		b.WriteString(": ")
		b.WriteString(v.DeclaredType.String())
	}
	b.WriteString(" = ")
	b.WriteString(exprString(v.Value))
	b.WriteString(";")
	return b.String()
}

func (l *IntegerLiteral) String() string {
	return strconv.FormatUint(l.Value, 10)
}

// Floats always print with a decimal point so the text scans back as a float.
func (l *FloatLiteral) String() string {
	s := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (l *BoolLiteral) String() string {
	return strconv.FormatBool(l.Value)
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", exprString(b.Left), b.Op, exprString(b.Right))
}

func (p *PrefixExpr) String() string {
	return fmt.Sprintf("(%s%s)", p.Op, exprString(p.Value))
}

func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

// Typed renders a declaration followed by the types analysis attached to it,
// e.g. "let x = (1 + 2); // x: u64".
func Typed(d Decl) string {
	v, ok := d.(*VarDecl)
	if !ok || v.Type == nil {
		return d.String()
	}
	return fmt.Sprintf("%s // %s: %s", v.String(), v.Name.Value, v.Type)
}
