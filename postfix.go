package malimon

import "strings"

// Elem is one element of a postfix expression: a number, or an operator
// applying to the two values before it.
type Elem struct {
	// Num is the value of a number element.
	Num Number
	// Op is the operator symbol. It is empty for numbers.
	Op string
	// Pos is the column of the token the element came from.
	Pos int
}

// IsNum reports whether e is a number.
func (e Elem) IsNum() bool {
	return e.Op == ""
}

func (e Elem) String() string {
	if e.IsNum() {
		return e.Num.String()
	}
	return e.Op
}

// Postfix is an expression in postfix (reverse Polish) order.
type Postfix []Elem

// String renders the expression with elements separated by spaces, e.g.
// "2 3 4 * +".
func (p Postfix) String() string {
	var b strings.Builder
	for i, e := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	return b.String()
}
