package malimon

// ToPostfix reorders tokens into postfix order with the shunting-yard
// algorithm. Number tokens are converted to Numbers as they are moved to the
// output.
//
// A close parenthesis without an open one, or an open parenthesis left over
// at the end, is a *BracketError. A TokenUnknown token, a number token that
// does not parse, or a token of any kind outside the ones Tokenize produces
// is a *TokenError. The result is not checked for having the right number of
// operands; that is the evaluator's job.
func ToPostfix(tokens []Token) (Postfix, error) {
	out := make(Postfix, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			n, err := parseNumber(tok.Text)
			if err != nil {
				return nil, &TokenError{Col: tok.Pos, Token: tok.Text}
			}
			out = append(out, Elem{Num: n, Pos: tok.Pos})
		case TokenOp:
			cur := binop(tok.Text)
			if cur.prec == 0 {
				return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
			}
			// Popping on equal precedence makes every operator
			// left-associative: a-b-c is (a-b)-c.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TokenOpen || binop(top.Text).prec < cur.prec {
					break
				}
				out = append(out, Elem{Op: top.Text, Pos: top.Pos})
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, Elem{Op: top.Text, Pos: top.Pos})
			}
		case TokenUnknown:
			return nil, &TokenError{Col: tok.Pos, Token: tok.Text}
		default:
			return nil, &TokenError{Col: tok.Pos, Token: tok.Text}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &BracketError{Col: top.Pos, Left: top.Text}
		}
		out = append(out, Elem{Op: top.Text, Pos: top.Pos})
	}
	return out, nil
}

type operator struct {
	// prec is the precedence value. Higher is more binding. Zero means no
	// such operator.
	prec int8
	// div marks division, which checks for a zero divisor.
	div bool
	// fn applies the operator.
	fn func(a, b Number) Number
}

// binop gets a binary operator for a token string. If there is no such
// operator, then the result has a prec of zero.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, add}
	case "-":
		return operator{1, false, sub}
	case "*":
		return operator{2, false, mul}
	case "/", ":":
		return operator{2, true, quo}
	default:
		return operator{}
	}
}
