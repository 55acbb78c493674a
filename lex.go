package malimon

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is one lexical unit of an expression.
type Token struct {
	// Text is the source text of the token.
	Text string
	// Kind is the token's class.
	Kind TokenKind
	// Pos is the 1-based rune column of the token's first rune in the
	// original input, counting whitespace.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind classifies tokens.
type TokenKind int

const (
	// TokenNone is the zero kind and is never produced by the tokenizer.
	TokenNone TokenKind = iota
	// TokenNum is an integer or decimal literal.
	TokenNum
	// TokenOp is one of the runes in Operators.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenUnknown is any other single rune. The converter rejects it.
	TokenUnknown
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	case TokenUnknown:
		return "Unknown"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators. Both /
// and : are division.
const Operators = "+-*/:"

// OpenBracket and CloseBracket group expressions.
const (
	OpenBracket  = "("
	CloseBracket = ")"
)

// lexer scans tokens from an expression with stripped runes already removed.
// Any whitespace left in src separates tokens and is otherwise skipped.
type lexer struct {
	src []rune
	// cols holds the original column of each rune in src.
	cols []int
	at   int
	// end is the column just past the last rune of the original input.
	end int
}

// lex prepares an expression for scanning. Runes for which strip returns true
// are dropped before any token is matched, so they can split nothing: with
// the default filter, "1 2" scans as the single literal 12.
func lex(expr string, strip func(rune) bool) *lexer {
	l := lexer{
		src:  make([]rune, 0, len(expr)),
		cols: make([]int, 0, len(expr)),
	}
	col := 0
	for _, r := range expr {
		col++
		if strip(r) {
			continue
		}
		l.src = append(l.src, r)
		l.cols = append(l.cols, col)
	}
	l.end = col + 1
	return &l
}

// next scans the next token. The second result is false once the input is
// exhausted.
func (l *lexer) next() (Token, bool) {
	for l.at < len(l.src) && unicode.IsSpace(l.src[l.at]) {
		l.at++
	}
	if l.at >= len(l.src) {
		return Token{}, false
	}
	tok := Token{Pos: l.cols[l.at]}
	r := l.src[l.at]
	switch {
	case isDigit(r):
		tok.Text = l.scanNum()
		tok.Kind = TokenNum
		return tok, true
	case strings.ContainsRune(Operators, r):
		tok.Kind = TokenOp
	case r == '(':
		tok.Kind = TokenOpen
	case r == ')':
		tok.Kind = TokenClose
	default:
		tok.Kind = TokenUnknown
	}
	tok.Text = string(r)
	l.at++
	return tok, true
}

// scanNum scans an integer or decimal literal. The decimal point is part of
// the literal only when at least one digit follows it, so "1." scans as 1
// followed by an unknown ".".
func (l *lexer) scanNum() string {
	start := l.at
	l.digits()
	if l.at+1 < len(l.src) && l.src[l.at] == '.' && isDigit(l.src[l.at+1]) {
		l.at++
		l.digits()
	}
	return string(l.src[start:l.at])
}

func (l *lexer) digits() {
	for l.at < len(l.src) && isDigit(l.src[l.at]) {
		l.at++
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSpace is the default whitespace filter.
func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// isBlank is the whitespace filter selected by SpacesOnly. Whitespace it keeps
// still ends a token, so "1\t2" scans as two literals.
func isBlank(r rune) bool {
	return r == ' '
}

// Tokenize splits an expression into tokens after removing all whitespace.
// Every rune that is not part of a number, operator, or parenthesis becomes a
// TokenUnknown token of its own. If the expression has no tokens, the error
// is an *EmptyExpressionError.
func Tokenize(expr string) ([]Token, error) {
	return tokenize(expr, isSpace)
}

func tokenize(expr string, strip func(rune) bool) ([]Token, error) {
	scan := lex(expr, strip)
	var toks []Token
	for {
		tok, ok := scan.next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: scan.end}
	}
	return toks, nil
}
