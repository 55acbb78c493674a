package malimon

import (
	"errors"
	"strconv"
)

var (
	// ErrParse matches every error caused by malformed input: empty
	// expressions, mismatched parentheses, and unknown tokens or operators.
	ErrParse = errors.New("parse error")

	// ErrCalculation matches every error from input that parses but cannot
	// be computed.
	ErrCalculation = errors.New("calculation error")
)

// EmptyExpressionError is an error indicating an expression with no tokens.
// It implements InputError.
type EmptyExpressionError struct {
	// Col is the position just past the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrParse
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the unmatched open parenthesis, or empty if the close
	// parenthesis is the unmatched one.
	Left string
	// Right is the unmatched close parenthesis, or empty if the open
	// parenthesis is the unmatched one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == ErrParse
}

// TokenError is an error indicating a rune that is not part of any number,
// operator, or parenthesis. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the unrecognized text.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Is(target error) bool {
	return target == ErrParse
}

// OperatorError is an error indicating an operator that is not understood. It
// can only come from a hand-built token list or postfix expression, since the
// tokenizer emits operator tokens for known operators only. It implements
// InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Is(target error) bool {
	return target == ErrParse
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
