package malimon

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Calculator evaluates expressions. A Calculator is never modified after New
// returns it, so it is safe to use concurrently.
type Calculator struct {
	// strip reports whether a rune is whitespace to remove before tokenizing.
	strip func(rune) bool
	log   logrus.FieldLogger
}

// New creates a calculator. With no options, all whitespace is removed from
// expressions and debug output goes to the package logger.
func New(opts ...Option) *Calculator {
	c := Calculator{
		strip: isSpace,
		log:   log.WithField("pkg", "malimon"),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case spacesopt:
			c.strip = isBlank
		case logopt:
			c.log = opt.l
			if c.log == nil {
				c.log = log.WithField("pkg", "malimon")
			}
		default:
			panic("malimon: unknown option type")
		}
	}
	return &c
}

// Eval tokenizes, converts, and evaluates an expression. Errors from any
// stage are returned unchanged. If a stage panics, the panic is recovered and
// returned as an *UnexpectedError.
func (c *Calculator) Eval(expr string) (Number, error) {
	l := c.log.WithField("expr", expr)
	r, err := recovered(func() (Number, error) {
		toks, err := tokenize(expr, c.strip)
		if err != nil {
			return Number{}, err
		}
		l.Debugf("tokens: %v", toks)
		p, err := ToPostfix(toks)
		if err != nil {
			return Number{}, err
		}
		l.Debugf("postfix: %v", p)
		return EvalPostfix(p)
	})
	if err != nil {
		if errors.As(err, new(*UnexpectedError)) {
			l.WithError(err).Warn("recovered from panic")
		} else {
			l.WithError(err).Debug("failed")
		}
		return Number{}, err
	}
	l.Debugf("result: %v", r)
	return r, nil
}

// Postfix tokenizes and converts an expression without evaluating it, using
// the calculator's whitespace rule.
func (c *Calculator) Postfix(expr string) (Postfix, error) {
	toks, err := tokenize(expr, c.strip)
	if err != nil {
		return nil, err
	}
	return ToPostfix(toks)
}

// recovered calls f, converting a panic into an *UnexpectedError.
func recovered(f func() (Number, error)) (r Number, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		e, ok := p.(error)
		if !ok {
			e = errors.New(fmt.Sprint(p))
		}
		r, err = Number{}, &UnexpectedError{Err: e}
	}()
	return f()
}

// EvalPostfix reduces a postfix expression to a single number using a value
// stack. Each operator takes the value below the top of the stack as its
// left operand and the top as its right operand.
func EvalPostfix(p Postfix) (Number, error) {
	stack := make([]Number, 0, len(p)/2+1)
	for _, e := range p {
		if e.IsNum() {
			stack = append(stack, e.Num)
			continue
		}
		op := binop(e.Op)
		if op.prec == 0 {
			return Number{}, &OperatorError{Col: e.Pos, Operator: e.Op}
		}
		if len(stack) < 2 {
			return Number{}, &OperandError{Col: e.Pos, Operator: e.Op, Have: len(stack)}
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		if op.div && b.IsZero() {
			return Number{}, &DivisionByZeroError{Col: e.Pos, Operator: e.Op}
		}
		stack = append(stack, op.fn(a, b))
	}
	if len(stack) != 1 {
		return Number{}, &MalformedExpressionError{Values: len(stack)}
	}
	return stack[0], nil
}

var std = New()

// Calculate evaluates an expression with the default calculator.
func Calculate(expr string) (Number, error) {
	return std.Eval(expr)
}

// Calc is an alias for Calculate.
func Calc(expr string) (Number, error) {
	return Calculate(expr)
}

// OperandError is an error indicating an operator with fewer than two values
// available to it, e.g. the leading minus in "-1". It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that lacked operands.
	Operator string
	// Have is the number of values that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" needs 2 operands but has "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Is(target error) bool {
	return target == ErrCalculation
}

// DivisionByZeroError is an error indicating a division with a zero divisor.
// It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// Operator is the division symbol used.
	Operator string
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

func (err *DivisionByZeroError) Is(target error) bool {
	return target == ErrCalculation
}

// MalformedExpressionError is an error indicating that evaluation did not
// reduce an expression to exactly one value, e.g. "()".
type MalformedExpressionError struct {
	// Values is the number of values left after evaluation.
	Values int
}

func (err *MalformedExpressionError) Error() string {
	if err.Values == 0 {
		return "malformed expression: no value"
	}
	return "malformed expression: " + strconv.Itoa(err.Values) + " values left"
}

func (err *MalformedExpressionError) Is(target error) bool {
	return target == ErrCalculation
}

// UnexpectedError wraps a fault that occurred during evaluation and was not
// one of the classified errors. It unwraps to the original error.
type UnexpectedError struct {
	Err error
}

func (err *UnexpectedError) Error() string {
	return "calculation failed: " + err.Err.Error()
}

func (err *UnexpectedError) Unwrap() error {
	return err.Err
}

func (err *UnexpectedError) Is(target error) bool {
	return target == ErrCalculation
}
