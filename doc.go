// Package malimon implements a calculator for arithmetic expressions.
//
// Expressions contain integer and decimal literals, the operators + - * / and
// :, and parentheses. Both / and : are division. Multiplication and division
// bind tighter than addition and subtraction, and operators of the same
// precedence group left to right, so "6+6-6*6:6-(6.6-6)" is 5.4.
//
// Whitespace is removed before anything else, so "1 2" is 12. There is no
// unary minus; "-1" is an error because the minus has only one operand.
//
// Results keep track of whether they are integers. "2+3*4" is the integer 14,
// while "10/2:5" is the float 1.0, because division always produces a float.
//
// Calculation runs in three stages which are also available separately:
// Tokenize, ToPostfix, and EvalPostfix. Errors from malformed input match
// ErrParse under errors.Is, and errors from input that parses but cannot be
// computed, such as division by zero, match ErrCalculation.
//
package malimon
