package malimon

import "github.com/sirupsen/logrus"

// Option is an option used when creating a Calculator.
type Option interface {
	calcOption()
}

type (
	spacesopt struct{}
	logopt    struct {
		l logrus.FieldLogger
	}
)

func (spacesopt) calcOption() {}
func (logopt) calcOption()    {}

// SpacesOnly makes the calculator remove only U+0020 spaces before matching
// tokens. Other whitespace, such as tabs and newlines, is skipped but still
// ends the token before it, so "1\t2" is two numbers while "1 2" is 12. By
// default all Unicode whitespace is removed.
func SpacesOnly() Option {
	return spacesopt{}
}

// Logger sets the logger which receives the calculator's debug trace of
// tokens, postfix form, and result. A nil logger restores the package logger.
func Logger(l logrus.FieldLogger) Option {
	return logopt{l}
}
