package malimon_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/malimon"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		r     float64
		isInt bool
	}{
		{"num", "1", 1, true},
		{"decimal", "2.5", 2.5, false},
		{"add", "4+5+6", 4 + 5 + 6, true},
		{"sub", "4-5-6", 4 - 5 - 6, true},
		{"mul", "4*5*6", 4 * 5 * 6, true},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0, false},
		{"colon", "4:5:6", 4.0 / 5.0 / 6.0, false},
		{"div-exact", "10/2", 5, false},
		{"div-chain", "10/2:5", 1, false},
		{"prec", "2+3*4", 14, true},
		{"prec-div", "18/3+2", 8, false},
		{"parens", "(2+3)*4", 20, true},
		{"parens-both", "(8-2)*(5-3)", 12, true},
		{"parens-div", "(10+5)/(3+2)", 3, false},
		{"nested", "((((7))))", 7, true},
		{"float-mul", "1.5*2", 3, false},
		{"float-sub", "6.5-6.5", 0, false},
		{"negative", "2-5", -3, true},
		{"spaces", " 10 + 5 * 2 ", 20, true},
		{"tabs", "8\t-\t2 *\n3", 2, true},
		{"joined", "1 2+3", 15, true},
		{"big", "9223372036854775807+1", 9223372036854775808, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := malimon.Calculate(c.src)
			require.NoError(t, err, "evaluating %q", c.src)
			assert.InDelta(t, c.r, r.Float64(), 1e-12, "evaluating %q", c.src)
			assert.Equal(t, c.isInt, r.IsInt(), "evaluating %q gave %v", c.src, r)
		})
	}
}

func TestCalculateExample(t *testing.T) {
	r, err := malimon.Calculate("6+6-6*6:6-(6.6-6)")
	require.NoError(t, err)
	assert.False(t, r.IsInt())
	assert.InDelta(t, 5.4, r.Float64(), 1e-12)
	assert.Equal(t, "5.4", fmt.Sprintf("%.1f", r))
}

func TestCalculateTypes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2+3*4", "14"},
		{"7-7", "0"},
		{"10/2:5", "1.0"},
		{"6/3", "2.0"},
		{"1.0+1", "2.0"},
		{"2*0.5", "1.0"},
		{"3:4", "0.75"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			r, err := malimon.Calculate(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, r.String())
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind error
		as   interface{}
		pos  int
	}{
		{"empty", "", malimon.ErrParse, new(*malimon.EmptyExpressionError), 1},
		{"blank", "   ", malimon.ErrParse, new(*malimon.EmptyExpressionError), 4},
		{"open", "(1+2", malimon.ErrParse, new(*malimon.BracketError), 1},
		{"close", "1+2)", malimon.ErrParse, new(*malimon.BracketError), 4},
		{"token", "1+a", malimon.ErrParse, new(*malimon.TokenError), 3},
		{"leading-dot", ".5+1", malimon.ErrParse, new(*malimon.TokenError), 1},
		{"div-zero", "5/0", malimon.ErrCalculation, new(*malimon.DivisionByZeroError), 2},
		{"colon-zero", "5:(1-1)", malimon.ErrCalculation, new(*malimon.DivisionByZeroError), 2},
		{"float-zero", "0/0.0", malimon.ErrCalculation, new(*malimon.DivisionByZeroError), 2},
		{"unary", "-1", malimon.ErrCalculation, new(*malimon.OperandError), 1},
		{"neg-factor", "2*-3", malimon.ErrCalculation, new(*malimon.OperandError), 2},
		{"dangling", "1+", malimon.ErrCalculation, new(*malimon.OperandError), 2},
		{"only-op", "*", malimon.ErrCalculation, new(*malimon.OperandError), 1},
		{"empty-parens", "()", malimon.ErrCalculation, new(*malimon.MalformedExpressionError), 0},
		{"adjacent", "(1)(2)", malimon.ErrCalculation, new(*malimon.MalformedExpressionError), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := malimon.Calculate(c.src)
			require.Error(t, err, "evaluating %q gave %v", c.src, r)
			assert.True(t, r.IsZero() && r.IsInt(), "result on error should be zero")
			assert.ErrorIs(t, err, c.kind)
			other := malimon.ErrCalculation
			if c.kind == malimon.ErrCalculation {
				other = malimon.ErrParse
			}
			assert.False(t, errors.Is(err, other), "%v matches both kinds", err)
			require.ErrorAs(t, err, c.as)
			if c.pos > 0 {
				var ie malimon.InputError
				require.ErrorAs(t, err, &ie)
				assert.Equal(t, c.pos, ie.Pos(), "position of %v", err)
			}
		})
	}
}

func TestCalculateErrorMessages(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"", "1: no expression"},
		{"(1+2", "1: open bracket ( with no close bracket"},
		{"1+2)", "4: close bracket ) with no open bracket"},
		{"1+a", `3: invalid token "a"`},
		{"5/0", "2: division by zero"},
		{"-1", `1: operator "-" needs 2 operands but has 1`},
		{"()", "malformed expression: no value"},
		{"(1)(2)", "malformed expression: 2 values left"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := malimon.Calculate(c.src)
			assert.EqualError(t, err, c.msg)
		})
	}
}

func TestCalc(t *testing.T) {
	for _, src := range []string{"2+3*4", "10/2:5", "5/0", "(1+2", ""} {
		r1, err1 := malimon.Calculate(src)
		r2, err2 := malimon.Calc(src)
		assert.True(t, r1.Equal(r2), "%q: %v != %v", src, r1, r2)
		assert.Equal(t, err1, err2, "%q", src)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	const src = "6+6-6*6:6-(6.6-6)"
	first, err := malimon.Calculate(src)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		r, err := malimon.Calculate(src)
		require.NoError(t, err)
		assert.True(t, first.Equal(r))
	}
}

func TestCalculatorConcurrent(t *testing.T) {
	calc := malimon.New()
	srcs := []string{"2+3*4", "(2+3)*4", "10/2:5", "1-2-3", "5/0", "(1"}
	want := make([]malimon.Number, len(srcs))
	wantErr := make([]error, len(srcs))
	for i, src := range srcs {
		want[i], wantErr[i] = calc.Eval(src)
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				for i, src := range srcs {
					r, err := calc.Eval(src)
					assert.True(t, want[i].Equal(r))
					assert.Equal(t, wantErr[i], err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestSpacesOnly(t *testing.T) {
	calc := malimon.New(malimon.SpacesOnly())
	r, err := calc.Eval(" 1 + 2 ")
	require.NoError(t, err)
	assert.True(t, malimon.Int(3).Equal(r))

	r, err = calc.Eval("1\t+2")
	require.NoError(t, err)
	assert.True(t, malimon.Int(3).Equal(r))

	_, err = calc.Eval("  ")
	assert.ErrorAs(t, err, new(*malimon.EmptyExpressionError))
	_, err = calc.Eval("\n")
	assert.ErrorAs(t, err, new(*malimon.EmptyExpressionError))

	// A tab splits what a space would join.
	r, err = calc.Eval("1 2")
	require.NoError(t, err)
	assert.True(t, malimon.Int(12).Equal(r))
	_, err = calc.Eval("1\t2")
	var me *malimon.MalformedExpressionError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 2, me.Values)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	calc := malimon.New(malimon.Logger(l))
	_, err := calc.Eval("2+3*4")
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "tokens: [Num:2@1 Op:+@2 Num:3@3 Op:*@4 Num:4@5]")
	assert.Contains(t, out, "postfix: 2 3 4 * +")
	assert.Contains(t, out, "result: 14")

	buf.Reset()
	_, err = calc.Eval("5/0")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "division by zero")
	assert.Equal(t, 1, strings.Count(buf.String(), "failed"))
}

func TestSetLogLevel(t *testing.T) {
	old := malimon.GetLogLevel()
	defer malimon.SetLogLevel(old.String())

	require.NoError(t, malimon.SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, malimon.GetLogLevel())
	assert.Error(t, malimon.SetLogLevel("bug"))
	assert.Equal(t, logrus.DebugLevel, malimon.GetLogLevel())
}

func TestEvalPostfix(t *testing.T) {
	cases := []struct {
		name string
		p    malimon.Postfix
		want malimon.Number
	}{
		{"num", malimon.Postfix{{Num: malimon.Int(3)}}, malimon.Int(3)},
		{"sub-order", malimon.Postfix{{Num: malimon.Int(1)}, {Num: malimon.Int(3)}, {Op: "-"}}, malimon.Int(-2)},
		{"div-order", malimon.Postfix{{Num: malimon.Int(1)}, {Num: malimon.Int(4)}, {Op: ":"}}, malimon.Float(0.25)},
		{"mixed", malimon.Postfix{{Num: malimon.Float(0.5)}, {Num: malimon.Int(4)}, {Op: "*"}}, malimon.Float(2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := malimon.EvalPostfix(c.p)
			require.NoError(t, err)
			assert.True(t, c.want.Equal(r), "want %v, got %v", c.want, r)
		})
	}
}

func TestEvalPostfixErrors(t *testing.T) {
	_, err := malimon.EvalPostfix(malimon.Postfix{{Num: malimon.Int(1)}, {Num: malimon.Int(2)}, {Op: "%", Pos: 7}})
	var oe *malimon.OperatorError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "%", oe.Operator)
	assert.Equal(t, 7, oe.Pos())
	assert.ErrorIs(t, err, malimon.ErrParse)

	_, err = malimon.EvalPostfix(nil)
	var me *malimon.MalformedExpressionError
	require.ErrorAs(t, err, &me)
	assert.Zero(t, me.Values)

	_, err = malimon.EvalPostfix(malimon.Postfix{{Op: "+"}})
	var ope *malimon.OperandError
	require.ErrorAs(t, err, &ope)
	assert.Zero(t, ope.Have)
}

func TestUnexpectedError(t *testing.T) {
	inner := errors.New("boom")
	err := error(&malimon.UnexpectedError{Err: inner})
	assert.ErrorIs(t, err, malimon.ErrCalculation)
	assert.ErrorIs(t, err, inner)
	assert.False(t, errors.Is(err, malimon.ErrParse))
	assert.EqualError(t, err, "calculation failed: boom")
}

func BenchmarkCalculate(b *testing.B) {
	b.Run("short", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			malimon.Calculate("2+3*4")
		}
	})
	b.Run("long", func(b *testing.B) {
		src := strings.Repeat("(6+6-6*6:6-(6.6-6))*", 50) + "1"
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			malimon.Calculate(src)
		}
	})
}

func Example() {
	for _, src := range []string{"6+6-6*6:6-(6.6-6)", "2+3*4", "(2+3)*4", "10/2:5", "5/0", "(1+2"} {
		r, err := malimon.Calculate(src)
		if err != nil {
			fmt.Printf("%-18s error: %v\n", src, err)
			continue
		}
		fmt.Printf("%-18s = %.4g\n", src, r)
	}

	// Output:
	// 6+6-6*6:6-(6.6-6)  = 5.4
	// 2+3*4              = 14
	// (2+3)*4            = 20
	// 10/2:5             = 1
	// 5/0                error: 2: division by zero
	// (1+2               error: 1: open bracket ( with no close bracket
}

func ExampleNumber_String() {
	a, _ := malimon.Calculate("10/2:5")
	b, _ := malimon.Calculate("2*3-5")
	fmt.Println(a, a.IsInt())
	fmt.Println(b, b.IsInt())

	// Output:
	// 1.0 false
	// 1 true
}

func ExampleToPostfix() {
	toks, _ := malimon.Tokenize("6+6-6*6:6-(6.6-6)")
	p, _ := malimon.ToPostfix(toks)
	fmt.Println(p)

	// Output:
	// 6 6 + 6 6 * 6 : - 6.6 6 - -
}
