package exprfn

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/katalvlaran/rootfind/core"
)

// Sentinel errors of expression compilation.
var (
	// ErrEmptyExpression is returned when the source is empty or blank.
	ErrEmptyExpression = errors.New("exprfn: expression is empty")

	// ErrUnknownVariable is returned when the expression references any
	// variable other than x. Caught at compile time so the returned Func
	// can never fail on a missing parameter.
	ErrUnknownVariable = errors.New("exprfn: expression may reference only x")
)

// builtins are the math functions available inside expressions, each a thin
// shim from govaluate's interface{} calling convention onto package math.
func builtins() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"sin":  func(args ...interface{}) (interface{}, error) { return math.Sin(toFloat(args[0])), nil },
		"cos":  func(args ...interface{}) (interface{}, error) { return math.Cos(toFloat(args[0])), nil },
		"tan":  func(args ...interface{}) (interface{}, error) { return math.Tan(toFloat(args[0])), nil },
		"exp":  func(args ...interface{}) (interface{}, error) { return math.Exp(toFloat(args[0])), nil },
		"log":  func(args ...interface{}) (interface{}, error) { return math.Log(toFloat(args[0])), nil },
		"sqrt": func(args ...interface{}) (interface{}, error) { return math.Sqrt(toFloat(args[0])), nil },
		"abs":  func(args ...interface{}) (interface{}, error) { return math.Abs(toFloat(args[0])), nil },
		"pow": func(args ...interface{}) (interface{}, error) {
			return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
		},
	}
}

// Compile parses a one-variable expression such as "x*x*x - x - 1" or
// "cos(x) - x" into a core.Func.
//
// The grammar is govaluate's: the usual arithmetic operators plus the
// functions sin, cos, tan, exp, log, sqrt, abs and pow(x, y), with x as
// the sole variable. Parse failures and foreign variables are reported at
// compile time; after that the returned Func cannot fail, it yields NaN
// for any evaluation that leaves the reals (log of a negative, a
// boolean-valued expression, and so on), which every method in this
// module treats as just another function value.
//
// The returned Func binds its parameter afresh on every call and is safe
// for concurrent use.
func Compile(expr string) (core.Func, error) {
	// 1) Reject blank input before handing it to the parser.
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyExpression
	}

	// 2) Parse with the math builtins in scope.
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expr, builtins())
	if err != nil {
		return nil, fmt.Errorf("exprfn: compile %q: %w", expr, err)
	}

	// 3) The only legal free variable is x.
	for _, v := range parsed.Vars() {
		if v != "x" {
			return nil, fmt.Errorf("%w, got %q", ErrUnknownVariable, v)
		}
	}

	// 4) Bind x per call; a shared map would race under concurrent use.
	return func(x float64) float64 {
		out, evalErr := parsed.Evaluate(map[string]interface{}{"x": x})
		if evalErr != nil {
			return math.NaN()
		}
		return toFloat(out)
	}, nil
}

// toFloat coerces govaluate's dynamically typed results to float64, NaN
// for anything non-numeric.
func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return math.NaN()
	}
}
