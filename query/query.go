/*
Package query parses textual match expressions into predicates on records.

Expressions

   field=value     field is set and its text equals value
   field!=value    field is not set or its text differs from value
   field~text      field is set and its text contains text
   field           field is set to a non-nil value
   !field          field is not set

The text of a field is its value in default string format, so id=7 matches
the number 7 as well as the string "7". Several expressions combine with AND.
*/
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/treetools"
	"github.com/npillmayer/treetools/tree"
)

// tracer traces with key 'treetools.query'.
func tracer() tracing.Trace {
	return tracing.Select("treetools.query")
}

// ErrSyntax is returned for malformed expressions.
var ErrSyntax = errors.New("syntax error in match expression")

// Op is the comparison operator of an expression.
type Op int8

// Operators of match expressions.
const (
	Present Op = iota
	Absent
	Equal
	NotEqual
	Contains
)

var opNames = [...]string{"present", "absent", "=", "!=", "~"}

func (op Op) String() string {
	return opNames[op]
}

// Expr is a parsed match expression.
type Expr struct {
	Field string
	Op    Op
	Value string
}

func (e Expr) String() string {
	switch e.Op {
	case Present:
		return e.Field
	case Absent:
		return "!" + e.Field
	}
	return e.Field + e.Op.String() + e.Value
}

// Parse parses a single match expression.
func Parse(s string) (Expr, error) {
	src := strings.TrimSpace(s)
	if src == "" {
		return Expr{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	var e Expr
	if i := strings.Index(src, "!="); i >= 0 {
		e = Expr{Field: src[:i], Op: NotEqual, Value: src[i+2:]}
	} else if i := strings.IndexAny(src, "=~"); i >= 0 {
		e = Expr{Field: src[:i], Op: Equal, Value: src[i+1:]}
		if src[i] == '~' {
			e.Op = Contains
		}
	} else if strings.HasPrefix(src, "!") {
		e = Expr{Field: src[1:], Op: Absent}
	} else {
		e = Expr{Field: src, Op: Present}
	}
	e.Field = strings.TrimSpace(e.Field)
	if e.Field == "" || strings.ContainsAny(e.Field, "!=~") {
		return Expr{}, fmt.Errorf("%w: invalid field name in %q", ErrSyntax, s)
	}
	tracer().Debugf("parsed match expression %q as %s", s, e)
	return e, nil
}

// ParseAll parses a list of expressions. It reports the errors of all
// malformed expressions, not just the first one.
func ParseAll(sources []string) ([]Expr, error) {
	var result *multierror.Error
	exprs := make([]Expr, 0, len(sources))
	for _, s := range sources {
		e, err := Parse(s)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		exprs = append(exprs, e)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return exprs, nil
}

// Predicate returns a predicate on records for e.
func (e Expr) Predicate() treetools.Predicate[tree.Record] {
	return func(node tree.Record) bool {
		_, set := node.Get(e.Field)
		switch e.Op {
		case Present:
			return set
		case Absent:
			return !set
		case Equal:
			return set && node.Text(e.Field) == e.Value
		case NotEqual:
			return !set || node.Text(e.Field) != e.Value
		case Contains:
			return set && strings.Contains(node.Text(e.Field), e.Value)
		}
		return false
	}
}

// Compile parses expressions and combines them into one predicate, matching
// if all of them match. No expressions match every record.
func Compile(sources ...string) (treetools.Predicate[tree.Record], error) {
	exprs, err := ParseAll(sources)
	if err != nil {
		return nil, err
	}
	ps := make([]func(tree.Record) bool, len(exprs))
	for i, e := range exprs {
		ps[i] = e.Predicate()
	}
	return treetools.And(ps...), nil
}
