package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/treetools/tree"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.query")
	defer teardown()
	//
	for src, expected := range map[string]Expr{
		"id=1":        {Field: "id", Op: Equal, Value: "1"},
		" name != x ": {Field: "name", Op: NotEqual, Value: " x"},
		"title~node":  {Field: "title", Op: Contains, Value: "node"},
		"children":    {Field: "children", Op: Present},
		"!children":   {Field: "children", Op: Absent},
		"url=a=b":     {Field: "url", Op: Equal, Value: "a=b"},
		"k=":          {Field: "k", Op: Equal, Value: ""},
	} {
		e, err := Parse(src)
		require.NoError(t, err, src)
		assert.Equal(t, expected, e, src)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.query")
	defer teardown()
	//
	for _, src := range []string{"", "  ", "=1", "!", "!=x", "~x", "!a=b"} {
		_, err := Parse(src)
		assert.True(t, errors.Is(err, ErrSyntax), "expected syntax error for %q, have %v", src, err)
	}
}

func TestParseAllCollectsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.query")
	defer teardown()
	//
	exprs, err := ParseAll([]string{"id=1", "=x", "name", "~y"})
	require.Error(t, err)
	assert.Nil(t, exprs)
	assert.Equal(t, 2, strings.Count(err.Error(), ErrSyntax.Error()))
	//
	exprs, err = ParseAll([]string{"id=1", "name"})
	require.NoError(t, err)
	assert.Len(t, exprs, 2)
}

func TestPredicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.query")
	defer teardown()
	//
	rec := tree.Record{"id": 7, "title": "node 1-1", "gone": nil}
	for src, expected := range map[string]bool{
		"id=7":        true,
		"id=8":        false,
		"id!=8":       true,
		"title~1-1":   true,
		"title~2":     false,
		"title":       true,
		"gone":        false,
		"!gone":       true,
		"!title":      false,
		"missing!=x":  true,
		"missing~":    false,
		"title=node ": false,
	} {
		e, err := Parse(src)
		require.NoError(t, err, src)
		assert.Equal(t, expected, e.Predicate()(rec), src)
	}
}

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetools.query")
	defer teardown()
	//
	p, err := Compile("id~1", "!children")
	require.NoError(t, err)
	assert.True(t, p(tree.Record{"id": "1-1"}))
	assert.False(t, p(tree.Record{"id": "1", "children": []tree.Record{}}))
	assert.False(t, p(tree.Record{"id": "2"}))
	//
	all, err := Compile()
	require.NoError(t, err)
	assert.True(t, all(tree.Record{}))
	//
	_, err = Compile("ok", "")
	assert.Error(t, err)
}
