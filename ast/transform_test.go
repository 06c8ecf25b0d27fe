package ast_test

import (
	"testing"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_DeleteDropsTheNode(t *testing.T) {
	doc, perr := parser.Parse(`{ a b c }`)
	require.Nil(t, perr)

	out := ast.Transform(ast.TransformVisitor{
		Enter: func(node ast.Node, _ string, _ int) (ast.Action, ast.Node) {
			if f, ok := node.(*ast.Field); ok && f.Name.Value == "b" {
				return ast.Delete, nil
			}
			return ast.Continue, nil
		},
	}, doc)

	var names []string
	ast.Walk(ast.Visitor{Enter: func(node ast.Node, _ string, _ int) ast.Action {
		if f, ok := node.(*ast.Field); ok {
			names = append(names, f.Name.Value)
		}
		return ast.Continue
	}}, out)
	assert.Equal(t, []string{"a", "c"}, names)

	var origNames []string
	ast.Walk(ast.Visitor{Enter: func(node ast.Node, _ string, _ int) ast.Action {
		if f, ok := node.(*ast.Field); ok {
			origNames = append(origNames, f.Name.Value)
		}
		return ast.Continue
	}}, doc)
	assert.Equal(t, []string{"a", "b", "c"}, origNames, "Transform must not mutate the original tree")
}

func TestTransform_ReplaceSubstitutesTheNode(t *testing.T) {
	doc, perr := parser.Parse(`{ a }`)
	require.Nil(t, perr)

	out := ast.Transform(ast.TransformVisitor{
		Enter: func(node ast.Node, _ string, _ int) (ast.Action, ast.Node) {
			if f, ok := node.(*ast.Field); ok && f.Name.Value == "a" {
				renamed := *f
				renamed.Name = &ast.Name{Value: "z"}
				return ast.Replace, &renamed
			}
			return ast.Continue, nil
		},
	}, doc)

	var names []string
	ast.Walk(ast.Visitor{Enter: func(node ast.Node, _ string, _ int) ast.Action {
		if f, ok := node.(*ast.Field); ok {
			names = append(names, f.Name.Value)
		}
		return ast.Continue
	}}, out)
	assert.Equal(t, []string{"z"}, names)
}

func TestTransform_StopHaltsTheWalk(t *testing.T) {
	doc, perr := parser.Parse(`{ a b c }`)
	require.Nil(t, perr)

	var seen []string
	ast.Transform(ast.TransformVisitor{
		Enter: func(node ast.Node, _ string, _ int) (ast.Action, ast.Node) {
			if f, ok := node.(*ast.Field); ok {
				seen = append(seen, f.Name.Value)
				if f.Name.Value == "b" {
					return ast.Stop, nil
				}
			}
			return ast.Continue, nil
		},
	}, doc)
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestTransform_WholeDocumentCanBeDeleted(t *testing.T) {
	doc, perr := parser.Parse(`{ a }`)
	require.Nil(t, perr)

	out := ast.Transform(ast.TransformVisitor{
		Enter: func(node ast.Node, _ string, _ int) (ast.Action, ast.Node) {
			if _, ok := node.(*ast.Document); ok {
				return ast.Delete, nil
			}
			return ast.Continue, nil
		},
	}, doc)
	assert.Nil(t, out)
}
