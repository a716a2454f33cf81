/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/ast"
)

func TestParse(t *testing.T) {
	testDirectory, err := filepath.Abs("../../../test/parsing/types")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.txt", inputDirectory))
	require.NoError(t, err)
	require.NotEmpty(t, tests)

	for _, test := range tests {
		t.Run(filepath.Base(test), func(t *testing.T) {
			var expected string
			expectation := path.Join(expectationDirectory, filepath.Base(test))
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			file, err := os.Open(test)
			if err != nil {
				t.Fatalf("Error opening test: %s", test)
			}
			defer file.Close()

			lines := bufio.NewScanner(file)

			shouldPass := false
			lines.Scan()
			if strings.ToUpper(lines.Text()) == "PASS" {
				shouldPass = true
			}

			actual := ""
			for lines.Scan() {
				module, _, err := ParseModuleString(lines.Text())
				if shouldPass && err != nil {
					t.Error(err)
					continue
				}
				if !shouldPass && err == nil {
					t.Errorf("Expected input to fail: %s", lines.Text())
					continue
				}

				if shouldPass {
					actual += ast.Dump(module)
				}
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}

type countingObserver map[Outcome]int

func (c countingObserver) Speculation(outcome Outcome) {
	c[outcome]++
}

func parseAlias(t *testing.T, input string) *ast.TypeAliasDecl {
	t.Helper()
	module, diags, err := ParseModuleString(input)
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, module.Body, 1)

	alias, ok := module.Body[0].(*ast.TypeAliasDecl)
	require.True(t, ok, "wanted *ast.TypeAliasDecl, got %T", module.Body[0])
	return alias
}

func TestNegativeLiteralType(t *testing.T) {
	alias := parseAlias(t, "type T = -1;")

	lit, ok := alias.Type.(*ast.LiteralType)
	require.True(t, ok, "wanted *ast.LiteralType, got %T", alias.Type)
	num, ok := lit.Lit.(*ast.NumberLit)
	require.True(t, ok)
	assert.Equal(t, -1.0, num.Val)
	assert.Equal(t, "-1", num.Raw)
}

func TestNegativeNumberExpression(t *testing.T) {
	module, _, err := ParseModuleString("const t = -1;")
	require.NoError(t, err)

	decl := module.Body[0].(*ast.VarDecl)
	unary, ok := decl.Decls[0].Init.(*ast.UnaryExpr)
	require.True(t, ok, "wanted *ast.UnaryExpr, got %T", decl.Decls[0].Init)
	assert.Equal(t, "-", unary.Op)
	assert.Equal(t, 1.0, unary.Arg.(*ast.NumberLit).Val)
}

func TestParenthesizedUnion(t *testing.T) {
	input := "type Test = (\n string | number);"
	p, err := New(input)
	require.NoError(t, err)

	// The buffer ends with TOK_EOF.
	assert.Len(t, p.Tokens(), 10)

	module, err := p.ParseModule()
	require.NoError(t, err)

	alias := module.Body[0].(*ast.TypeAliasDecl)
	paren, ok := alias.Type.(*ast.ParenthesizedType)
	require.True(t, ok, "wanted *ast.ParenthesizedType, got %T", alias.Type)
	union, ok := paren.Type.(*ast.UnionType)
	require.True(t, ok)
	require.Len(t, union.Types, 2)
	assert.Equal(t, ast.KeywordString, union.Types[0].(*ast.KeywordType).Kind)
	assert.Equal(t, ast.KeywordNumber, union.Types[1].(*ast.KeywordType).Kind)
}

func TestTupleRequiredAfterOptional(t *testing.T) {
	inputs := []string{
		"[a: string, b?: number, c: boolean]",
		"[string, number?, boolean]",
	}

	for _, input := range inputs {
		_, _, err := ParseTypeString(input)
		require.Error(t, err, input)
		assert.Contains(t, err.Error(), errRequiredAfterOptional)
	}
}

func TestTupleRestLabel(t *testing.T) {
	typ, diags, err := ParseTypeString("[a: string, ...rest: number[]]")
	require.NoError(t, err)
	assert.Empty(t, diags)

	tuple := typ.(*ast.TupleType)
	require.Len(t, tuple.Elements, 2)
	assert.False(t, tuple.Elements[0].IsRest())
	assert.True(t, tuple.Elements[1].IsRest())

	rest, ok := tuple.Elements[1].Label.(*ast.RestPattern)
	require.True(t, ok, "wanted *ast.RestPattern, got %T", tuple.Elements[1].Label)
	assert.Equal(t, "rest", rest.Arg.(*ast.BindingIdent).ID.Name)
}

func TestTupleRestAfterOptional(t *testing.T) {
	_, _, err := ParseTypeString("[string, number?, ...boolean[]]")
	assert.NoError(t, err)
}

func TestIntersectionBindsTighterThanUnion(t *testing.T) {
	typ, _, err := ParseTypeString("A | B & C")
	require.NoError(t, err)

	union, ok := typ.(*ast.UnionType)
	require.True(t, ok, "wanted *ast.UnionType, got %T", typ)
	require.Len(t, union.Types, 2)
	assert.Equal(t, "A", union.Types[0].Value())

	intersection, ok := union.Types[1].(*ast.IntersectionType)
	require.True(t, ok, "wanted *ast.IntersectionType, got %T", union.Types[1])
	require.Len(t, intersection.Types, 2)
	assert.Equal(t, "B", intersection.Types[0].Value())
	assert.Equal(t, "C", intersection.Types[1].Value())
}

func TestNestedConditional(t *testing.T) {
	typ, _, err := ParseTypeString("A extends B ? C extends D ? E : F : G")
	require.NoError(t, err)

	outer, ok := typ.(*ast.ConditionalType)
	require.True(t, ok)
	assert.Equal(t, "A", outer.Check.Value())
	assert.Equal(t, "B", outer.Extends.Value())
	assert.Equal(t, "G", outer.False.Value())

	inner, ok := outer.True.(*ast.ConditionalType)
	require.True(t, ok, "wanted *ast.ConditionalType, got %T", outer.True)
	assert.Equal(t, "C", inner.Check.Value())
	assert.Equal(t, "D", inner.Extends.Value())
	assert.Equal(t, "E", inner.True.Value())
	assert.Equal(t, "F", inner.False.Value())
}

func TestConditionalInExtendsIsParenthesized(t *testing.T) {
	_, _, err := ParseTypeString("A extends B extends C ? D : E ? F : G")
	assert.Error(t, err)

	_, _, err = ParseTypeString("A extends (B extends C ? D : E) ? F : G")
	assert.NoError(t, err)
}

func TestMappedTypeModifiers(t *testing.T) {
	tests := []struct {
		input    string
		readonly ast.TruePlusMinus
		optional ast.TruePlusMinus
	}{
		{"{ +readonly [K in T]: V }", ast.ModifierPlus, ast.ModifierNone},
		{"{ -readonly [K in T]?: V }", ast.ModifierMinus, ast.ModifierTrue},
		{"{ readonly [K in T]-?: V }", ast.ModifierTrue, ast.ModifierMinus},
		{"{ [K in T]+?: V }", ast.ModifierNone, ast.ModifierPlus},
	}

	for _, test := range tests {
		typ, _, err := ParseTypeString(test.input)
		require.NoError(t, err, test.input)

		mapped, ok := typ.(*ast.MappedType)
		require.True(t, ok, "%s: wanted *ast.MappedType, got %T", test.input, typ)
		assert.Equal(t, test.readonly, mapped.Readonly, test.input)
		assert.Equal(t, test.optional, mapped.Optional, test.input)
		assert.Equal(t, "K", mapped.TypeParam.Name.Name, test.input)
	}
}

func TestDiscardedSpeculationIsSilent(t *testing.T) {
	inputs := []string{
		"[number, string]",
		"(string | number)[]",
		"(a: string, b?: number) => void",
		"{ readonly [K in keyof T]: T[K] }",
		"{ [key: string]: number; get x(): string }",
	}

	for _, input := range inputs {
		observer := countingObserver{}
		_, diags, err := ParseTypeString(input, WithObserver(observer))
		require.NoError(t, err, input)
		assert.Empty(t, diags, input)
		assert.NotZero(t, observer[Discarded]+observer[LookedAhead], input)
	}
}

func TestCommittedDiagnosticsAreKept(t *testing.T) {
	_, diags, err := ParseModuleString("enum E { 1 = 2 }")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, codeNumericEnumMember, diags[0].Code)
}

func TestMaxDepth(t *testing.T) {
	input := strings.Repeat("(", 50) + "string" + strings.Repeat(")", 50)

	_, _, err := ParseTypeString(input, WithMaxDepth(20))
	require.Error(t, err)
	assert.Contains(t, err.Error(), errNestingTooDeep)

	_, _, err = ParseTypeString(input)
	assert.NoError(t, err)
}

func TestGenericCallVersusRelational(t *testing.T) {
	p, err := New("f<T>(x)")
	require.NoError(t, err)
	expr, err := p.ParseExpression()
	require.NoError(t, err)

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok, "wanted *ast.CallExpr, got %T", expr)
	require.NotNil(t, call.TypeArgs)
	assert.Len(t, call.TypeArgs.Params, 1)
	assert.Len(t, call.Args, 1)

	p, err = New("a < b > c")
	require.NoError(t, err)
	expr, err = p.ParseExpression()
	require.NoError(t, err)

	outer, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok, "wanted *ast.BinaryExpr, got %T", expr)
	assert.Equal(t, ">", outer.Op)
	assert.Equal(t, "<", outer.Left.(*ast.BinaryExpr).Op)
}

func TestShiftAfterTypeArguments(t *testing.T) {
	p, err := New("a < b >> c")
	require.NoError(t, err)
	expr, err := p.ParseExpression()
	require.NoError(t, err)

	outer, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok, "wanted *ast.BinaryExpr, got %T", expr)
	assert.Equal(t, "<", outer.Op)
	assert.Equal(t, ">>", outer.Right.(*ast.BinaryExpr).Op)
}

func TestNestedTypeArgumentsSplitShift(t *testing.T) {
	p, err := New("f<Array<T>>(x)")
	require.NoError(t, err)
	expr, err := p.ParseExpression()
	require.NoError(t, err)

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok, "wanted *ast.CallExpr, got %T", expr)
	ref := call.TypeArgs.Params[0].(*ast.TypeReference)
	assert.Equal(t, "Array", ref.Value())
	require.NotNil(t, ref.TypeArgs)
	assert.Equal(t, "T", ref.TypeArgs.Params[0].Value())
}

func TestDeclareConstEnum(t *testing.T) {
	module, diags, err := ParseModuleString("declare const enum E { A = 1, B }")
	require.NoError(t, err)
	assert.Empty(t, diags)

	enum, ok := module.Body[0].(*ast.EnumDecl)
	require.True(t, ok, "wanted *ast.EnumDecl, got %T", module.Body[0])
	assert.True(t, enum.Declare)
	assert.True(t, enum.Const)
	assert.Equal(t, "E", enum.ID.Name)
	require.Len(t, enum.Members, 2)
	assert.NotNil(t, enum.Members[0].Init)
	assert.Nil(t, enum.Members[1].Init)
	assert.Equal(t, 0, enum.Loc.Start)
}

func TestNestedNamespaces(t *testing.T) {
	module, _, err := ParseModuleString("namespace A.B.C { export type T = string; }")
	require.NoError(t, err)

	decl := module.Body[0].(*ast.ModuleDecl)
	assert.Equal(t, "A", decl.ID.Value())

	b, ok := decl.Body.(*ast.NamespaceDecl)
	require.True(t, ok, "wanted *ast.NamespaceDecl, got %T", decl.Body)
	assert.Equal(t, "B", b.ID.Name)

	c, ok := b.Body.(*ast.NamespaceDecl)
	require.True(t, ok)
	assert.Equal(t, "C", c.ID.Name)

	block, ok := c.Body.(*ast.ModuleBlock)
	require.True(t, ok)
	require.Len(t, block.Body, 1)
	assert.IsType(t, &ast.ExportDecl{}, block.Body[0])
}

func TestImportOutsideTopLevel(t *testing.T) {
	_, _, err := ParseModuleString("function f() { import x from 'y'; }")
	assert.Error(t, err)

	_, _, err = ParseModuleString("declare module 'm' { import x from 'y'; }")
	assert.NoError(t, err)
}

func TestInterfaceDiagnostics(t *testing.T) {
	_, diags, err := ParseModuleString("interface string { }")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, codeReservedInterfaceName, diags[0].Code)

	_, diags, err = ParseModuleString("interface I extends A extends B { }")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, codeInterfaceExtendsTwice, diags[0].Code)
}

func TestKeywordQualifier(t *testing.T) {
	typ, _, err := ParseTypeString("string.Foo")
	require.NoError(t, err)

	ref, ok := typ.(*ast.TypeReference)
	require.True(t, ok, "wanted *ast.TypeReference, got %T", typ)
	assert.Equal(t, "string.Foo", ref.Value())
}

func TestInstantiationExpression(t *testing.T) {
	module, _, err := ParseModuleString("f<T>;")
	require.NoError(t, err)
	require.Len(t, module.Body, 1)

	stmt, ok := module.Body[0].(*ast.ExprStmt)
	require.True(t, ok, "wanted *ast.ExprStmt, got %T", module.Body[0])
	inst, ok := stmt.Expr.(*ast.InstantiationExpr)
	require.True(t, ok, "wanted *ast.InstantiationExpr, got %T", stmt.Expr)
	assert.Len(t, inst.TypeArgs.Params, 1)
}

func TestTypeArgumentsBeforeAssign(t *testing.T) {
	module, diags, err := ParseModuleString("let x: Array<number>= y;")
	require.NoError(t, err)
	assert.Empty(t, diags)

	decl, ok := module.Body[0].(*ast.VarDecl)
	require.True(t, ok, "wanted *ast.VarDecl, got %T", module.Body[0])
	declarator := decl.Decls[0]
	require.NotNil(t, declarator.Init)
	assert.Equal(t, "y", declarator.Init.(*ast.Ident).Name)

	binding := declarator.Name.(*ast.BindingIdent)
	require.NotNil(t, binding.TypeAnn)
	ref := binding.TypeAnn.Type.(*ast.TypeReference)
	assert.Equal(t, "Array", ref.Value())
	assert.Len(t, ref.TypeArgs.Params, 1)
}

func TestAccessorNamedProperty(t *testing.T) {
	observer := countingObserver{}
	typ, diags, err := ParseTypeString("{ get: string }", WithObserver(observer))
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.NotZero(t, observer[Discarded])

	lit, ok := typ.(*ast.TypeLiteral)
	require.True(t, ok, "wanted *ast.TypeLiteral, got %T", typ)
	require.Len(t, lit.Members, 1)
	prop, ok := lit.Members[0].(*ast.PropertySignature)
	require.True(t, ok, "wanted *ast.PropertySignature, got %T", lit.Members[0])
	assert.Equal(t, "get", prop.Key.(*ast.Ident).Name)
}

func TestRecoverableDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		code  string
	}{
		{"type T = { [key, string]: number };", codeIndexSignatureComma},
		{"interface I { #x: string }", codePrivateNameInInterface},
		{"enum E { A B }", codeExpected},
		{`enum E { ["a"] = 1 }`, codeComputedEnumMember},
		{"enum E { 1 = 2 }", codeNumericEnumMember},
		{"type T = import(x);", codeStringLiteralExpected},
		{"declare namespace N { declare const x: number; }", codeDeclareInAmbient},
	}

	for _, test := range tests {
		_, diags, err := ParseModuleString(test.input)
		require.NoError(t, err, test.input)
		require.Len(t, diags, 1, test.input)
		assert.Equal(t, test.code, diags[0].Code, test.input)
	}
}

func TestReadonlyMethodSignature(t *testing.T) {
	_, _, err := ParseModuleString("interface I { readonly m(): void }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), errReadonlyMethod)
}

func TestImportTypePlaceholder(t *testing.T) {
	typ, diags, err := ParseTypeString("import(x)")
	require.NoError(t, err)
	require.Len(t, diags, 1)

	imp, ok := typ.(*ast.ImportType)
	require.True(t, ok, "wanted *ast.ImportType, got %T", typ)
	assert.Equal(t, `""`, imp.Arg.Raw)
}

func TestInferConstraint(t *testing.T) {
	typ, _, err := ParseTypeString("T extends infer U extends string ? U : never")
	require.NoError(t, err)

	cond := typ.(*ast.ConditionalType)
	infer, ok := cond.Extends.(*ast.InferType)
	require.True(t, ok, "wanted *ast.InferType, got %T", cond.Extends)
	require.NotNil(t, infer.TypeParam.Constraint)
	assert.Equal(t, "string", infer.TypeParam.Constraint.Value())
}

func TestInferConstraintAbandonedBeforeConditional(t *testing.T) {
	typ, _, err := ParseTypeString("T extends [infer U extends string ? 1 : 2] ? U : never")
	require.NoError(t, err)

	tuple := typ.(*ast.ConditionalType).Extends.(*ast.TupleType)
	require.Len(t, tuple.Elements, 1)

	inner, ok := tuple.Elements[0].Type.(*ast.ConditionalType)
	require.True(t, ok, "wanted *ast.ConditionalType, got %T", tuple.Elements[0].Type)
	infer := inner.Check.(*ast.InferType)
	assert.Nil(t, infer.TypeParam.Constraint)
	assert.Equal(t, "string", inner.Extends.Value())
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		input   string
		asserts bool
		param   string
		hasType bool
	}{
		{"declare function f(x: unknown): asserts x;", true, "x", false},
		{"declare function f(x: unknown): asserts x is string;", true, "x", true},
		{"declare function f(x: unknown): x is string;", false, "x", true},
		{"declare function f(this: A): this is B;", false, "this", true},
		{"declare function f(this: A): asserts this;", true, "this", false},
	}

	for _, test := range tests {
		module, _, err := ParseModuleString(test.input)
		require.NoError(t, err, test.input)

		fn := module.Body[0].(*ast.FnDecl)
		require.NotNil(t, fn.Function.ReturnType, test.input)
		predicate, ok := fn.Function.ReturnType.Type.(*ast.TypePredicate)
		require.True(t, ok, "%s: wanted *ast.TypePredicate, got %T", test.input, fn.Function.ReturnType.Type)
		assert.Equal(t, test.asserts, predicate.Asserts, test.input)
		assert.Equal(t, test.param, predicate.ParamName.Value(), test.input)
		assert.Equal(t, test.hasType, predicate.TypeAnn != nil, test.input)
	}
}

func TestImportEqualsRequire(t *testing.T) {
	module, _, err := ParseModuleString(`import fs = require("fs");`)
	require.NoError(t, err)

	decl, ok := module.Body[0].(*ast.ImportEqualsDecl)
	require.True(t, ok, "wanted *ast.ImportEqualsDecl, got %T", module.Body[0])
	ref, ok := decl.ModuleRef.(*ast.ExternalModuleRef)
	require.True(t, ok, "wanted *ast.ExternalModuleRef, got %T", decl.ModuleRef)
	assert.Equal(t, "fs", ref.Expr.Val)
}

func TestNamespaceSpanCoversBody(t *testing.T) {
	input := "namespace A { type T = string; }"
	module, _, err := ParseModuleString(input)
	require.NoError(t, err)

	decl := module.Body[0].(*ast.ModuleDecl)
	assert.Equal(t, parse.Location{Start: 0, End: len(input)}, decl.Span())
}

func TestDeclareMarksOuterNamespace(t *testing.T) {
	module, _, err := ParseModuleString("declare namespace A.B { }")
	require.NoError(t, err)

	decl := module.Body[0].(*ast.ModuleDecl)
	assert.True(t, decl.Declare)
	inner := decl.Body.(*ast.NamespaceDecl)
	assert.False(t, inner.Declare)
}

func TestNumericEnumMemberName(t *testing.T) {
	module, _, err := ParseModuleString("enum E { 1e21 = 1 }")
	require.NoError(t, err)

	member := module.Body[0].(*ast.EnumDecl).Members[0]
	id, ok := member.ID.(*ast.StringLit)
	require.True(t, ok, "wanted *ast.StringLit, got %T", member.ID)
	assert.Equal(t, "1000000000000000000000", id.Val)
}

func TestMaxDepthNestedPatterns(t *testing.T) {
	nested := strings.Repeat("[", 200) + "a" + strings.Repeat("]", 200)
	inputs := []string{
		"type F = (" + nested + ") => void;",
		"let " + nested + " = x;",
	}

	for _, input := range inputs {
		_, _, err := ParseModuleString(input, WithMaxDepth(50))
		require.Error(t, err)
		assert.Contains(t, err.Error(), errNestingTooDeep)
	}
}

// assertSpansNest checks that every child lies within its parent.
func assertSpansNest(t *testing.T, input string, node ast.Node) {
	for _, child := range ast.Children(node) {
		assert.True(t, node.Span().Contains(child.Span()),
			"%s: %T %v does not contain %T %v", input, node, node.Span(), child, child.Span())
		assertSpansNest(t, input, child)
	}
}

func TestSpansNest(t *testing.T) {
	inputs, err := filepath.Glob("../../../test/parsing/types/input/*.txt")
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	for _, name := range inputs {
		contents, err := os.ReadFile(name)
		require.NoError(t, err)

		for _, line := range strings.Split(string(contents), "\n")[1:] {
			module, _, err := ParseModuleString(line)
			if err != nil {
				continue
			}
			assertSpansNest(t, line, module)
		}
	}
}
