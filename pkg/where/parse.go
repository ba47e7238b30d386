/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package where

import (
	"errors"
	"fmt"
	"strings"

	"github.com/antlr4-go/antlr/v4"

	"github.com/unikorn-cloud/content-harness/pkg/where/parser"
)

var (
	// ErrParse is returned for any malformed clause.
	ErrParse = errors.New("where clause parse error")
)

// errorListener collects lexer and parser errors rather than printing
// them to the console.
type errorListener struct {
	*antlr.DefaultErrorListener

	errs []error
}

func (l *errorListener) SyntaxError(_ antlr.Recognizer, _ any, line, column int, msg string, _ antlr.RecognitionException) {
	l.errs = append(l.errs, fmt.Errorf("%w: %d:%d: %s", ErrParse, line, column, msg))
}

// builder reduces the parse tree to an Expr bottom up.  Each exited
// notExpr, primary and comparison leaves exactly one Expr on the stack.
type builder struct {
	parser.BaseWhereListener

	stack []Expr
}

func (b *builder) push(e Expr) {
	b.stack = append(b.stack, e)
}

func (b *builder) pop(n int) []Expr {
	i := len(b.stack) - n

	exprs := make([]Expr, n)
	copy(exprs, b.stack[i:])

	b.stack = b.stack[:i]

	return exprs
}

func (b *builder) ExitOrExpr(ctx *parser.OrExprContext) {
	if n := len(ctx.AllAndExpr()); n > 1 {
		b.push(Or(b.pop(n)...))
	}
}

func (b *builder) ExitAndExpr(ctx *parser.AndExprContext) {
	if n := len(ctx.AllNotExpr()); n > 1 {
		b.push(And(b.pop(n)...))
	}
}

func (b *builder) ExitNotExpr(ctx *parser.NotExprContext) {
	if ctx.NOT() != nil {
		b.push(Not(b.pop(1)[0]))
	}
}

func (b *builder) ExitPrimary(ctx *parser.PrimaryContext) {
	if ctx.EXISTS() != nil {
		b.push(Exists(ctx.IDENTIFIER().GetText()))
	}
}

func (b *builder) ExitComparison(ctx *parser.ComparisonContext) {
	field := ctx.IDENTIFIER().GetText()

	literals := ctx.AllLiteral()

	values := make([]value, len(literals))

	for i, l := range literals {
		values[i] = literalValue(l)
	}

	switch {
	case ctx.EQUALS() != nil:
		b.push(&eq{field: field, value: values[0]})
	case ctx.IN() != nil:
		b.push(&in{field: field, values: values})
	case ctx.MATCHES() != nil:
		b.push(&matches{field: field, pattern: values[0]})
	case ctx.BETWEEN() != nil:
		b.push(&between{field: field, lower: values[0], upper: values[1]})
	}
}

func literalValue(ctx parser.ILiteralContext) value {
	if s := ctx.STRING(); s != nil {
		text := s.GetText()

		return value{
			text:   strings.ReplaceAll(text[1:len(text)-1], "''", "'"),
			quoted: true,
		}
	}

	return value{text: ctx.IDENTIFIER().GetText()}
}

// Parse reads a clause as produced by String.  The outer parentheses the
// server requires are accepted but optional.
func Parse(s string) (Expr, error) {
	errs := &errorListener{
		DefaultErrorListener: antlr.NewDefaultErrorListener(),
	}

	lexer := parser.NewWhereLexer(antlr.NewInputStream(s))
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(errs)

	p := parser.NewWhereParser(antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel))
	p.RemoveErrorListeners()
	p.AddErrorListener(errs)

	tree := p.WhereClause()

	if len(errs.errs) != 0 {
		return nil, errs.errs[0]
	}

	b := &builder{}

	antlr.ParseTreeWalkerDefault.Walk(b, tree)

	if len(b.stack) != 1 {
		return nil, fmt.Errorf("%w: incomplete clause %q", ErrParse, s)
	}

	return b.stack[0], nil
}
