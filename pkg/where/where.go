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

// Package where builds, parses and evaluates the filter clauses accepted by
// the where query parameter, e.g. (isFolder=true AND nodeType IN ('cm:content')).
package where

import (
	"fmt"
	"path"
	"strconv"
	"strings"
)

// Lookup resolves a field of the thing being filtered.
type Lookup func(field string) (string, bool)

// Expr is a filter expression.
type Expr interface {
	// render returns the unparenthesised clause.
	render() string

	// Eval reports whether the lookup satisfies the expression.
	Eval(lookup Lookup) bool
}

// String renders a complete clause as the server expects it, wrapped in
// parentheses.
func String(e Expr) string {
	return "(" + e.render() + ")"
}

type value struct {
	text   string
	quoted bool
}

func literal(v any) value {
	switch t := v.(type) {
	case string:
		return value{text: t, quoted: true}
	default:
		return value{text: fmt.Sprint(t)}
	}
}

func (v value) render() string {
	if !v.quoted {
		return v.text
	}

	return "'" + strings.ReplaceAll(v.text, "'", "''") + "'"
}

func renderValues(values []value) string {
	out := make([]string, len(values))

	for i := range values {
		out[i] = values[i].render()
	}

	return strings.Join(out, ", ")
}

type eq struct {
	field string
	value value
}

// Eq matches a field exactly.  Strings are quoted, anything else (booleans,
// numbers) is rendered bare.
func Eq(field string, v any) Expr {
	return &eq{field: field, value: literal(v)}
}

func (e *eq) render() string {
	return e.field + "=" + e.value.render()
}

func (e *eq) Eval(lookup Lookup) bool {
	actual, ok := lookup(e.field)

	return ok && actual == e.value.text
}

type in struct {
	field  string
	values []value
}

// In matches a field against any of a set of values.
func In(field string, values ...string) Expr {
	e := &in{field: field}

	for _, v := range values {
		e.values = append(e.values, literal(v))
	}

	return e
}

func (e *in) render() string {
	return e.field + " IN (" + renderValues(e.values) + ")"
}

func (e *in) Eval(lookup Lookup) bool {
	actual, ok := lookup(e.field)
	if !ok {
		return false
	}

	for _, v := range e.values {
		if v.text == actual {
			return true
		}
	}

	return false
}

type matches struct {
	field   string
	pattern value
}

// Matches applies a wildcard pattern, * matches any run of characters
// and ? a single one.
func Matches(field, pattern string) Expr {
	return &matches{field: field, pattern: literal(pattern)}
}

func (e *matches) render() string {
	return e.field + " MATCHES(" + e.pattern.render() + ")"
}

func (e *matches) Eval(lookup Lookup) bool {
	actual, ok := lookup(e.field)
	if !ok {
		return false
	}

	matched, err := path.Match(e.pattern.text, actual)

	return err == nil && matched
}

type exists struct {
	field string
}

// Exists matches when the field is present at all.
func Exists(field string) Expr {
	return &exists{field: field}
}

func (e *exists) render() string {
	return "EXISTS(" + e.field + ")"
}

func (e *exists) Eval(lookup Lookup) bool {
	_, ok := lookup(e.field)

	return ok
}

type between struct {
	field string
	lower value
	upper value
}

// Between is an inclusive range.  Numeric bounds compare numerically,
// everything else lexically, which suits ISO timestamps.
func Between(field string, lower, upper any) Expr {
	return &between{field: field, lower: literal(lower), upper: literal(upper)}
}

func (e *between) render() string {
	return e.field + " BETWEEN (" + renderValues([]value{e.lower, e.upper}) + ")"
}

func (e *between) Eval(lookup Lookup) bool {
	actual, ok := lookup(e.field)
	if !ok {
		return false
	}

	a, aerr := strconv.ParseFloat(actual, 64)
	l, lerr := strconv.ParseFloat(e.lower.text, 64)
	u, uerr := strconv.ParseFloat(e.upper.text, 64)

	if aerr == nil && lerr == nil && uerr == nil {
		return l <= a && a <= u
	}

	return e.lower.text <= actual && actual <= e.upper.text
}

type junction struct {
	op    string
	exprs []Expr
}

// And matches when all expressions do.
func And(exprs ...Expr) Expr {
	return &junction{op: "AND", exprs: exprs}
}

// Or matches when any expression does.
func Or(exprs ...Expr) Expr {
	return &junction{op: "OR", exprs: exprs}
}

// nested parenthesises junctions, NOT binds tighter than AND and OR so
// needs none.
func nested(e Expr) string {
	if _, ok := e.(*junction); ok {
		return "(" + e.render() + ")"
	}

	return e.render()
}

func (e *junction) render() string {
	out := make([]string, len(e.exprs))

	for i := range e.exprs {
		out[i] = nested(e.exprs[i])
	}

	return strings.Join(out, " "+e.op+" ")
}

func (e *junction) Eval(lookup Lookup) bool {
	if e.op == "AND" {
		for _, x := range e.exprs {
			if !x.Eval(lookup) {
				return false
			}
		}

		return true
	}

	for _, x := range e.exprs {
		if x.Eval(lookup) {
			return true
		}
	}

	return false
}

type not struct {
	expr Expr
}

// Not negates an expression.
func Not(e Expr) Expr {
	return &not{expr: e}
}

func (e *not) render() string {
	return "NOT " + nested(e.expr)
}

func (e *not) Eval(lookup Lookup) bool {
	return !e.expr.Eval(lookup)
}

// Fields returns the set of fields an expression references, servers use
// this to reject clauses on properties a collection cannot filter by.
func Fields(e Expr) []string {
	var out []string

	var walk func(Expr)

	walk = func(e Expr) {
		switch t := e.(type) {
		case *eq:
			out = append(out, t.field)
		case *in:
			out = append(out, t.field)
		case *matches:
			out = append(out, t.field)
		case *exists:
			out = append(out, t.field)
		case *between:
			out = append(out, t.field)
		case *not:
			walk(t.expr)
		case *junction:
			for _, x := range t.exprs {
				walk(x)
			}
		}
	}

	walk(e)

	return out
}
