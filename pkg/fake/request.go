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

package fake

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/content-harness/pkg/where"
	"github.com/unikorn-cloud/core/pkg/server/util"

	"k8s.io/utils/ptr"
)

// parsePaging binds skipCount and maxItems, absent values take the
// collection's defaults so the returned request is fully specified.
func parsePaging(r *http.Request, defaultMaxItems int) (*paging.Request, error) {
	var request paging.Request

	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "skipCount", query, &request.SkipCount); err != nil {
		return nil, HTTPBadRequest("Invalid paging parameter skipCount: %s", query.Get("skipCount")).WithError(err)
	}

	if err := runtime.BindQueryParameter("form", true, false, "maxItems", query, &request.MaxItems); err != nil {
		return nil, HTTPBadRequest("Invalid paging parameter maxItems: %s", query.Get("maxItems")).WithError(err)
	}

	if request.SkipCount == nil {
		request.SkipCount = ptr.To(paging.DefaultSkipCount)
	}

	if request.MaxItems == nil {
		request.MaxItems = ptr.To(defaultMaxItems)
	}

	if *request.SkipCount < 0 {
		return nil, HTTPBadRequest("Invalid paging parameter skipCount: %d", *request.SkipCount)
	}

	if *request.MaxItems < 1 {
		return nil, HTTPBadRequest("Only positive values supported for maxItems")
	}

	return &request, nil
}

// parseWhere parses the where clause, only the listed fields may be
// filtered on.
func parseWhere(r *http.Request, allowed ...string) (where.Expr, error) {
	clause := r.URL.Query().Get("where")
	if clause == "" {
		return nil, nil //nolint:nilnil
	}

	expr, err := where.Parse(clause)
	if err != nil {
		return nil, HTTPBadRequest("Invalid query: %s", clause).WithError(err)
	}

	unsupported := set.New[string](where.Fields(expr)...).Difference(set.New[string](allowed...))

	if fields := slices.Sorted(unsupported.All()); len(fields) != 0 {
		return nil, HTTPBadRequest("An invalid WHERE query was received. Unsupported property: %s", strings.Join(fields, ", "))
	}

	return expr, nil
}

// filter keeps the items the expression selects, a nil expression keeps
// everything.
func filter[T any](items []T, expr where.Expr, lookup func(T) where.Lookup) []T {
	if expr == nil {
		return items
	}

	var out []T

	for _, item := range items {
		if expr.Eval(lookup(item)) {
			out = append(out, item)
		}
	}

	return out
}

// ordering is a comparison for a single orderBy field.
type ordering[T any] map[string]func(a, b T) int

// parseOrderBy builds a comparator from "field [ASC|DESC], ...", fallback
// breaks ties and applies when no order is requested.
func parseOrderBy[T any](r *http.Request, orderings ordering[T], fallback func(a, b T) int) (func(a, b T) int, error) {
	clause := r.URL.Query().Get("orderBy")
	if clause == "" {
		return fallback, nil
	}

	var comparators []func(a, b T) int

	for _, term := range strings.Split(clause, ",") {
		fields := strings.Fields(term)
		if len(fields) == 0 || len(fields) > 2 {
			return nil, HTTPBadRequest("Invalid orderBy clause: %s", clause)
		}

		compare, ok := orderings[fields[0]]
		if !ok {
			return nil, HTTPBadRequest("OrderBy is not supported for property: %s", fields[0])
		}

		if len(fields) == 2 {
			switch strings.ToUpper(fields[1]) {
			case "ASC":
			case "DESC":
				ascending := compare
				compare = func(a, b T) int { return -ascending(a, b) }
			default:
				return nil, HTTPBadRequest("Invalid sort direction: %s", fields[1])
			}
		}

		comparators = append(comparators, compare)
	}

	comparators = append(comparators, fallback)

	return func(a, b T) int {
		for _, compare := range comparators {
			if c := compare(a, b); c != 0 {
				return c
			}
		}

		return 0
	}, nil
}

// includes returns the requested optional fields.
func includes(r *http.Request) []string {
	var fields []string

	for _, value := range r.URL.Query()["include"] {
		for _, field := range strings.Split(value, ",") {
			if field = strings.TrimSpace(field); field != "" {
				fields = append(fields, field)
			}
		}
	}

	return fields
}

func queryBool(r *http.Request, name string) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, HTTPBadRequest("Invalid value for %s: %s", name, value)
	}

	return b, nil
}

func writeEntry[T any](w http.ResponseWriter, r *http.Request, status int, entry T) {
	setUncacheable(w)
	util.WriteJSONResponse(w, r, status, &openapi.Entry[T]{Entry: entry})
}

// writeList renders one page of an ordered collection.  totalItems is
// always reported.
func writeList[T any](w http.ResponseWriter, r *http.Request, dataset []T, request *paging.Request) {
	window := paging.Window(dataset, request)

	entries := make([]openapi.Entry[T], len(window))

	for i := range window {
		entries[i].Entry = window[i]
	}

	result := &openapi.List[T]{
		List: openapi.ListBody[T]{
			Pagination: paging.Expected(request, len(dataset), true),
			Entries:    entries,
		},
	}

	setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}
