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
	"cmp"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
)

const personMe = "-me-"

func (s *Server) lookupPerson(n *network, p *person, id string) (*person, error) {
	if id == personMe {
		return p, nil
	}

	other, ok := n.people[id]
	if !ok {
		return nil, HTTPNotFound(id)
	}

	return other, nil
}

//nolint:gochecknoglobals
var personOrderings = ordering[openapi.Person]{
	"id": func(a, b openapi.Person) int {
		return cmp.Compare(a.ID, b.ID)
	},
	"firstName": func(a, b openapi.Person) int {
		return cmp.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName))
	},
	"lastName": func(a, b openapi.Person) int {
		return cmp.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName))
	},
}

func (s *Server) listPeople(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())

	request, err := parsePaging(r, paging.DefaultMaxItems)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	order, err := parseOrderBy(r, personOrderings, personOrderings["id"])
	if err != nil {
		HandleError(w, r, err)
		return
	}

	out := make([]openapi.Person, 0, len(n.people))

	for _, id := range slices.Sorted(maps.Keys(n.people)) {
		out = append(out, n.people[id].Person)
	}

	slices.SortStableFunc(out, order)

	writeList(w, r, out, request)
}

func (s *Server) createPerson(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	if !p.admin {
		HandleError(w, r, HTTPForbidden("Permission was denied"))
		return
	}

	var body openapi.PersonBodyCreate

	if err := decodeBody(r, &body); err != nil {
		HandleError(w, r, err)
		return
	}

	var missing []string

	for field, value := range map[string]string{
		"id":        body.ID,
		"firstName": body.FirstName,
		"email":     body.Email,
		"password":  body.Password,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) != 0 {
		slices.Sort(missing)

		HandleError(w, r, HTTPBadRequest("Field(s) are expected: %s", strings.Join(missing, ", ")))

		return
	}

	if _, ok := n.people[body.ID]; ok {
		HandleError(w, r, HTTPConflict("Person with id %s already exists", body.ID))
		return
	}

	created := s.addPerson(n, &body, false)

	writeEntry(w, r, http.StatusCreated, created.Person)
}

func (s *Server) getPerson(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	other, err := s.lookupPerson(n, p, chi.URLParam(r, "personId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	writeEntry(w, r, http.StatusOK, other.Person)
}
