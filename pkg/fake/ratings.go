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
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"

	"k8s.io/utils/ptr"
)

const (
	minStars = 1
	maxStars = 5
)

// ratingSchemes are listed in this order.
//
//nolint:gochecknoglobals
var ratingSchemes = []string{
	openapi.RatingSchemeFiveStar,
	openapi.RatingSchemeLikes,
}

func validScheme(scheme string) bool {
	return scheme == openapi.RatingSchemeFiveStar || scheme == openapi.RatingSchemeLikes
}

func renderRating(nd *node, scheme, userID string) openapi.Rating {
	ratings := nd.ratings[scheme]

	out := openapi.Rating{
		ID: scheme,
		Aggregate: openapi.RatingAggregate{
			NumberOfRatings: len(ratings),
		},
	}

	if scheme == openapi.RatingSchemeFiveStar && len(ratings) != 0 {
		var total float64

		for _, r := range ratings {
			//nolint:forcetypeassert
			total += float64(r.value.(int))
		}

		out.Aggregate.Average = ptr.To(total / float64(len(ratings)))
	}

	if mine, ok := ratings[userID]; ok {
		out.MyRating = mine.value
		out.RatedAt = ptr.To(openapi.NewTimestamp(mine.ratedAt))
	}

	return out
}

// ratingValue checks a rating is of the scheme's type, likes are booleans
// and stars whole numbers in range.
func ratingValue(scheme string, value any) (any, error) {
	switch scheme {
	case openapi.RatingSchemeLikes:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case openapi.RatingSchemeFiveStar:
		if f, ok := value.(float64); ok && f == math.Trunc(f) && f >= minStars && f <= maxStars {
			return int(f), nil
		}
	}

	return nil, HTTPBadRequest("Invalid rating %v for scheme %s", value, scheme)
}

func (s *Server) listRatings(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	request, err := parsePaging(r, paging.DefaultMaxItems)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	out := make([]openapi.Rating, len(ratingSchemes))

	for i, scheme := range ratingSchemes {
		out[i] = renderRating(nd, scheme, p.ID)
	}

	writeList(w, r, out, request)
}

func (s *Server) getRating(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	scheme := chi.URLParam(r, "ratingId")

	if !validScheme(scheme) {
		HandleError(w, r, HTTPNotFound(scheme))
		return
	}

	writeEntry(w, r, http.StatusOK, renderRating(nd, scheme, p.ID))
}

// createRating adds or replaces the caller's rating, stars may not be
// given to your own content.
func (s *Server) createRating(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var body openapi.RatingBody

	if err := decodeBody(r, &body); err != nil {
		HandleError(w, r, err)
		return
	}

	if !validScheme(body.ID) {
		HandleError(w, r, HTTPBadRequest("Invalid ratingSchemeId %s", body.ID))
		return
	}

	value, err := ratingValue(body.ID, body.MyRating)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if body.ID == openapi.RatingSchemeFiveStar && nd.createdBy == p.ID {
		HandleError(w, r, HTTPBadRequest("Cannot rate own content"))
		return
	}

	if nd.ratings[body.ID] == nil {
		nd.ratings[body.ID] = map[string]*rating{}
	}

	nd.ratings[body.ID][p.ID] = &rating{
		value:   value,
		ratedAt: s.timestamp(),
	}

	writeEntry(w, r, http.StatusCreated, renderRating(nd, body.ID, p.ID))
}

func (s *Server) deleteRating(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	scheme := chi.URLParam(r, "ratingId")

	if _, ok := nd.ratings[scheme][p.ID]; !ok {
		HandleError(w, r, HTTPNotFound(scheme))
		return
	}

	delete(nd.ratings[scheme], p.ID)

	w.WriteHeader(http.StatusNoContent)
}
