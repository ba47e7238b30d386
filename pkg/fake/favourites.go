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
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/content-harness/pkg/where"
)

const favouriteField = "target/"

//nolint:gochecknoglobals
var favouriteOrderings = ordering[openapi.Favourite]{
	"createdAt": func(a, b openapi.Favourite) int {
		return a.CreatedAt.Compare(b.CreatedAt.Time)
	},
	"targetGuid": func(a, b openapi.Favourite) int {
		return cmp.Compare(a.TargetGUID, b.TargetGUID)
	},
}

// defaultFavouriteOrder is newest first.
func defaultFavouriteOrder(a, b openapi.Favourite) int {
	return -favouriteOrderings["createdAt"](a, b)
}

// checkSelf allows access to the caller's own favourites.  Anyone else's
// are reported as missing rather than forbidden.
func checkSelf(p *person, id string) error {
	if id != personMe && id != p.ID {
		return HTTPNotFound(id)
	}

	return nil
}

func (n *network) siteByGUID(guid string) (*site, bool) {
	for _, st := range n.sites {
		if st.GUID == guid {
			return st, true
		}
	}

	return nil, false
}

// resolveFavourite checks the target exists and is of the stated kind.  A
// site's own folder is a site, not a folder.
func (s *Server) resolveFavourite(n *network, p *person, kind, guid string) (openapi.FavouriteTarget, error) {
	var entity *openapi.FavouriteEntity

	switch kind {
	case openapi.FavouriteTargetFile, openapi.FavouriteTargetFolder:
		nd, ok := n.nodes[guid]
		if !ok || nd.isFolder() != (kind == openapi.FavouriteTargetFolder) {
			break
		}

		if _, ok := n.siteByGUID(guid); ok {
			break
		}

		entity = &openapi.FavouriteEntity{
			GUID: nd.id,
			ID:   nd.id,
			Name: nd.name,
		}
	case openapi.FavouriteTargetSite:
		st, ok := n.siteByGUID(guid)
		if !ok || !st.visible(p) {
			break
		}

		entity = &openapi.FavouriteEntity{
			GUID:  st.GUID,
			ID:    st.ID,
			Title: st.Title,
		}
	}

	if entity == nil {
		return openapi.FavouriteTarget{}, HTTPNotFound(guid)
	}

	var target openapi.FavouriteTarget

	switch kind {
	case openapi.FavouriteTargetFile:
		target.File = entity
	case openapi.FavouriteTargetFolder:
		target.Folder = entity
	case openapi.FavouriteTargetSite:
		target.Site = entity
	}

	return target, nil
}

// renderFavourites returns the caller's favourites newest first, targets
// that have since been deleted are dropped.
func (s *Server) renderFavourites(n *network, p *person) []openapi.Favourite {
	out := []openapi.Favourite{}

	for _, f := range slices.Backward(p.favourites) {
		target, err := s.resolveFavourite(n, p, f.kind, f.guid)
		if err != nil {
			continue
		}

		out = append(out, openapi.Favourite{
			TargetGUID: f.guid,
			CreatedAt:  openapi.NewTimestamp(f.createdAt),
			Target:     target,
		})
	}

	return out
}

func findFavourite(favourites []openapi.Favourite, guid string) (openapi.Favourite, bool) {
	i := slices.IndexFunc(favourites, func(f openapi.Favourite) bool {
		return f.TargetGUID == guid
	})

	if i < 0 {
		return openapi.Favourite{}, false
	}

	return favourites[i], true
}

func favouriteLookup(f openapi.Favourite) where.Lookup {
	kind, _ := f.Target.Kind()

	return func(field string) (string, bool) {
		return kind, field == favouriteField+kind
	}
}

func (s *Server) listFavourites(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	if err := checkSelf(p, chi.URLParam(r, "personId")); err != nil {
		HandleError(w, r, err)
		return
	}

	request, err := parsePaging(r, paging.DefaultMaxItems)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	expr, err := parseWhere(r,
		favouriteField+openapi.FavouriteTargetFile,
		favouriteField+openapi.FavouriteTargetFolder,
		favouriteField+openapi.FavouriteTargetSite,
	)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	order, err := parseOrderBy(r, favouriteOrderings, defaultFavouriteOrder)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	out := filter(s.renderFavourites(n, p), expr, favouriteLookup)

	slices.SortStableFunc(out, order)

	writeList(w, r, out, request)
}

// createFavourite adds a favourite, adding one that already exists is not
// an error and returns the original.
func (s *Server) createFavourite(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	if err := checkSelf(p, chi.URLParam(r, "personId")); err != nil {
		HandleError(w, r, err)
		return
	}

	// Decoded loosely so unknown target kinds are a 400 rather than
	// silently dropped.
	var body struct {
		Target map[string]openapi.FavouriteEntity `json:"target"`
	}

	if err := decodeBody(r, &body); err != nil {
		HandleError(w, r, err)
		return
	}

	if len(body.Target) != 1 {
		HandleError(w, r, HTTPBadRequest("Favourite target must have exactly one of file, folder or site"))
		return
	}

	var (
		kind   string
		entity openapi.FavouriteEntity
	)

	for k, e := range body.Target {
		kind, entity = k, e
	}

	switch kind {
	case openapi.FavouriteTargetFile, openapi.FavouriteTargetFolder, openapi.FavouriteTargetSite:
	default:
		HandleError(w, r, HTTPBadRequest("Invalid favourite target type: %s", kind))
		return
	}

	if entity.GUID == "" {
		HandleError(w, r, HTTPBadRequest("Favourite target guid is expected"))
		return
	}

	target, err := s.resolveFavourite(n, p, kind, entity.GUID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if existing, ok := findFavourite(s.renderFavourites(n, p), entity.GUID); ok {
		writeEntry(w, r, http.StatusCreated, existing)
		return
	}

	f := &favourite{
		guid:      entity.GUID,
		kind:      kind,
		createdAt: s.timestamp(),
	}

	p.favourites = append(p.favourites, f)

	writeEntry(w, r, http.StatusCreated, openapi.Favourite{
		TargetGUID: f.guid,
		CreatedAt:  openapi.NewTimestamp(f.createdAt),
		Target:     target,
	})
}

func (s *Server) getFavourite(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	if err := checkSelf(p, chi.URLParam(r, "personId")); err != nil {
		HandleError(w, r, err)
		return
	}

	guid := chi.URLParam(r, "targetGuid")

	f, ok := findFavourite(s.renderFavourites(n, p), guid)
	if !ok {
		HandleError(w, r, HTTPNotFound(guid))
		return
	}

	writeEntry(w, r, http.StatusOK, f)
}

func (s *Server) deleteFavourite(w http.ResponseWriter, r *http.Request) {
	p := personFromContext(r.Context())

	if err := checkSelf(p, chi.URLParam(r, "personId")); err != nil {
		HandleError(w, r, err)
		return
	}

	guid := chi.URLParam(r, "targetGuid")

	i := slices.IndexFunc(p.favourites, func(f *favourite) bool {
		return f.guid == guid
	})

	if i < 0 {
		HandleError(w, r, HTTPNotFound(guid))
		return
	}

	p.favourites = slices.Delete(p.favourites, i, i+1)

	w.WriteHeader(http.StatusNoContent)
}
