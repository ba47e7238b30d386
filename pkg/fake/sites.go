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
	"regexp"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
)

const (
	siteManager   = "SiteManager"
	sitePreset    = "site-dashboard"
	siteIDMaxSize = 72
)

var (
	siteIDInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	siteIDRegex        = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

// siteID derives a short name from a title.
func siteID(title string) string {
	id := strings.Trim(siteIDInvalidChars.ReplaceAllString(strings.ToLower(title), "-"), "-")

	if len(id) > siteIDMaxSize {
		id = strings.TrimRight(id[:siteIDMaxSize], "-")
	}

	return id
}

func validVisibility(visibility string) bool {
	switch visibility {
	case openapi.SiteVisibilityPublic, openapi.SiteVisibilityPrivate, openapi.SiteVisibilityModerated:
		return true
	}

	return false
}

// visible hides private sites from non-members.
func (st *site) visible(p *person) bool {
	if st.Visibility != openapi.SiteVisibilityPrivate || p.admin {
		return true
	}

	_, ok := st.members[p.ID]

	return ok
}

func renderSite(st *site, p *person) openapi.Site {
	out := st.Site
	out.Role = st.members[p.ID]

	return out
}

func (s *Server) lookupSite(n *network, p *person, id string) (*site, error) {
	st, ok := n.sites[id]
	if !ok || !st.visible(p) {
		return nil, HTTPNotFound(id)
	}

	return st, nil
}

//nolint:gochecknoglobals
var siteOrderings = ordering[openapi.Site]{
	"id": func(a, b openapi.Site) int {
		return cmp.Compare(a.ID, b.ID)
	},
	"title": func(a, b openapi.Site) int {
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	},
}

func defaultSiteOrder(a, b openapi.Site) int {
	if c := siteOrderings["title"](a, b); c != 0 {
		return c
	}

	return siteOrderings["id"](a, b)
}

func (s *Server) listSites(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	request, err := parsePaging(r, paging.DefaultMaxItems)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	order, err := parseOrderBy(r, siteOrderings, defaultSiteOrder)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	out := []openapi.Site{}

	for _, st := range n.sites {
		if st.visible(p) {
			out = append(out, renderSite(st, p))
		}
	}

	slices.SortFunc(out, order)

	writeList(w, r, out, request)
}

func (s *Server) createSite(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	var body openapi.SiteBodyCreate

	if err := decodeBody(r, &body); err != nil {
		HandleError(w, r, err)
		return
	}

	if strings.TrimSpace(body.Title) == "" {
		HandleError(w, r, HTTPBadRequest("Site title is expected"))
		return
	}

	if !validVisibility(body.Visibility) {
		HandleError(w, r, HTTPBadRequest("Invalid site visibility: %s", body.Visibility))
		return
	}

	id := body.ID
	if id == "" {
		id = siteID(body.Title)
	}

	if !siteIDRegex.MatchString(id) || len(id) > siteIDMaxSize {
		HandleError(w, r, HTTPBadRequest("Invalid site id: %s", id))
		return
	}

	if _, ok := n.sites[id]; ok {
		HandleError(w, r, HTTPConflict("Site with id %s already exists", id))
		return
	}

	folder := s.newNode(n, id, openapi.NodeTypeFolder, n.sitesID, p.ID)
	folder.system = true
	folder.aspects = append(folder.aspects, "st:siteContainer")

	library := s.newNode(n, openapi.DocumentLibrary, openapi.NodeTypeFolder, folder.id, p.ID)
	library.system = true

	st := &site{
		Site: openapi.Site{
			ID:          id,
			GUID:        folder.id,
			Title:       body.Title,
			Description: body.Description,
			Visibility:  body.Visibility,
			Preset:      sitePreset,
		},
		creator:   p.ID,
		folderID:  folder.id,
		libraryID: library.id,
		members: map[string]string{
			p.ID: siteManager,
		},
	}

	n.sites[id] = st

	writeEntry(w, r, http.StatusCreated, renderSite(st, p))
}

func (s *Server) getSite(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	st, err := s.lookupSite(n, p, chi.URLParam(r, "siteId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	writeEntry(w, r, http.StatusOK, renderSite(st, p))
}

func (s *Server) deleteSite(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	st, err := s.lookupSite(n, p, chi.URLParam(r, "siteId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if _, err := queryBool(r, "permanent"); err != nil {
		HandleError(w, r, err)
		return
	}

	if st.members[p.ID] != siteManager && !p.admin {
		HandleError(w, r, HTTPForbidden("Permission was denied"))
		return
	}

	if folder, ok := n.nodes[st.folderID]; ok {
		n.remove(folder)
	}

	delete(n.sites, st.ID)

	w.WriteHeader(http.StatusNoContent)
}

func renderContainer(st *site) openapi.SiteContainer {
	return openapi.SiteContainer{
		ID:       openapi.DocumentLibrary,
		FolderID: st.libraryID,
	}
}

func (s *Server) listSiteContainers(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	st, err := s.lookupSite(n, p, chi.URLParam(r, "siteId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	request, err := parsePaging(r, paging.DefaultMaxItems)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	writeList(w, r, []openapi.SiteContainer{renderContainer(st)}, request)
}

func (s *Server) getSiteContainer(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	st, err := s.lookupSite(n, p, chi.URLParam(r, "siteId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if id := chi.URLParam(r, "containerId"); id != openapi.DocumentLibrary {
		HandleError(w, r, HTTPNotFound(id))
		return
	}

	writeEntry(w, r, http.StatusOK, renderContainer(st))
}
