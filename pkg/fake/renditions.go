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
	"maps"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/content-harness/pkg/where"
)

// renditionDefinitions are the renditions every document supports, keyed
// by id with the mime type they produce.
//
//nolint:gochecknoglobals
var renditionDefinitions = map[string]string{
	"avatar":     "image/png",
	"doclib":     "image/png",
	"imgpreview": "image/jpeg",
	"pdf":        "application/pdf",
}

// renditionPlaceholder stands in for generated content, its size is all
// that is observable.
//
//nolint:gochecknoglobals
var renditionPlaceholder = []byte("rendition")

func renderRendition(nd *node, id string) openapi.Rendition {
	out := openapi.Rendition{
		ID:     id,
		Status: openapi.RenditionNotCreated,
		Content: &openapi.ContentInfo{
			MimeType: renditionDefinitions[id],
		},
	}

	if r, ok := nd.renditions[id]; ok {
		out.Status = openapi.RenditionCreated
		out.Content.SizeInBytes = int64(len(r.content))
	}

	return out
}

func (s *Server) listRenditions(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupDocument(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	request, err := parsePaging(r, paging.DefaultMaxItems)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	expr, err := parseWhere(r, "status")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var out []openapi.Rendition

	for _, id := range slices.Sorted(maps.Keys(renditionDefinitions)) {
		out = append(out, renderRendition(nd, id))
	}

	out = filter(out, expr, func(rendition openapi.Rendition) where.Lookup {
		return func(field string) (string, bool) {
			return rendition.Status, field == "status"
		}
	})

	writeList(w, r, out, request)
}

func (s *Server) lookupRendition(w http.ResponseWriter, r *http.Request) (*node, string, bool) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupDocument(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return nil, "", false
	}

	id := chi.URLParam(r, "renditionId")

	if _, ok := renditionDefinitions[id]; !ok {
		HandleError(w, r, HTTPNotFound(id))
		return nil, "", false
	}

	return nd, id, true
}

func (s *Server) getRendition(w http.ResponseWriter, r *http.Request) {
	nd, id, ok := s.lookupRendition(w, r)
	if !ok {
		return
	}

	writeEntry(w, r, http.StatusOK, renderRendition(nd, id))
}

// createRendition is asynchronous on a real server, here the rendition is
// available as soon as the request is accepted.
func (s *Server) createRendition(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupDocument(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var body openapi.RenditionBodyCreate

	if err := decodeBody(r, &body); err != nil {
		HandleError(w, r, err)
		return
	}

	if body.ID == "" {
		HandleError(w, r, HTTPBadRequest("Rendition id is expected"))
		return
	}

	mimeType, ok := renditionDefinitions[body.ID]
	if !ok {
		HandleError(w, r, HTTPNotFound(body.ID))
		return
	}

	if _, ok := nd.renditions[body.ID]; ok {
		HandleError(w, r, HTTPConflict("Rendition %s already exists", body.ID))
		return
	}

	nd.renditions[body.ID] = &rendition{
		content:  renditionPlaceholder,
		mimeType: mimeType,
	}

	setUncacheable(w)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) getRenditionContent(w http.ResponseWriter, r *http.Request) {
	nd, id, ok := s.lookupRendition(w, r)
	if !ok {
		return
	}

	generated, ok := nd.renditions[id]
	if !ok {
		HandleError(w, r, HTTPNotFound(id))
		return
	}

	writeContent(w, generated.mimeType, generated.content)
}
