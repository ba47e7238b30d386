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
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
)

// canModifyComment allows administrators and the comment's author, other
// collaborators on the node may not.
func canModifyComment(p *person, c *comment) bool {
	return p.admin || c.createdBy == p.ID
}

func personEntity(n *network, id string) *openapi.Person {
	if p, ok := n.people[id]; ok {
		out := p.Person
		return &out
	}

	return &openapi.Person{ID: id}
}

func renderComment(n *network, p *person, c *comment) openapi.Comment {
	return openapi.Comment{
		ID:         c.id,
		Content:    c.content,
		CreatedAt:  openapi.NewTimestamp(c.createdAt),
		CreatedBy:  personEntity(n, c.createdBy),
		ModifiedAt: openapi.NewTimestamp(c.modifiedAt),
		ModifiedBy: personEntity(n, c.modifiedBy),
		Edited:     c.edited,
		CanEdit:    canModifyComment(p, c),
		CanDelete:  canModifyComment(p, c),
	}
}

func (nd *node) lookupComment(id string) (int, error) {
	i := slices.IndexFunc(nd.comments, func(c *comment) bool {
		return c.id == id
	})

	if i < 0 {
		return 0, HTTPNotFound(id)
	}

	return i, nil
}

func commentContent(r *http.Request) (string, error) {
	var body openapi.CommentBody

	if err := decodeBody(r, &body); err != nil {
		return "", err
	}

	if strings.TrimSpace(body.Content) == "" {
		return "", HTTPBadRequest("An invalid argument was received: content is expected")
	}

	return body.Content, nil
}

// listComments returns a node's comments newest first.
func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
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

	out := make([]openapi.Comment, 0, len(nd.comments))

	for _, c := range slices.Backward(nd.comments) {
		out = append(out, renderComment(n, p, c))
	}

	writeList(w, r, out, request)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	content, err := commentContent(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	now := s.timestamp()

	c := &comment{
		id:         uuid.NewString(),
		content:    content,
		createdAt:  now,
		modifiedAt: now,
		createdBy:  p.ID,
		modifiedBy: p.ID,
	}

	nd.comments = append(nd.comments, c)

	writeEntry(w, r, http.StatusCreated, renderComment(n, p, c))
}

func (s *Server) updateComment(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	i, err := nd.lookupComment(chi.URLParam(r, "commentId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	c := nd.comments[i]

	if !canModifyComment(p, c) {
		HandleError(w, r, HTTPForbidden("Permission was denied"))
		return
	}

	content, err := commentContent(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	c.content = content
	c.modifiedAt = s.timestamp()
	c.modifiedBy = p.ID
	c.edited = true

	writeEntry(w, r, http.StatusOK, renderComment(n, p, c))
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	i, err := nd.lookupComment(chi.URLParam(r, "commentId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if !canModifyComment(p, nd.comments[i]) {
		HandleError(w, r, HTTPForbidden("Permission was denied"))
		return
	}

	nd.comments = slices.Delete(nd.comments, i, i+1)

	w.WriteHeader(http.StatusNoContent)
}
