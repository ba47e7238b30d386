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
	"errors"
	"fmt"
	"io"
	"maps"
	"mime"
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/content-harness/pkg/where"
)

const (
	nodeRoot = "-root-"
	nodeMy   = "-my-"

	defaultMimeType = "application/octet-stream"
)

func (s *Server) userInfo(n *network, id string) *openapi.UserInfo {
	info := &openapi.UserInfo{
		ID:          id,
		DisplayName: id,
	}

	if p, ok := n.people[id]; ok && p.DisplayName != "" {
		info.DisplayName = p.DisplayName
	}

	return info
}

func (s *Server) renderNode(n *network, nd *node, full bool) openapi.Node {
	out := openapi.Node{
		ID:             nd.id,
		Name:           nd.name,
		NodeType:       nd.nodeType,
		IsFolder:       nd.isFolder(),
		IsFile:         !nd.isFolder(),
		ParentID:       nd.parentID,
		CreatedAt:      openapi.NewTimestamp(nd.createdAt),
		ModifiedAt:     openapi.NewTimestamp(nd.modifiedAt),
		CreatedByUser:  s.userInfo(n, nd.createdBy),
		ModifiedByUser: s.userInfo(n, nd.modifiedBy),
	}

	if !nd.isFolder() {
		out.Content = &openapi.ContentInfo{
			MimeType:    nd.mimeType,
			SizeInBytes: int64(len(nd.content)),
		}
	}

	if full {
		out.AspectNames = slices.Clone(nd.aspects)
		out.Properties = maps.Clone(nd.properties)

		if label := nd.versionLabel(); label != "" {
			out.Properties["cm:versionLabel"] = label
		}
	}

	return out
}

func (nd *node) versionLabel() string {
	if len(nd.versions) == 0 {
		return ""
	}

	return nd.versions[len(nd.versions)-1].label
}

// lookupNode resolves an identifier or alias.
func (s *Server) lookupNode(n *network, p *person, id string) (*node, error) {
	switch id {
	case nodeRoot:
		id = n.rootID
	case nodeMy:
		id = p.homeID
	}

	nd, ok := n.nodes[id]
	if !ok {
		return nil, HTTPNotFound(id)
	}

	return nd, nil
}

func (s *Server) lookupFolder(n *network, p *person, id string) (*node, error) {
	nd, err := s.lookupNode(n, p, id)
	if err != nil {
		return nil, err
	}

	if !nd.isFolder() {
		return nil, HTTPBadRequest("NodeId of folder is expected: %s", nd.id)
	}

	return nd, nil
}

func (s *Server) lookupDocument(n *network, p *person, id string) (*node, error) {
	nd, err := s.lookupNode(n, p, id)
	if err != nil {
		return nil, err
	}

	if nd.isFolder() {
		return nil, HTTPBadRequest("NodeId of content is expected: %s", nd.id)
	}

	return nd, nil
}

// children returns a folder's immediate children in no particular order.
func (n *network) children(parentID string) []*node {
	var out []*node

	for _, nd := range n.nodes {
		if nd.parentID == parentID {
			out = append(out, nd)
		}
	}

	return out
}

func (n *network) childNamed(parentID, name string) *node {
	for _, nd := range n.children(parentID) {
		if strings.EqualFold(nd.name, name) {
			return nd
		}
	}

	return nil
}

// uniqueName appends -1, -2... before the extension until the name is free.
func (n *network) uniqueName(parentID, name string) string {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", base, i, ext)

		if n.childNamed(parentID, candidate) == nil {
			return candidate
		}
	}
}

func mimeTypeFor(name string) string {
	mimeType := mime.TypeByExtension(path.Ext(name))
	if mimeType == "" {
		return defaultMimeType
	}

	mimeType, _, _ = strings.Cut(mimeType, ";")

	return mimeType
}

func boolString(b bool) string {
	return strconv.FormatBool(b)
}

func nodeLookup(nd *node) where.Lookup {
	return func(field string) (string, bool) {
		switch field {
		case "isFolder":
			return boolString(nd.isFolder()), true
		case "isFile":
			return boolString(!nd.isFolder()), true
		case "nodeType":
			return nd.nodeType, true
		}

		return "", false
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}

	return -1
}

//nolint:gochecknoglobals
var nodeOrderings = ordering[*node]{
	"name": func(a, b *node) int {
		return cmp.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
	},
	"createdAt": func(a, b *node) int {
		return a.createdAt.Compare(b.createdAt)
	},
	"modifiedAt": func(a, b *node) int {
		return a.modifiedAt.Compare(b.modifiedAt)
	},
	"isFolder": func(a, b *node) int {
		return compareBool(a.isFolder(), b.isFolder())
	},
}

// defaultNodeOrder lists folders first then names alphabetically, the id
// keeps the order total.
func defaultNodeOrder(a, b *node) int {
	if c := -compareBool(a.isFolder(), b.isFolder()); c != 0 {
		return c
	}

	if c := nodeOrderings["name"](a, b); c != 0 {
		return c
	}

	return cmp.Compare(a.id, b.id)
}

func (s *Server) getNode(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	writeEntry(w, r, http.StatusOK, s.renderNode(n, nd, true))
}

func (s *Server) listChildren(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	parent, err := s.lookupFolder(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	request, err := parsePaging(r, paging.DefaultMaxItems)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	expr, err := parseWhere(r, "isFolder", "isFile", "nodeType")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	order, err := parseOrderBy(r, nodeOrderings, defaultNodeOrder)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	children := filter(n.children(parent.id), expr, nodeLookup)
	slices.SortFunc(children, order)

	include := includes(r)
	full := slices.Contains(include, "properties") || slices.Contains(include, "aspectNames")

	out := make([]openapi.Node, len(children))

	for i, child := range children {
		out[i] = s.renderNode(n, child, full)
	}

	writeList(w, r, out, request)
}

//nolint:cyclop
func (s *Server) createChild(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	parent, err := s.lookupFolder(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	autoRename, err := queryBool(r, "autoRename")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var body openapi.NodeBodyCreate

	if err := decodeBody(r, &body); err != nil {
		HandleError(w, r, err)
		return
	}

	if body.Name == "" {
		HandleError(w, r, HTTPBadRequest("Name is expected"))
		return
	}

	if body.NodeType != openapi.NodeTypeFolder && body.NodeType != openapi.NodeTypeContent {
		HandleError(w, r, HTTPBadRequest("Unknown type: %s", body.NodeType))
		return
	}

	if err := openapi.ValidateNodeName(body.Name); err != nil {
		HandleError(w, r, HTTPUnprocessable("Name contains invalid characters: %s", body.Name).WithError(err))
		return
	}

	name := body.Name

	if n.childNamed(parent.id, name) != nil {
		if !autoRename {
			HandleError(w, r, HTTPConflict("Duplicate child name not allowed: %s", name))
			return
		}

		name = n.uniqueName(parent.id, name)
	}

	nd := s.newNode(n, name, body.NodeType, parent.id, p.ID)

	for _, aspect := range body.AspectNames {
		if !slices.Contains(nd.aspects, aspect) {
			nd.aspects = append(nd.aspects, aspect)
		}
	}

	maps.Copy(nd.properties, body.Properties)

	if !nd.isFolder() {
		nd.mimeType = mimeTypeFor(name)
		nd.aspects = append(nd.aspects, "cm:versionable")
		nd.versions = []*version{
			{
				label:      "1.0",
				name:       name,
				mimeType:   nd.mimeType,
				modifiedAt: nd.modifiedAt,
				modifiedBy: p.ID,
			},
		}
	}

	writeEntry(w, r, http.StatusCreated, s.renderNode(n, nd, true))
}

// canModify allows administrators and the node's creator.
func canModify(p *person, nd *node) bool {
	return p.admin || nd.createdBy == p.ID
}

//nolint:cyclop
func (s *Server) updateNode(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if nd.system || !canModify(p, nd) {
		HandleError(w, r, HTTPForbidden("Permission was denied"))
		return
	}

	var body openapi.NodeBodyUpdate

	if err := decodeBody(r, &body); err != nil {
		HandleError(w, r, err)
		return
	}

	if body.NodeType != nil && *body.NodeType != nd.nodeType {
		HandleError(w, r, HTTPBadRequest("Failed to change (specialize) node type from %s to %s", nd.nodeType, *body.NodeType))
		return
	}

	if body.Name != nil && *body.Name != nd.name {
		if err := openapi.ValidateNodeName(*body.Name); err != nil {
			HandleError(w, r, HTTPUnprocessable("Name contains invalid characters: %s", *body.Name).WithError(err))
			return
		}

		if other := n.childNamed(nd.parentID, *body.Name); other != nil && other != nd {
			HandleError(w, r, HTTPConflict("Duplicate child name not allowed: %s", *body.Name))
			return
		}

		nd.name = *body.Name
	}

	if body.AspectNames != nil {
		nd.aspects = slices.Clone(body.AspectNames)
	}

	maps.Copy(nd.properties, body.Properties)

	nd.modifiedAt = s.timestamp()
	nd.modifiedBy = p.ID

	writeEntry(w, r, http.StatusOK, s.renderNode(n, nd, true))
}

// remove deletes a node and everything beneath it.
func (n *network) remove(nd *node) {
	for _, child := range n.children(nd.id) {
		n.remove(child)
	}

	for id, job := range n.jobs {
		if job.nodeID == nd.id {
			delete(n.jobs, id)
		}
	}

	delete(n.nodes, nd.id)
}

func (s *Server) deleteNode(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	// There is no trashcan so permanent is accepted and ignored.
	if _, err := queryBool(r, "permanent"); err != nil {
		HandleError(w, r, err)
		return
	}

	if nd.system || nd.id == p.homeID || !canModify(p, nd) {
		HandleError(w, r, HTTPForbidden("Permission was denied"))
		return
	}

	n.remove(nd)

	w.WriteHeader(http.StatusNoContent)
}

func writeContent(w http.ResponseWriter, mimeType string, content []byte) {
	setUncacheable(w)
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(content)
}

func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupDocument(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	writeContent(w, nd.mimeType, nd.content)
}

var errVersionLabel = errors.New("malformed version label")

// nextVersion bumps a major.minor label.
func nextVersion(label string, major bool) (string, error) {
	var maj, minor int

	if _, err := fmt.Sscanf(label, "%d.%d", &maj, &minor); err != nil {
		return "", fmt.Errorf("%w: %s", errVersionLabel, label)
	}

	if major {
		return fmt.Sprintf("%d.0", maj+1), nil
	}

	return fmt.Sprintf("%d.%d", maj, minor+1), nil
}

func (s *Server) updateContent(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupDocument(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if !canModify(p, nd) {
		HandleError(w, r, HTTPForbidden("Permission was denied"))
		return
	}

	major, err := queryBool(r, "majorVersion")
	if err != nil {
		HandleError(w, r, err)
		return
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		HandleError(w, r, HTTPBadRequest("Could not read content from HTTP request body").WithError(err))
		return
	}

	label, err := nextVersion(nd.versionLabel(), major)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	mimeType := nd.mimeType

	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
			mimeType = parsed
		}
	}

	nd.content = content
	nd.mimeType = mimeType
	nd.modifiedAt = s.timestamp()
	nd.modifiedBy = p.ID

	nd.versions = append(nd.versions, &version{
		label:      label,
		comment:    r.URL.Query().Get("comment"),
		name:       nd.name,
		content:    content,
		mimeType:   mimeType,
		modifiedAt: nd.modifiedAt,
		modifiedBy: p.ID,
	})

	// Renditions are regenerated lazily, stale ones are dropped.
	clear(nd.renditions)

	writeEntry(w, r, http.StatusOK, s.renderNode(n, nd, true))
}

func (s *Server) renderVersion(n *network, nd *node, v *version) openapi.Version {
	return openapi.Version{
		ID:             v.label,
		VersionComment: v.comment,
		Name:           v.name,
		NodeType:       nd.nodeType,
		IsFile:         true,
		ModifiedAt:     openapi.NewTimestamp(v.modifiedAt),
		ModifiedByUser: s.userInfo(n, v.modifiedBy),
		Content: &openapi.ContentInfo{
			MimeType:    v.mimeType,
			SizeInBytes: int64(len(v.content)),
		},
	}
}

func (nd *node) version(label string) (*version, error) {
	for _, v := range nd.versions {
		if v.label == label {
			return v, nil
		}
	}

	return nil, HTTPNotFound(label)
}

// listVersions returns the history newest first.
func (s *Server) listVersions(w http.ResponseWriter, r *http.Request) {
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

	out := make([]openapi.Version, 0, len(nd.versions))

	for _, v := range slices.Backward(nd.versions) {
		out = append(out, s.renderVersion(n, nd, v))
	}

	writeList(w, r, out, request)
}

func (s *Server) getVersion(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupDocument(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	v, err := nd.version(chi.URLParam(r, "versionId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	writeEntry(w, r, http.StatusOK, s.renderVersion(n, nd, v))
}

func (s *Server) getVersionContent(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupDocument(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	v, err := nd.version(chi.URLParam(r, "versionId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	writeContent(w, v.mimeType, v.content)
}
