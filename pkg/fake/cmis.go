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
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/core/pkg/server/util"
)

// cmisException is the browser binding's error body.
type cmisException struct {
	Exception string `json:"exception"`
	Message   string `json:"message"`
}

func cmisExceptionName(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalidArgument"
	case http.StatusForbidden:
		return "permissionDenied"
	case http.StatusNotFound:
		return "objectNotFound"
	case http.StatusConflict:
		return "constraint"
	case http.StatusNotImplemented:
		return "notSupported"
	}

	return "runtime"
}

// handleCMISError renders API errors in the binding's own format.
func handleCMISError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *Error

	if !errors.As(err, &apiErr) {
		apiErr = HTTPServerError(err)
	}

	util.WriteJSONResponse(w, r, apiErr.status, &cmisException{
		Exception: cmisExceptionName(apiErr.status),
		Message:   apiErr.summary,
	})
}

func cmisProperty(id string, value any) openapi.CMISProperty {
	return openapi.CMISProperty{ID: id, Value: value}
}

// renderCMISObject maps a node onto its CMIS properties, documents carry
// their version label in the object id.
func renderCMISObject(nd *node) openapi.CMISObject {
	objectID := nd.id
	baseTypeID := openapi.CMISBaseTypeFolder

	if !nd.isFolder() {
		objectID += ";" + nd.versionLabel()
		baseTypeID = openapi.CMISBaseTypeDocument
	}

	out := openapi.NewCMISObject(objectID, nd.name, baseTypeID)

	out.Properties["cmis:objectTypeId"] = cmisProperty("cmis:objectTypeId", baseTypeID)
	out.Properties["cmis:createdBy"] = cmisProperty("cmis:createdBy", nd.createdBy)
	out.Properties["cmis:creationDate"] = cmisProperty("cmis:creationDate", nd.createdAt.UnixMilli())
	out.Properties["cmis:lastModifiedBy"] = cmisProperty("cmis:lastModifiedBy", nd.modifiedBy)
	out.Properties["cmis:lastModificationDate"] = cmisProperty("cmis:lastModificationDate", nd.modifiedAt.UnixMilli())

	if nd.isFolder() {
		out.Properties["cmis:parentId"] = cmisProperty("cmis:parentId", nd.parentID)
	} else {
		out.Properties["cmis:contentStreamLength"] = cmisProperty("cmis:contentStreamLength", len(nd.content))
		out.Properties["cmis:contentStreamMimeType"] = cmisProperty("cmis:contentStreamMimeType", nd.mimeType)
	}

	return out
}

// cmisRoot dispatches on cmisselector, objects are addressed by objectId
// with or without a version suffix.
func (s *Server) cmisRoot(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	query := r.URL.Query()

	objectID, _, _ := strings.Cut(query.Get("objectId"), ";")
	if objectID == "" {
		objectID = n.rootID
	}

	nd, err := s.lookupNode(n, p, objectID)
	if err != nil {
		handleCMISError(w, r, err)
		return
	}

	switch selector := query.Get("cmisselector"); selector {
	case "object":
		setUncacheable(w)
		util.WriteJSONResponse(w, r, http.StatusOK, renderCMISObject(nd))
	case "children":
		s.cmisChildren(w, r, nd)
	default:
		handleCMISError(w, r, HTTPBadRequest("Unknown cmisselector: %s", selector))
	}
}

func (s *Server) cmisChildren(w http.ResponseWriter, r *http.Request, folder *node) {
	n := networkFromContext(r.Context())

	if !folder.isFolder() {
		handleCMISError(w, r, HTTPBadRequest("Object is not a folder: %s", folder.id))
		return
	}

	request, err := parsePaging(r, paging.DefaultCMISMaxItems)
	if err != nil {
		handleCMISError(w, r, err)
		return
	}

	children := n.children(folder.id)
	slices.SortFunc(children, defaultNodeOrder)

	window := paging.Window(children, request)
	pagination := paging.Expected(request, len(children), true)

	out := &openapi.CMISObjectList{
		Objects:      make([]openapi.CMISObjectData, len(window)),
		HasMoreItems: pagination.HasMoreItems,
		NumItems:     pagination.TotalItems,
	}

	for i, child := range window {
		out.Objects[i].Object = renderCMISObject(child)
	}

	setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, out)
}
