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
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/core/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	stackTraceMessage = "For security reasons the stack trace is no longer displayed, but the property is kept for previous versions"
	descriptionURL    = "https://api-explorer.alfresco.com"
)

// Error keys as reported by the repository.
const (
	keyInvalidArgument     = "framework.exception.InvalidArgument"
	keyPermissionDenied    = "framework.exception.PermissionDenied"
	keyEntityNotFound      = "framework.exception.EntityNotFound"
	keyConstraintViolated  = "framework.exception.ConstraintViolated"
	keyIntegrity           = "framework.exception.IntegrityException"
	keyUnsupportedResource = "framework.exception.UnsupportedResourceOperation"
)

// Error is an API error, handlers return these and HandleError renders
// them as the error envelope.
type Error struct {
	status  int
	key     string
	summary string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%d %s: %s: %v", e.status, e.key, e.summary, e.err)
	}

	return fmt.Sprintf("%d %s: %s", e.status, e.key, e.summary)
}

func (e *Error) Unwrap() error {
	return e.err
}

// WithError attaches a cause for logging.
func (e *Error) WithError(err error) *Error {
	e.err = err

	return e
}

func newError(status int, key, format string, a ...any) *Error {
	return &Error{
		status:  status,
		key:     key,
		summary: fmt.Sprintf(format, a...),
	}
}

func HTTPBadRequest(format string, a ...any) *Error {
	return newError(http.StatusBadRequest, keyInvalidArgument, format, a...)
}

func HTTPForbidden(format string, a ...any) *Error {
	return newError(http.StatusForbidden, keyPermissionDenied, format, a...)
}

func HTTPNotFound(id string) *Error {
	return newError(http.StatusNotFound, keyEntityNotFound, "The entity with id: %s was not found", id)
}

func HTTPConflict(format string, a ...any) *Error {
	return newError(http.StatusConflict, keyConstraintViolated, format, a...)
}

func HTTPUnprocessable(format string, a ...any) *Error {
	return newError(http.StatusUnprocessableEntity, keyIntegrity, format, a...)
}

func HTTPNotImplemented() *Error {
	return newError(http.StatusNotImplemented, keyUnsupportedResource, "The operation is unsupported")
}

func HTTPServerError(err error) *Error {
	return newError(http.StatusInternalServerError, "framework.exception.ApiDefault", "An unexpected error occurred").WithError(err)
}

// HandleError renders any error as an error envelope, unknown errors
// become 500s.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := log.FromContext(r.Context())

	var apiErr *Error

	if !errors.As(err, &apiErr) {
		apiErr = HTTPServerError(err)
	}

	logID := uuid.NewString()

	if apiErr.status >= http.StatusInternalServerError {
		log.Error(apiErr, "request failed", "logId", logID, "path", r.URL.Path)
	} else {
		log.V(1).Info("request rejected", "logId", logID, "path", r.URL.Path, "error", apiErr.Error())
	}

	response := &openapi.ErrorResponse{
		Error: openapi.Error{
			ErrorKey:       apiErr.key,
			StatusCode:     apiErr.status,
			BriefSummary:   logID + " " + apiErr.summary,
			StackTrace:     stackTraceMessage,
			DescriptionURL: descriptionURL,
			LogID:          logID,
		},
	}

	util.WriteJSONResponse(w, r, apiErr.status, response)
}

// unauthorized is sent by the authentication layer, without a body.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="Alfresco"`)
	w.WriteHeader(http.StatusUnauthorized)
}
