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

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
)

var (
	// ErrUnexpectedStatus is wrapped by StatusError.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrErrorEnvelope is returned when an error response does not carry
	// a well formed error body.
	ErrErrorEnvelope = errors.New("malformed error response")

	// ErrJobTimeout is returned when an asynchronous job fails to complete.
	ErrJobTimeout = errors.New("job did not complete")

	errJobPending = errors.New("job pending")
)

// StatusError is returned whenever the server answers with a status other
// than the one expected.
type StatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	TraceID  string
	Body     []byte

	// Response is the decoded error envelope, if there was one.
	Response *openapi.ErrorResponse

	// EnvelopeErr records why an error status had no usable error body.
	EnvelopeErr error
}

func (e *StatusError) Error() string {
	summary := string(e.Body)

	if e.Response != nil {
		summary = e.Response.Error.BriefSummary
	}

	return fmt.Sprintf("%s %s: %s: expected %d, got %d: %s (trace ID: %s)", e.Method, e.Path, ErrUnexpectedStatus, e.Expected, e.Actual, summary, e.TraceID)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// StatusCode returns the status of a failed request, or 0 if the error is
// not a status error.
func StatusCode(err error) int {
	var serr *StatusError

	if errors.As(err, &serr) {
		return serr.Actual
	}

	return 0
}

// AsStatusError unwraps a status error.
func AsStatusError(err error) (*StatusError, bool) {
	var serr *StatusError

	ok := errors.As(err, &serr)

	return serr, ok
}

// decodeErrorEnvelope checks an error response body: it must decode as an
// error envelope whose statusCode matches the HTTP status.  401s are
// generated by the authentication layer and carry no body.
func decodeErrorEnvelope(validator *openapi.Validator, status int, body []byte) (*openapi.ErrorResponse, error) {
	if status < http.StatusBadRequest || status == http.StatusUnauthorized {
		return nil, nil
	}

	if validator != nil {
		if err := validator.Validate(openapi.ErrorEnvelope, body); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrErrorEnvelope, err)
		}
	}

	var response openapi.ErrorResponse

	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrErrorEnvelope, err)
	}

	if response.Error.StatusCode != status {
		return &response, fmt.Errorf("%w: statusCode %d does not match %d", ErrErrorEnvelope, response.Error.StatusCode, status)
	}

	if response.Error.BriefSummary == "" {
		return &response, fmt.Errorf("%w: briefSummary is empty", ErrErrorEnvelope)
	}

	return &response, nil
}
