/*
Copyright 2024-2025 the Unikorn Authors.
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

// Package client drives the content repository's public REST API and CMIS
// browser binding on behalf of a single test.
package client

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/content-harness/pkg/where"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Options configure a client.
type Options struct {
	// BaseURL is the server root, e.g. http://localhost:8080.
	BaseURL string

	// RequestTimeout bounds each call when the default transport is used.
	RequestTimeout time.Duration

	// LogRequests logs every request line at V(1).
	LogRequests bool

	// LogResponses logs every response body at V(2).
	LogResponses bool

	// ValidateResponses checks every body against the envelope contract.
	ValidateResponses bool

	// PollInterval and PollTimeout control asynchronous job polling.
	PollInterval time.Duration
	PollTimeout  time.Duration
}

const (
	defaultRequestTimeout = 30 * time.Second
	defaultPollInterval   = time.Second
	defaultPollTimeout    = 2 * time.Minute
)

// RequestContext is the identity requests are made as.
type RequestContext struct {
	// Network is the tenant, empty selects the default network.
	Network string

	// UserID and Password are sent as basic auth, an empty user means
	// the request is anonymous.
	UserID   string
	Password string
}

// Client is not safe for concurrent use, each test owns its own.
type Client struct {
	options        Options
	doer           HTTPDoer
	validator      *openapi.Validator
	requestContext RequestContext
}

// New creates a client, a nil doer selects an http.Client with the
// configured timeout.
func New(ctx context.Context, options Options, doer HTTPDoer) (*Client, error) {
	if options.RequestTimeout == 0 {
		options.RequestTimeout = defaultRequestTimeout
	}

	if options.PollInterval == 0 {
		options.PollInterval = defaultPollInterval
	}

	if options.PollTimeout == 0 {
		options.PollTimeout = defaultPollTimeout
	}

	options.BaseURL = strings.TrimSuffix(options.BaseURL, "/")

	if doer == nil {
		doer = &http.Client{
			Timeout: options.RequestTimeout,
		}
	}

	c := &Client{
		options: options,
		doer:    doer,
	}

	if options.ValidateResponses {
		validator, err := openapi.NewValidator(ctx)
		if err != nil {
			return nil, err
		}

		c.validator = validator
	}

	return c, nil
}

// SetRequestContext makes subsequent calls as the given identity.
func (c *Client) SetRequestContext(rc RequestContext) {
	c.requestContext = rc
}

// RequestContext returns the current identity.
func (c *Client) RequestContext() RequestContext {
	return c.requestContext
}

// ClearRequestContext reverts to anonymous calls on the default network.
func (c *Client) ClearRequestContext() {
	c.requestContext = RequestContext{}
}

// Endpoints returns the route table for the current network.
func (c *Client) Endpoints() *Endpoints {
	return NewEndpoints(c.requestContext.Network)
}

// Params are the query parameters common to collection and entity calls.
type Params struct {
	Paging  *paging.Request
	Where   where.Expr
	Include []string
	Fields  []string
	OrderBy []string

	// Extra carries resource specific parameters such as autoRename.
	Extra url.Values
}

// Values renders the parameters, nil renders nothing.
func (p *Params) Values() url.Values {
	if p == nil {
		return url.Values{}
	}

	values := p.Paging.Values()

	if p.Where != nil {
		values.Set("where", where.String(p.Where))
	}

	if len(p.Include) != 0 {
		values.Set("include", strings.Join(p.Include, ","))
	}

	if len(p.Fields) != 0 {
		values.Set("fields", strings.Join(p.Fields, ","))
	}

	if len(p.OrderBy) != 0 {
		values.Set("orderBy", strings.Join(p.OrderBy, ","))
	}

	for k, v := range p.Extra {
		values[k] = append(values[k], v...)
	}

	return values
}

// Request is a single call.
type Request struct {
	Method string
	Target Target
	Params *Params

	// Body is sent raw if []byte, otherwise encoded as JSON.
	Body any

	// ContentType overrides the body content type.
	ContentType string

	// Expected is the status that indicates success, 0 accepts anything.
	Expected int

	// Envelope, when set, is checked against the contract on success.
	Envelope openapi.Envelope
}

// Response is the result of a call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string

	// Error is the decoded error envelope of an expected error status.
	Error *openapi.ErrorResponse
}

// generateTraceID creates a new W3C trace ID so a failed request can be
// found in the server logs.
func generateTraceID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)

	return hex.EncodeToString(b)
}

func generateSpanID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)

	return hex.EncodeToString(b)
}

func encodeBody(body any, contentType string) (io.Reader, string, error) {
	switch t := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		return bytes.NewReader(t), contentType, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling request body: %w", err)
	}

	if contentType == "" {
		contentType = "application/json"
	}

	return bytes.NewReader(data), contentType, nil
}

// Do issues a request.  A status other than the expected one returns a
// *StatusError, when an error status is expected its body must be a well
// formed error envelope.
//
//nolint:cyclop
func (c *Client) Do(ctx context.Context, r *Request) (*Response, error) {
	log := log.FromContext(ctx)

	path, err := c.Endpoints().Path(r.Target.Resource, r.Target.IDs...)
	if err != nil {
		return nil, err
	}

	if query := r.Params.Values(); len(query) != 0 {
		path += "?" + query.Encode()
	}

	body, contentType, err := encodeBody(r.Body, r.ContentType)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.options.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceID := generateTraceID()

	req.Header.Set("Traceparent", fmt.Sprintf("00-%s-%s-01", traceID, generateSpanID()))
	req.Header.Set("Tracestate", "test-automation=content-harness")
	req.Header.Set("Accept", "application/json")

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.requestContext.UserID != "" {
		req.SetBasicAuth(c.requestContext.UserID, c.requestContext.Password)
	}

	start := time.Now()

	resp, err := c.doer.Do(req)
	if err != nil {
		log.Info("http request failed", "method", r.Method, "path", path, "duration", time.Since(start), "traceID", traceID, "error", err)
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	duration := time.Since(start)

	if c.options.LogRequests {
		log.V(1).Info("request", "method", r.Method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", traceID, "user", c.requestContext.UserID)
	}

	if c.options.LogResponses && len(respBody) > 0 {
		log.V(2).Info("response", "method", r.Method, "path", path, "body", string(respBody))
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    traceID,
	}

	var (
		errorResponse *openapi.ErrorResponse
		envelopeErr   error
	)

	// The CMIS binding reports errors in its own exception format.
	if routes[r.Target.Resource].binding != bindingCMIS {
		errorResponse, envelopeErr = decodeErrorEnvelope(c.validator, resp.StatusCode, respBody)
	}

	if r.Expected > 0 && resp.StatusCode != r.Expected {
		log.Info("unexpected status", "method", r.Method, "path", path, "expected", r.Expected, "status", resp.StatusCode, "traceID", traceID, "body", string(respBody))

		return response, &StatusError{
			Method:      r.Method,
			Path:        path,
			Expected:    r.Expected,
			Actual:      resp.StatusCode,
			TraceID:     traceID,
			Body:        respBody,
			Response:    errorResponse,
			EnvelopeErr: envelopeErr,
		}
	}

	if envelopeErr != nil {
		return response, fmt.Errorf("%s %s (trace ID: %s): %w", r.Method, path, traceID, envelopeErr)
	}

	response.Error = errorResponse

	if c.validator != nil && r.Envelope != "" && resp.StatusCode < http.StatusBadRequest {
		if err := c.validator.Validate(r.Envelope, respBody); err != nil {
			return response, fmt.Errorf("%s %s (trace ID: %s): %w", r.Method, path, traceID, err)
		}
	}

	return response, nil
}

func decode[T any](response *Response) (*T, error) {
	var out T

	if err := json.Unmarshal(response.Body, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling response (trace ID: %s): %w", response.TraceID, err)
	}

	return &out, nil
}

// ListResponse is a decoded page.
type ListResponse[T any] struct {
	List   []T
	Paging openapi.Pagination
}

func entry[T any](ctx context.Context, c *Client, method string, target Target, params *Params, body any, expected int) (*T, error) {
	response, err := c.Do(ctx, &Request{
		Method:   method,
		Target:   target,
		Params:   params,
		Body:     body,
		Expected: expected,
		Envelope: openapi.EntryEnvelope,
	})
	if err != nil {
		return nil, err
	}

	e, err := decode[openapi.Entry[T]](response)
	if err != nil {
		return nil, err
	}

	return &e.Entry, nil
}

// GetEntry reads a single entity.
func GetEntry[T any](ctx context.Context, c *Client, target Target, params *Params) (*T, error) {
	return entry[T](ctx, c, http.MethodGet, target, params, nil, http.StatusOK)
}

// CreateEntry posts a new entity.
func CreateEntry[T any](ctx context.Context, c *Client, target Target, params *Params, body any) (*T, error) {
	return entry[T](ctx, c, http.MethodPost, target, params, body, http.StatusCreated)
}

// UpdateEntry updates an entity in place.
func UpdateEntry[T any](ctx context.Context, c *Client, target Target, params *Params, body any) (*T, error) {
	return entry[T](ctx, c, http.MethodPut, target, params, body, http.StatusOK)
}

// GetList reads a page of a collection.
func GetList[T any](ctx context.Context, c *Client, target Target, params *Params) (*ListResponse[T], error) {
	response, err := c.Do(ctx, &Request{
		Method:   http.MethodGet,
		Target:   target,
		Params:   params,
		Expected: http.StatusOK,
		Envelope: openapi.ListEnvelope,
	})
	if err != nil {
		return nil, err
	}

	l, err := decode[openapi.List[T]](response)
	if err != nil {
		return nil, err
	}

	return &ListResponse[T]{
		List:   l.Items(),
		Paging: l.List.Pagination,
	}, nil
}

// Delete removes an entity.
func Delete(ctx context.Context, c *Client, target Target, params *Params) error {
	_, err := c.Do(ctx, &Request{
		Method:   http.MethodDelete,
		Target:   target,
		Params:   params,
		Expected: http.StatusNoContent,
	})

	return err
}
