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
	"context"
	"net/http"
)

// Raw issues arbitrary calls against the route table, for tests that probe
// the server with methods or bodies the typed proxies will not send.
type Raw struct {
	client *Client
}

func (c *Client) Raw() *Raw {
	return &Raw{client: c}
}

// Call performs a request expecting the given status.  Expecting an error
// status also checks the error envelope.
func (r *Raw) Call(ctx context.Context, method string, target Target, params *Params, body any, expected int) (*Response, error) {
	return r.client.Do(ctx, &Request{
		Method:   method,
		Target:   target,
		Params:   params,
		Body:     body,
		Expected: expected,
	})
}

func (r *Raw) Get(ctx context.Context, target Target, params *Params, expected int) (*Response, error) {
	return r.Call(ctx, http.MethodGet, target, params, nil, expected)
}

func (r *Raw) Post(ctx context.Context, target Target, params *Params, body any, expected int) (*Response, error) {
	return r.Call(ctx, http.MethodPost, target, params, body, expected)
}

func (r *Raw) Put(ctx context.Context, target Target, params *Params, body any, expected int) (*Response, error) {
	return r.Call(ctx, http.MethodPut, target, params, body, expected)
}

func (r *Raw) Delete(ctx context.Context, target Target, params *Params, expected int) (*Response, error) {
	return r.Call(ctx, http.MethodDelete, target, params, nil, expected)
}
