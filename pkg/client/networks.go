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

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
)

// Networks is the proxy for tenants.
type Networks struct {
	client *Client
}

func (c *Client) Networks() *Networks {
	return &Networks{client: c}
}

// Get returns a network the caller is a member of.
func (n *Networks) Get(ctx context.Context, networkID string) (*openapi.Network, error) {
	return GetEntry[openapi.Network](ctx, n.client, At(ResourceNetwork, networkID), nil)
}

// PersonNetworks lists the networks a person is a member of.
func (n *Networks) PersonNetworks(ctx context.Context, personID string, params *Params) (*ListResponse[openapi.PersonNetwork], error) {
	return GetList[openapi.PersonNetwork](ctx, n.client, At(ResourcePersonNetworks, personID), params)
}

func (n *Networks) PersonNetwork(ctx context.Context, personID, networkID string) (*openapi.PersonNetwork, error) {
	return GetEntry[openapi.PersonNetwork](ctx, n.client, At(ResourcePersonNetwork, personID, networkID), nil)
}
