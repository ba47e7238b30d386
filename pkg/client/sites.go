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
	"net/url"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
)

// Sites is the proxy for collaboration sites.
type Sites struct {
	client *Client
}

func (c *Client) Sites() *Sites {
	return &Sites{client: c}
}

func (s *Sites) Create(ctx context.Context, body *openapi.SiteBodyCreate) (*openapi.Site, error) {
	return CreateEntry[openapi.Site](ctx, s.client, At(ResourceSites), nil, body)
}

func (s *Sites) Get(ctx context.Context, siteID string) (*openapi.Site, error) {
	return GetEntry[openapi.Site](ctx, s.client, At(ResourceSite, siteID), nil)
}

func (s *Sites) List(ctx context.Context, params *Params) (*ListResponse[openapi.Site], error) {
	return GetList[openapi.Site](ctx, s.client, At(ResourceSites), params)
}

// Delete removes a site, permanently bypasses the trashcan.
func (s *Sites) Delete(ctx context.Context, siteID string, permanent bool) error {
	var params *Params

	if permanent {
		params = &Params{
			Extra: url.Values{"permanent": []string{"true"}},
		}
	}

	return Delete(ctx, s.client, At(ResourceSite, siteID), params)
}

func (s *Sites) Containers(ctx context.Context, siteID string, params *Params) (*ListResponse[openapi.SiteContainer], error) {
	return GetList[openapi.SiteContainer](ctx, s.client, At(ResourceSiteContainers, siteID), params)
}

func (s *Sites) Container(ctx context.Context, siteID, containerID string) (*openapi.SiteContainer, error) {
	return GetEntry[openapi.SiteContainer](ctx, s.client, At(ResourceSiteContainer, siteID, containerID), nil)
}
