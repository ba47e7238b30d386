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
	"net/url"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
)

// CMIS is the proxy for the CMIS 1.1 browser binding.  Objects are
// addressed by id through the root selector.
type CMIS struct {
	client *Client
}

func (c *Client) CMIS() *CMIS {
	return &CMIS{client: c}
}

func (c *CMIS) get(ctx context.Context, query url.Values, envelope openapi.Envelope) (*Response, error) {
	return c.client.Do(ctx, &Request{
		Method: http.MethodGet,
		Target: At(ResourceCMISRoot),
		Params: &Params{
			Extra: query,
		},
		Expected: http.StatusOK,
		Envelope: envelope,
	})
}

// Object reads a single object's properties.
func (c *CMIS) Object(ctx context.Context, objectID string) (*openapi.CMISObject, error) {
	response, err := c.get(ctx, url.Values{
		"objectId":     []string{objectID},
		"cmisselector": []string{"object"},
		"succinct":     []string{"false"},
	}, "")
	if err != nil {
		return nil, err
	}

	return decode[openapi.CMISObject](response)
}

// Children reads a page of a folder's children, the binding's own paging
// fields are mapped onto the public API descriptor so both can be verified
// the same way.
func (c *CMIS) Children(ctx context.Context, folderID string, request *paging.Request) (*ListResponse[openapi.CMISObject], error) {
	query := request.Values()
	query.Set("objectId", folderID)
	query.Set("cmisselector", "children")
	query.Set("succinct", "false")

	response, err := c.get(ctx, query, openapi.CMISEnvelope)
	if err != nil {
		return nil, err
	}

	l, err := decode[openapi.CMISObjectList](response)
	if err != nil {
		return nil, err
	}

	skipCount, maxItems := request.ResolveWithDefault(paging.DefaultCMISMaxItems)

	out := &ListResponse[openapi.CMISObject]{
		List: make([]openapi.CMISObject, len(l.Objects)),
		Paging: openapi.Pagination{
			Count:        len(l.Objects),
			HasMoreItems: l.HasMoreItems,
			TotalItems:   l.NumItems,
			SkipCount:    skipCount,
			MaxItems:     maxItems,
		},
	}

	for i := range l.Objects {
		out.List[i] = l.Objects[i].Object
	}

	return out, nil
}
