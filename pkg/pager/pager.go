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

// Package pager walks a collection page by page checking the server's
// pagination holds together across the whole walk.
package pager

import (
	"context"
	"errors"
	"fmt"

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrInconsistent = errors.New("inconsistent paging")
	ErrOptions      = errors.New("invalid options")
)

// Options select what to walk.
type Options struct {
	// NodeID is the folder whose children are walked.
	NodeID string

	// PageSize is the maxItems of every request.
	PageSize int

	// CMIS walks the browser binding rather than the public API.
	CMIS bool

	// MaxPages stops a walk that never terminates, 0 means no limit.
	MaxPages int
}

// Summary describes a completed walk.
type Summary struct {
	Pages int
	Items int
	// TotalItems is what the first page reported, if anything.
	TotalItems *int
}

// page is one response reduced to what the walk checks.
type page struct {
	ids        []string
	pagination openapi.Pagination
}

type fetcher func(ctx context.Context, request *paging.Request) (*page, error)

func nodeFetcher(c *client.Client, nodeID string) fetcher {
	return func(ctx context.Context, request *paging.Request) (*page, error) {
		result, err := c.Nodes().Children(ctx, nodeID, &client.Params{Paging: request})
		if err != nil {
			return nil, err
		}

		ids := make([]string, len(result.List))

		for i := range result.List {
			ids[i] = result.List[i].ID
		}

		return &page{ids: ids, pagination: result.Paging}, nil
	}
}

func cmisFetcher(c *client.Client, nodeID string) fetcher {
	return func(ctx context.Context, request *paging.Request) (*page, error) {
		result, err := c.CMIS().Children(ctx, nodeID, request)
		if err != nil {
			return nil, err
		}

		ids := make([]string, len(result.List))

		for i := range result.List {
			ids[i] = result.List[i].ObjectID()
		}

		return &page{ids: ids, pagination: result.Paging}, nil
	}
}

// Walk requests every page of the collection.  Each page must be self
// consistent and agree with the total the first page reported, no item may
// be returned twice, and the pages must add up to the total.
func Walk(ctx context.Context, c *client.Client, options Options) (*Summary, error) {
	log := log.FromContext(ctx)

	if options.NodeID == "" || options.PageSize < 1 {
		return nil, fmt.Errorf("%w: a node and a positive page size are required", ErrOptions)
	}

	fetch := nodeFetcher(c, options.NodeID)
	if options.CMIS {
		fetch = cmisFetcher(c, options.NodeID)
	}

	summary := &Summary{}

	seen := map[string]int{}

	request := paging.New(0, options.PageSize)

	for {
		if options.MaxPages > 0 && summary.Pages >= options.MaxPages {
			return summary, fmt.Errorf("%w: no final page after %d pages", ErrInconsistent, summary.Pages)
		}

		result, err := fetch(ctx, request)
		if err != nil {
			return summary, fmt.Errorf("page %d (%s): %w", summary.Pages, request, err)
		}

		p := result.pagination

		log.V(1).Info("page", "request", request.String(), "pagination", p.String())

		if summary.Pages == 0 {
			summary.TotalItems = p.TotalItems
		}

		errs := []error{
			paging.CheckConsistency(p, len(result.ids)),
		}

		if summary.TotalItems != nil {
			errs = append(errs, paging.Check(paging.Expected(request, *summary.TotalItems, p.TotalItems != nil), p))
		}

		for i, id := range result.ids {
			if previous, ok := seen[id]; ok {
				errs = append(errs, fmt.Errorf("%w: item %s at offset %d already seen at offset %d", ErrInconsistent, id, summary.Items+i, previous))
			}

			seen[id] = summary.Items + i
		}

		summary.Pages++
		summary.Items += len(result.ids)

		if err := errors.Join(errs...); err != nil {
			return summary, fmt.Errorf("page %d (%s): %w", summary.Pages-1, request, err)
		}

		if !p.HasMoreItems {
			break
		}

		if p.Count == 0 {
			return summary, fmt.Errorf("%w: empty page claims more items at %s", ErrInconsistent, request)
		}

		request = request.Next(p.Count)
	}

	if summary.TotalItems != nil && summary.Items != *summary.TotalItems {
		return summary, fmt.Errorf("%w: pages returned %d items, totalItems is %d", ErrInconsistent, summary.Items, *summary.TotalItems)
	}

	log.Info("walk complete", "pages", summary.Pages, "items", summary.Items)

	return summary, nil
}
