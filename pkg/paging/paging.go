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

// Package paging models the skipCount/maxItems protocol shared by every
// collection of the public API, and verifies pages against a known dataset.
package paging

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"

	"k8s.io/utils/ptr"
)

const (
	DefaultSkipCount = 0
	DefaultMaxItems  = 100

	// DefaultCMISMaxItems is the browser binding default.
	DefaultCMISMaxItems = 200
)

var (
	// ErrPagingMismatch is wrapped by every pagination field failure.
	ErrPagingMismatch = errors.New("paging mismatch")
)

// Request is a paging request.  Unset fields are omitted from the query
// and the server applies its defaults.
type Request struct {
	SkipCount *int
	MaxItems  *int
}

// New returns a fully specified request.
func New(skipCount, maxItems int) *Request {
	return &Request{
		SkipCount: ptr.To(skipCount),
		MaxItems:  ptr.To(maxItems),
	}
}

// Values renders the query parameters, a nil request renders nothing.
func (r *Request) Values() url.Values {
	values := url.Values{}

	if r == nil {
		return values
	}

	if r.SkipCount != nil {
		values.Set("skipCount", strconv.Itoa(*r.SkipCount))
	}

	if r.MaxItems != nil {
		values.Set("maxItems", strconv.Itoa(*r.MaxItems))
	}

	return values
}

// Resolve returns the effective values after defaulting.
func (r *Request) Resolve() (int, int) {
	return r.ResolveWithDefault(DefaultMaxItems)
}

// ResolveWithDefault is like Resolve for collections with another page size.
func (r *Request) ResolveWithDefault(defaultMaxItems int) (int, int) {
	skipCount := DefaultSkipCount
	maxItems := defaultMaxItems

	if r != nil && r.SkipCount != nil {
		skipCount = *r.SkipCount
	}

	if r != nil && r.MaxItems != nil {
		maxItems = *r.MaxItems
	}

	return skipCount, maxItems
}

// Next returns the request for the following page.
func (r *Request) Next(count int) *Request {
	skipCount, maxItems := r.Resolve()

	return New(skipCount+count, maxItems)
}

func (r *Request) String() string {
	skipCount, maxItems := r.Resolve()

	return fmt.Sprintf("skipCount=%d maxItems=%d", skipCount, maxItems)
}

// Expected computes the pagination a server should return for a dataset of
// the given size.  reportTotal controls whether totalItems is expected,
// collections opt in via include=totalItems or always return it.
func Expected(r *Request, total int, reportTotal bool) openapi.Pagination {
	skipCount, maxItems := r.Resolve()

	count := maxItems
	end := skipCount + maxItems

	// A negative end means skipCount+maxItems overflowed.
	if end < 0 || end > total {
		count = total - skipCount
		end = total
	}

	if count < 0 {
		count = 0
	}

	p := openapi.Pagination{
		Count:        count,
		HasMoreItems: end < total,
		SkipCount:    skipCount,
		MaxItems:     maxItems,
	}

	if reportTotal {
		p.TotalItems = ptr.To(total)
	}

	return p
}

// Window returns the slice of the dataset a page should contain.  Negative
// values are clamped to zero rather than slicing out of range.
func Window[T any](dataset []T, r *Request) []T {
	skipCount, maxItems := r.Resolve()

	skipCount = max(skipCount, 0)
	maxItems = max(maxItems, 0)

	if skipCount >= len(dataset) {
		return []T{}
	}

	end := len(dataset)

	if maxItems < end-skipCount {
		end = skipCount + maxItems
	}

	return dataset[skipCount:end]
}

// Check compares every pagination field and reports all that differ.
func Check(expected, actual openapi.Pagination) error {
	var errs []error

	if expected.Count != actual.Count {
		errs = append(errs, fmt.Errorf("%w: count expected %d, got %d", ErrPagingMismatch, expected.Count, actual.Count))
	}

	if expected.HasMoreItems != actual.HasMoreItems {
		errs = append(errs, fmt.Errorf("%w: hasMoreItems expected %t, got %t", ErrPagingMismatch, expected.HasMoreItems, actual.HasMoreItems))
	}

	if expected.SkipCount != actual.SkipCount {
		errs = append(errs, fmt.Errorf("%w: skipCount expected %d, got %d", ErrPagingMismatch, expected.SkipCount, actual.SkipCount))
	}

	if expected.MaxItems != actual.MaxItems {
		errs = append(errs, fmt.Errorf("%w: maxItems expected %d, got %d", ErrPagingMismatch, expected.MaxItems, actual.MaxItems))
	}

	if expected.TotalItems != nil {
		switch {
		case actual.TotalItems == nil:
			errs = append(errs, fmt.Errorf("%w: totalItems expected %d, got none", ErrPagingMismatch, *expected.TotalItems))
		case *expected.TotalItems != *actual.TotalItems:
			errs = append(errs, fmt.Errorf("%w: totalItems expected %d, got %d", ErrPagingMismatch, *expected.TotalItems, *actual.TotalItems))
		}
	}

	return errors.Join(errs...)
}

// CheckConsistency verifies a page agrees with itself, when the dataset is
// not known to the caller.
func CheckConsistency(p openapi.Pagination, n int) error {
	var errs []error

	if p.Count != n {
		errs = append(errs, fmt.Errorf("%w: count %d does not match %d entries", ErrPagingMismatch, p.Count, n))
	}

	if p.Count > p.MaxItems {
		errs = append(errs, fmt.Errorf("%w: count %d exceeds maxItems %d", ErrPagingMismatch, p.Count, p.MaxItems))
	}

	if p.TotalItems != nil {
		if more := p.SkipCount+p.Count < *p.TotalItems; more != p.HasMoreItems {
			errs = append(errs, fmt.Errorf("%w: hasMoreItems %t inconsistent with %s", ErrPagingMismatch, p.HasMoreItems, p))
		}
	}

	return errors.Join(errs...)
}

// Comparable is an entity that can check itself against a decoded one.
type Comparable[T any] interface {
	openapi.ExpectedComparison[T]
}

// Verify checks a page against the full dataset it was taken from, the
// dataset being in the server's declared order.
func Verify[T Comparable[T]](dataset []T, r *Request, actualPaging openapi.Pagination, actual []T) error {
	errs := []error{
		Check(Expected(r, len(dataset), actualPaging.TotalItems != nil), actualPaging),
		CheckConsistency(actualPaging, len(actual)),
	}

	window := Window(dataset, r)

	if len(window) != len(actual) {
		errs = append(errs, fmt.Errorf("%w: expected %d entries, got %d", ErrPagingMismatch, len(window), len(actual)))
	}

	for i := range min(len(window), len(actual)) {
		if err := window[i].Expected(actual[i]); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}
