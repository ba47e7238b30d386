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
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Well known node aliases.
const (
	NodeRoot = "-root-"
	NodeMy   = "-my-"
)

// Nodes is the proxy for folders and documents.
type Nodes struct {
	client *Client
}

func (c *Client) Nodes() *Nodes {
	return &Nodes{client: c}
}

func (n *Nodes) Get(ctx context.Context, nodeID string, params *Params) (*openapi.Node, error) {
	return GetEntry[openapi.Node](ctx, n.client, At(ResourceNode, nodeID), params)
}

func (n *Nodes) Children(ctx context.Context, nodeID string, params *Params) (*ListResponse[openapi.Node], error) {
	return GetList[openapi.Node](ctx, n.client, At(ResourceNodeChildren, nodeID), params)
}

// CreateOptions are the query options for node creation.
type CreateOptions struct {
	// AutoRename resolves name clashes instead of failing with 409.
	AutoRename bool
}

func (n *Nodes) Create(ctx context.Context, parentID string, body *openapi.NodeBodyCreate, options *CreateOptions) (*openapi.Node, error) {
	var params *Params

	if options != nil && options.AutoRename {
		params = &Params{
			Extra: url.Values{"autoRename": []string{"true"}},
		}
	}

	return CreateEntry[openapi.Node](ctx, n.client, At(ResourceNodeChildren, parentID), params, body)
}

func (n *Nodes) Update(ctx context.Context, nodeID string, body *openapi.NodeBodyUpdate) (*openapi.Node, error) {
	return UpdateEntry[openapi.Node](ctx, n.client, At(ResourceNode, nodeID), nil, body)
}

// Delete removes a node, permanently bypasses the trashcan.
func (n *Nodes) Delete(ctx context.Context, nodeID string, permanent bool) error {
	var params *Params

	if permanent {
		params = &Params{
			Extra: url.Values{"permanent": []string{"true"}},
		}
	}

	return Delete(ctx, n.client, At(ResourceNode, nodeID), params)
}

// ContentOptions are the query options for content upload.
type ContentOptions struct {
	// MajorVersion bumps the major version rather than the minor.
	MajorVersion bool

	// Comment is recorded against the new version.
	Comment string
}

// UpdateContent replaces a document's content, creating a new version.
func (n *Nodes) UpdateContent(ctx context.Context, nodeID string, content []byte, mimeType string, options *ContentOptions) (*openapi.Node, error) {
	params := &Params{
		Extra: url.Values{},
	}

	if options != nil {
		if options.MajorVersion {
			params.Extra.Set("majorVersion", "true")
		}

		if options.Comment != "" {
			params.Extra.Set("comment", options.Comment)
		}
	}

	response, err := n.client.Do(ctx, &Request{
		Method:      http.MethodPut,
		Target:      At(ResourceNodeContent, nodeID),
		Params:      params,
		Body:        content,
		ContentType: mimeType,
		Expected:    http.StatusOK,
		Envelope:    openapi.EntryEnvelope,
	})
	if err != nil {
		return nil, err
	}

	e, err := decode[openapi.Entry[openapi.Node]](response)
	if err != nil {
		return nil, err
	}

	return &e.Entry, nil
}

func (n *Nodes) content(ctx context.Context, target Target) ([]byte, error) {
	response, err := n.client.Do(ctx, &Request{
		Method:   http.MethodGet,
		Target:   target,
		Expected: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}

	return response.Body, nil
}

// Content downloads a document's current content.
func (n *Nodes) Content(ctx context.Context, nodeID string) ([]byte, error) {
	return n.content(ctx, At(ResourceNodeContent, nodeID))
}

func (n *Nodes) Versions(ctx context.Context, nodeID string, params *Params) (*ListResponse[openapi.Version], error) {
	return GetList[openapi.Version](ctx, n.client, At(ResourceNodeVersions, nodeID), params)
}

func (n *Nodes) Version(ctx context.Context, nodeID, versionID string) (*openapi.Version, error) {
	return GetEntry[openapi.Version](ctx, n.client, At(ResourceNodeVersion, nodeID, versionID), nil)
}

func (n *Nodes) VersionContent(ctx context.Context, nodeID, versionID string) ([]byte, error) {
	return n.content(ctx, At(ResourceNodeVersionContent, nodeID, versionID))
}

func (n *Nodes) Renditions(ctx context.Context, nodeID string, params *Params) (*ListResponse[openapi.Rendition], error) {
	return GetList[openapi.Rendition](ctx, n.client, At(ResourceNodeRenditions, nodeID), params)
}

func (n *Nodes) Rendition(ctx context.Context, nodeID, renditionID string) (*openapi.Rendition, error) {
	return GetEntry[openapi.Rendition](ctx, n.client, At(ResourceNodeRendition, nodeID, renditionID), nil)
}

// CreateRendition requests asynchronous generation of a rendition.
func (n *Nodes) CreateRendition(ctx context.Context, nodeID, renditionID string) error {
	_, err := n.client.Do(ctx, &Request{
		Method:   http.MethodPost,
		Target:   At(ResourceNodeRenditions, nodeID),
		Body:     &openapi.RenditionBodyCreate{ID: renditionID},
		Expected: http.StatusAccepted,
	})

	return err
}

func (n *Nodes) RenditionContent(ctx context.Context, nodeID, renditionID string) ([]byte, error) {
	return n.content(ctx, At(ResourceNodeRenditionContent, nodeID, renditionID))
}

func (n *Nodes) Ratings(ctx context.Context, nodeID string, params *Params) (*ListResponse[openapi.Rating], error) {
	return GetList[openapi.Rating](ctx, n.client, At(ResourceNodeRatings, nodeID), params)
}

func (n *Nodes) Rating(ctx context.Context, nodeID, scheme string) (*openapi.Rating, error) {
	return GetEntry[openapi.Rating](ctx, n.client, At(ResourceNodeRating, nodeID, scheme), nil)
}

// Rate adds or replaces the caller's rating in a scheme.
func (n *Nodes) Rate(ctx context.Context, nodeID string, body *openapi.RatingBody) (*openapi.Rating, error) {
	return CreateEntry[openapi.Rating](ctx, n.client, At(ResourceNodeRatings, nodeID), nil, body)
}

// Unrate removes the caller's rating in a scheme.
func (n *Nodes) Unrate(ctx context.Context, nodeID, scheme string) error {
	return Delete(ctx, n.client, At(ResourceNodeRating, nodeID, scheme), nil)
}

// Comments lists a node's comments, newest first.
func (n *Nodes) Comments(ctx context.Context, nodeID string, params *Params) (*ListResponse[openapi.Comment], error) {
	return GetList[openapi.Comment](ctx, n.client, At(ResourceNodeComments, nodeID), params)
}

func (n *Nodes) AddComment(ctx context.Context, nodeID string, body *openapi.CommentBody) (*openapi.Comment, error) {
	return CreateEntry[openapi.Comment](ctx, n.client, At(ResourceNodeComments, nodeID), nil, body)
}

// UpdateComment replaces a comment's content, only its author may.
func (n *Nodes) UpdateComment(ctx context.Context, nodeID, commentID string, body *openapi.CommentBody) (*openapi.Comment, error) {
	return UpdateEntry[openapi.Comment](ctx, n.client, At(ResourceNodeComment, nodeID, commentID), nil, body)
}

func (n *Nodes) DeleteComment(ctx context.Context, nodeID, commentID string) error {
	return Delete(ctx, n.client, At(ResourceNodeComment, nodeID, commentID), nil)
}

// RequestSizeDetails starts a folder size calculation.
func (n *Nodes) RequestSizeDetails(ctx context.Context, nodeID string) (*openapi.SizeDetailsJob, error) {
	response, err := n.client.Do(ctx, &Request{
		Method:   http.MethodPost,
		Target:   At(ResourceNodeSizeDetails, nodeID),
		Expected: http.StatusAccepted,
		Envelope: openapi.JobEnvelope,
	})
	if err != nil {
		return nil, err
	}

	e, err := decode[openapi.Entry[openapi.SizeDetailsJob]](response)
	if err != nil {
		return nil, err
	}

	return &e.Entry, nil
}

// SizeDetails reads the state of a size calculation.
func (n *Nodes) SizeDetails(ctx context.Context, nodeID, jobID string) (*openapi.SizeDetails, error) {
	return GetEntry[openapi.SizeDetails](ctx, n.client, At(ResourceNodeSizeDetailsJob, nodeID, jobID), nil)
}

// AwaitSizeDetails polls a size calculation until it completes.  Request
// failures are not retried, only a pending status is.
func (n *Nodes) AwaitSizeDetails(ctx context.Context, nodeID, jobID string) (*openapi.SizeDetails, error) {
	log := log.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, n.client.options.PollTimeout)
	defer cancel()

	var result *openapi.SizeDetails

	attempts := 0

	operation := func() error {
		attempts++

		details, err := n.SizeDetails(ctx, nodeID, jobID)
		if err != nil {
			return backoff.Permanent(err)
		}

		if !details.Terminal() {
			log.V(1).Info("size calculation pending", "nodeID", nodeID, "jobID", jobID, "status", details.Status, "attempt", attempts)

			return errJobPending
		}

		result = details

		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(backoff.NewConstantBackOff(n.client.options.PollInterval), ctx)); err != nil {
		if errors.Is(err, errJobPending) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: size details %s of node %s after %d attempts", ErrJobTimeout, jobID, nodeID, attempts)
		}

		return nil, err
	}

	return result, nil
}
