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

package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	// ErrContract is returned when a response body violates the envelope contract.
	ErrContract = errors.New("contract violation")
)

//go:embed envelope.yaml
var envelopeSchema []byte

// Envelope names a component schema in the embedded contract.
type Envelope string

const (
	EntryEnvelope Envelope = "entryEnvelope"
	ListEnvelope  Envelope = "listEnvelope"
	ErrorEnvelope Envelope = "errorEnvelope"
	JobEnvelope   Envelope = "jobEnvelope"
	CMISEnvelope  Envelope = "cmisObjectList"
)

// Validator checks raw response bodies against the pinned envelopes.
type Validator struct {
	doc *openapi3.T
}

// NewValidator loads and validates the embedded contract.
func NewValidator(ctx context.Context) (*Validator, error) {
	doc, err := openapi3.NewLoader().LoadFromData(envelopeSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to load envelope schema: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("envelope schema invalid: %w", err)
	}

	return &Validator{
		doc: doc,
	}, nil
}

// Validate checks the body decodes as JSON and matches the named envelope.
func (v *Validator) Validate(envelope Envelope, body []byte) error {
	ref, ok := v.doc.Components.Schemas[string(envelope)]
	if !ok || ref.Value == nil {
		return fmt.Errorf("%w: unknown envelope %s", ErrContract, envelope)
	}

	var value any

	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("%w: body is not JSON: %w", ErrContract, err)
	}

	if err := ref.Value.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrContract, envelope, err)
	}

	return nil
}
