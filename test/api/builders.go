/*
Copyright 2024-2025 the Unikorn Authors.

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

package api

import (
	"fmt"
	"maps"
	"strings"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"

	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/utils/ptr"
)

func generateRandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, rand.String(8))
}

// GenerateTestID returns a name no other test run will use.
func GenerateTestID() string {
	return generateRandomName("test")
}

// NodePayloadBuilder builds node creation payloads.
type NodePayloadBuilder struct {
	payload openapi.NodeBodyCreate
}

// NewFolderPayload creates a folder payload with a unique name.
func NewFolderPayload() *NodePayloadBuilder {
	return &NodePayloadBuilder{
		payload: openapi.NodeBodyCreate{
			Name:     generateRandomName("folder"),
			NodeType: openapi.NodeTypeFolder,
		},
	}
}

// NewDocumentPayload creates a document payload with a unique name.
func NewDocumentPayload() *NodePayloadBuilder {
	return &NodePayloadBuilder{
		payload: openapi.NodeBodyCreate{
			Name:     generateRandomName("document") + ".txt",
			NodeType: openapi.NodeTypeContent,
		},
	}
}

// WithName sets the node name.
func (b *NodePayloadBuilder) WithName(name string) *NodePayloadBuilder {
	b.payload.Name = name
	return b
}

// WithNodeType overrides the node type, e.g. to exercise validation.
func (b *NodePayloadBuilder) WithNodeType(nodeType string) *NodePayloadBuilder {
	b.payload.NodeType = nodeType
	return b
}

// WithTitle sets cm:title, adding the titled aspect.
func (b *NodePayloadBuilder) WithTitle(title string) *NodePayloadBuilder {
	return b.WithAspects("cm:titled").WithProperties(map[string]any{
		"cm:title": title,
	})
}

// WithAspects appends aspects.
func (b *NodePayloadBuilder) WithAspects(aspects ...string) *NodePayloadBuilder {
	b.payload.AspectNames = append(b.payload.AspectNames, aspects...)
	return b
}

// WithProperties merges properties.
func (b *NodePayloadBuilder) WithProperties(properties map[string]any) *NodePayloadBuilder {
	if b.payload.Properties == nil {
		b.payload.Properties = map[string]any{}
	}

	maps.Copy(b.payload.Properties, properties)

	return b
}

// Build returns the completed node payload.
func (b *NodePayloadBuilder) Build() *openapi.NodeBodyCreate {
	return &b.payload
}

// Expected is the node the server should return for the payload.
func (b *NodePayloadBuilder) Expected(parentID string) openapi.Node {
	isFolder := b.payload.NodeType == openapi.NodeTypeFolder

	return openapi.Node{
		Name:        b.payload.Name,
		NodeType:    b.payload.NodeType,
		IsFolder:    isFolder,
		IsFile:      !isFolder,
		ParentID:    parentID,
		AspectNames: b.payload.AspectNames,
		Properties:  b.payload.Properties,
	}
}

// SitePayloadBuilder builds site creation payloads.
type SitePayloadBuilder struct {
	payload openapi.SiteBodyCreate
}

// NewSitePayload creates a public site payload with a unique id.
func NewSitePayload() *SitePayloadBuilder {
	id := generateRandomName("site")

	return &SitePayloadBuilder{
		payload: openapi.SiteBodyCreate{
			ID:          id,
			Title:       strings.ToUpper(id[:1]) + id[1:],
			Description: "Created by the integration suites",
			Visibility:  openapi.SiteVisibilityPublic,
		},
	}
}

// WithID sets the site id, pass an empty string to have the server derive
// one from the title.
func (b *SitePayloadBuilder) WithID(id string) *SitePayloadBuilder {
	b.payload.ID = id
	return b
}

// WithTitle sets the site title.
func (b *SitePayloadBuilder) WithTitle(title string) *SitePayloadBuilder {
	b.payload.Title = title
	return b
}

// WithVisibility sets the site visibility.
func (b *SitePayloadBuilder) WithVisibility(visibility string) *SitePayloadBuilder {
	b.payload.Visibility = visibility
	return b
}

// Build returns the completed site payload.
func (b *SitePayloadBuilder) Build() *openapi.SiteBodyCreate {
	return &b.payload
}

// PersonPayloadBuilder builds person creation payloads.
type PersonPayloadBuilder struct {
	payload openapi.PersonBodyCreate
}

// NewPersonPayload creates an enabled person with a unique id.
func NewPersonPayload() *PersonPayloadBuilder {
	id := generateRandomName("user")

	return &PersonPayloadBuilder{
		payload: openapi.PersonBodyCreate{
			ID:        id,
			FirstName: "Test",
			LastName:  id,
			Email:     id + "@example.com",
			Password:  rand.String(16),
			Enabled:   ptr.To(true),
		},
	}
}

// WithID sets the person id.
func (b *PersonPayloadBuilder) WithID(id string) *PersonPayloadBuilder {
	b.payload.ID = id
	return b
}

// WithPassword sets the password.
func (b *PersonPayloadBuilder) WithPassword(password string) *PersonPayloadBuilder {
	b.payload.Password = password
	return b
}

// Build returns the completed person payload.
func (b *PersonPayloadBuilder) Build() *openapi.PersonBodyCreate {
	return &b.payload
}

// Expected is the person the server should return for the payload.
func (b *PersonPayloadBuilder) Expected() openapi.Person {
	return openapi.Person{
		ID:        b.payload.ID,
		FirstName: b.payload.FirstName,
		LastName:  b.payload.LastName,
		Email:     b.payload.Email,
		Enabled:   ptr.Deref(b.payload.Enabled, true),
	}
}
