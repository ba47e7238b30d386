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

// PersonMe aliases the authenticated user.
const PersonMe = "-me-"

// People is the proxy for users of a network.
type People struct {
	client *Client
}

func (c *Client) People() *People {
	return &People{client: c}
}

// Create adds a user to the current network, only administrators may.
func (p *People) Create(ctx context.Context, body *openapi.PersonBodyCreate) (*openapi.Person, error) {
	return CreateEntry[openapi.Person](ctx, p.client, At(ResourcePeople), nil, body)
}

func (p *People) Get(ctx context.Context, personID string) (*openapi.Person, error) {
	return GetEntry[openapi.Person](ctx, p.client, At(ResourcePerson, personID), nil)
}

func (p *People) List(ctx context.Context, params *Params) (*ListResponse[openapi.Person], error) {
	return GetList[openapi.Person](ctx, p.client, At(ResourcePeople), params)
}

// Favourites lists a person's favourite files, folders and sites.  Only
// the person themselves may, anyone else gets a 404.
func (p *People) Favourites(ctx context.Context, personID string, params *Params) (*ListResponse[openapi.Favourite], error) {
	return GetList[openapi.Favourite](ctx, p.client, At(ResourcePersonFavourites, personID), params)
}

func (p *People) Favourite(ctx context.Context, personID, targetGUID string) (*openapi.Favourite, error) {
	return GetEntry[openapi.Favourite](ctx, p.client, At(ResourcePersonFavourite, personID, targetGUID), nil)
}

// AddFavourite marks a target as a favourite, adding an existing favourite
// returns it unchanged.
func (p *People) AddFavourite(ctx context.Context, personID string, body *openapi.FavouriteBodyCreate) (*openapi.Favourite, error) {
	return CreateEntry[openapi.Favourite](ctx, p.client, At(ResourcePersonFavourites, personID), nil, body)
}

func (p *People) RemoveFavourite(ctx context.Context, personID, targetGUID string) error {
	return Delete(ctx, p.client, At(ResourcePersonFavourite, personID, targetGUID), nil)
}
