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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/content-harness/pkg/where"
	"github.com/unikorn-cloud/content-harness/test/api"
)

var _ = Describe("Person Favourites", func() {
	var (
		fixture  *api.Fixture
		document *openapi.Node
	)

	BeforeEach(func() {
		fixture = api.NewFixture(apiClient, config).WithUser().WithSite(openapi.SiteVisibilityPublic).Build(ctx)
		document = api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload(), "favourite me")
	})

	Context("When adding a favourite", func() {
		Describe("Given a visible target", func() {
			DescribeTable("should record it against the caller",
				func(kind string, guid func() string) {
					favourite, err := fixture.AsUser().People().AddFavourite(ctx, client.PersonMe, &openapi.FavouriteBodyCreate{
						Target: openapi.NewFavouriteTarget(kind, guid()),
					})
					Expect(err).NotTo(HaveOccurred())
					api.VerifyEntry(openapi.Favourite{
						TargetGUID: guid(),
						Target:     openapi.NewFavouriteTarget(kind, guid()),
					}, favourite)

					got, err := fixture.AsUser().People().Favourite(ctx, client.PersonMe, guid())
					Expect(err).NotTo(HaveOccurred())
					api.VerifyEntry(*favourite, got)
				},
				Entry("for a file", openapi.FavouriteTargetFile, func() string { return document.ID }),
				Entry("for a folder", openapi.FavouriteTargetFolder, func() string { return fixture.FolderID }),
				Entry("for a site", openapi.FavouriteTargetSite, func() string { return fixture.Site.GUID }),
			)

			It("should return the original when added twice", func() {
				body := &openapi.FavouriteBodyCreate{Target: openapi.NewFavouriteTarget(openapi.FavouriteTargetFile, document.ID)}

				first, err := fixture.AsUser().People().AddFavourite(ctx, client.PersonMe, body)
				Expect(err).NotTo(HaveOccurred())

				second, err := fixture.AsUser().People().AddFavourite(ctx, client.PersonMe, body)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(*first, second)

				page, err := fixture.AsUser().People().Favourites(ctx, client.PersonMe, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(page.List).To(HaveLen(1))
			})
		})

		Describe("Given a target of the wrong kind", func() {
			DescribeTable("should not find it",
				func(kind string, guid func() string) {
					_, err := fixture.AsUser().People().AddFavourite(ctx, client.PersonMe, &openapi.FavouriteBodyCreate{
						Target: openapi.NewFavouriteTarget(kind, guid()),
					})
					api.ExpectStatus(err, http.StatusNotFound)
				},
				Entry("with a document as a folder", openapi.FavouriteTargetFolder, func() string { return document.ID }),
				Entry("with a folder as a file", openapi.FavouriteTargetFile, func() string { return fixture.FolderID }),
				Entry("with a document as a site", openapi.FavouriteTargetSite, func() string { return document.ID }),
				Entry("with a missing node", openapi.FavouriteTargetFile, func() string { return api.GenerateTestID() }),
			)
		})

		Describe("Given an unknown target kind", func() {
			It("should reject the request", func() {
				response, err := fixture.AsUser().Raw().Post(ctx, client.At(client.ResourcePersonFavourites, client.PersonMe), nil, map[string]any{
					"target": map[string]any{
						"comment": map[string]any{"guid": document.ID},
					},
				}, http.StatusBadRequest)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Error).NotTo(BeNil())
			})
		})

		Describe("Given another person's favourites", func() {
			It("should not reveal them", func() {
				_, err := fixture.AsAdmin().People().AddFavourite(ctx, fixture.User.ID, &openapi.FavouriteBodyCreate{
					Target: openapi.NewFavouriteTarget(openapi.FavouriteTargetFile, document.ID),
				})
				api.ExpectStatus(err, http.StatusNotFound)

				_, err = fixture.AsAdmin().People().Favourites(ctx, fixture.User.ID, nil)
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})
	})

	Context("When listing favourites", func() {
		var dataset []openapi.Favourite

		BeforeEach(func() {
			dataset = nil

			targets := []openapi.FavouriteTarget{
				openapi.NewFavouriteTarget(openapi.FavouriteTargetSite, fixture.Site.GUID),
				openapi.NewFavouriteTarget(openapi.FavouriteTargetFolder, fixture.FolderID),
				openapi.NewFavouriteTarget(openapi.FavouriteTargetFile, document.ID),
			}

			for _, target := range targets {
				favourite, err := fixture.AsUser().People().AddFavourite(ctx, client.PersonMe, &openapi.FavouriteBodyCreate{Target: target})
				Expect(err).NotTo(HaveOccurred())

				dataset = append(dataset, *favourite)
			}

			// Newest first.
			slices.Reverse(dataset)
		})

		Describe("Given valid paging parameters", func() {
			DescribeTable("should return the expected window and pagination",
				func(request *paging.Request) {
					page, err := fixture.AsUser().People().Favourites(ctx, client.PersonMe, &client.Params{Paging: request})
					Expect(err).NotTo(HaveOccurred())

					api.VerifyPage(dataset, request, page)
				},
				Entry("with server defaults", nil),
				Entry("for the first page", paging.New(0, 2)),
				Entry("for the last page", paging.New(2, 2)),
				Entry("when skipping past the end", paging.New(5, 2)),
			)
		})

		Describe("Given a where clause", func() {
			It("should filter by target kind", func() {
				page, err := fixture.AsUser().People().Favourites(ctx, client.PersonMe, &client.Params{
					Where: where.Or(where.Exists("target/file"), where.Exists("target/folder")),
				})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyPage(dataset[:2], nil, page)

				page, err = fixture.AsUser().People().Favourites(ctx, client.PersonMe, &client.Params{
					Where: where.Exists("target/site"),
				})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyPage(dataset[2:], nil, page)
			})

			It("should reject unknown fields", func() {
				_, err := fixture.AsUser().People().Favourites(ctx, client.PersonMe, &client.Params{
					Where: where.Exists("target/comment"),
				})
				api.ExpectStatus(err, http.StatusBadRequest)
			})
		})

		Describe("Given a deleted target", func() {
			It("should drop the favourite", func() {
				Expect(fixture.AsAdmin().Nodes().Delete(ctx, document.ID, true)).To(Succeed())

				page, err := fixture.AsUser().People().Favourites(ctx, client.PersonMe, nil)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyPage(dataset[1:], nil, page)

				_, err = fixture.AsUser().People().Favourite(ctx, client.PersonMe, document.ID)
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})
	})

	Context("When removing a favourite", func() {
		BeforeEach(func() {
			_, err := fixture.AsUser().People().AddFavourite(ctx, client.PersonMe, &openapi.FavouriteBodyCreate{
				Target: openapi.NewFavouriteTarget(openapi.FavouriteTargetFile, document.ID),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should remove it once", func() {
			Expect(fixture.AsUser().People().RemoveFavourite(ctx, client.PersonMe, document.ID)).To(Succeed())
			api.ExpectStatus(fixture.AsUser().People().RemoveFavourite(ctx, client.PersonMe, document.ID), http.StatusNotFound)

			_, err := fixture.AsUser().People().Favourite(ctx, client.PersonMe, document.ID)
			api.ExpectStatus(err, http.StatusNotFound)
		})

		It("should not remove another person's favourite", func() {
			api.ExpectStatus(fixture.AsAdmin().People().RemoveFavourite(ctx, fixture.User.ID, document.ID), http.StatusNotFound)

			_, err := fixture.AsUser().People().Favourite(ctx, client.PersonMe, document.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
