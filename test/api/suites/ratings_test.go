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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Document Ratings", func() {
	var (
		fixture  *api.Fixture
		document *openapi.Node
	)

	BeforeEach(func() {
		fixture = api.NewFixture(apiClient, config).WithUser().Build(ctx)
		document = api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload(), "rate me")
	})

	Context("When rating a document", func() {
		Describe("Given another user's document", func() {
			It("should record a five star rating", func() {
				rating, err := fixture.AsUser().Nodes().Rate(ctx, document.ID, &openapi.RatingBody{ID: openapi.RatingSchemeFiveStar, MyRating: 4})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(openapi.Rating{
					ID:       openapi.RatingSchemeFiveStar,
					MyRating: 4,
					Aggregate: openapi.RatingAggregate{
						NumberOfRatings: 1,
						Average:         ptr.To(4.0),
					},
				}, rating)
			})

			It("should remove a rating", func() {
				user := fixture.AsUser()

				_, err := user.Nodes().Rate(ctx, document.ID, &openapi.RatingBody{ID: openapi.RatingSchemeLikes, MyRating: true})
				Expect(err).NotTo(HaveOccurred())

				Expect(user.Nodes().Unrate(ctx, document.ID, openapi.RatingSchemeLikes)).To(Succeed())
				api.ExpectStatus(user.Nodes().Unrate(ctx, document.ID, openapi.RatingSchemeLikes), http.StatusNotFound)

				rating, err := user.Nodes().Rating(ctx, document.ID, openapi.RatingSchemeLikes)
				Expect(err).NotTo(HaveOccurred())
				Expect(rating.MyRating).To(BeNil())
				Expect(rating.Aggregate.NumberOfRatings).To(BeZero())
			})
		})

		Describe("Given the caller's own document", func() {
			It("should allow likes", func() {
				rating, err := fixture.AsAdmin().Nodes().Rate(ctx, document.ID, &openapi.RatingBody{ID: openapi.RatingSchemeLikes, MyRating: true})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(openapi.Rating{
					ID:        openapi.RatingSchemeLikes,
					MyRating:  true,
					Aggregate: openapi.RatingAggregate{NumberOfRatings: 1},
				}, rating)
			})

			It("should refuse five star ratings", func() {
				_, err := fixture.AsAdmin().Nodes().Rate(ctx, document.ID, &openapi.RatingBody{ID: openapi.RatingSchemeFiveStar, MyRating: 5})
				api.ExpectStatus(err, http.StatusBadRequest)
			})
		})

		Describe("Given an invalid rating", func() {
			DescribeTable("should reject it",
				func(body *openapi.RatingBody) {
					_, err := fixture.AsUser().Nodes().Rate(ctx, document.ID, body)
					api.ExpectStatus(err, http.StatusBadRequest)
				},
				Entry("above five stars", &openapi.RatingBody{ID: openapi.RatingSchemeFiveStar, MyRating: 6}),
				Entry("below one star", &openapi.RatingBody{ID: openapi.RatingSchemeFiveStar, MyRating: 0}),
				Entry("with fractional stars", &openapi.RatingBody{ID: openapi.RatingSchemeFiveStar, MyRating: 2.5}),
				Entry("with a non boolean like", &openapi.RatingBody{ID: openapi.RatingSchemeLikes, MyRating: "yes"}),
				Entry("with an unknown scheme", &openapi.RatingBody{ID: "thumbs", MyRating: true}),
			)
		})
	})

	Context("When listing ratings", func() {
		Describe("Given the document has been rated", func() {
			BeforeEach(func() {
				_, err := fixture.AsUser().Nodes().Rate(ctx, document.ID, &openapi.RatingBody{ID: openapi.RatingSchemeFiveStar, MyRating: 3})
				Expect(err).NotTo(HaveOccurred())
			})

			It("should list every scheme with aggregates", func() {
				page, err := fixture.AsAdmin().Nodes().Ratings(ctx, document.ID, nil)
				Expect(err).NotTo(HaveOccurred())

				ids := make([]string, len(page.List))
				for i := range page.List {
					ids[i] = page.List[i].ID
				}

				Expect(ids).To(ConsistOf(openapi.RatingSchemeFiveStar, openapi.RatingSchemeLikes))

				for _, rating := range page.List {
					Expect(rating.MyRating).To(BeNil(), rating.ID)

					if rating.ID == openapi.RatingSchemeFiveStar {
						Expect(rating.Aggregate.NumberOfRatings).To(Equal(1))
						Expect(rating.Aggregate.Average).To(HaveValue(BeNumerically("==", 3)))
					}
				}
			})

			It("should not find unknown schemes", func() {
				_, err := apiClient.Nodes().Rating(ctx, document.ID, "thumbs")
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})
	})
})
