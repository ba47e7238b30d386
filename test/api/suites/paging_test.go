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
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/content-harness/test/api"
)

const (
	childCount      = 30
	largeChildCount = 500
)

var _ = Describe("Collection Paging", func() {
	Context("When listing the children of a folder", func() {
		var (
			fixture *api.Fixture
			dataset []openapi.Node
		)

		BeforeEach(func() {
			fixture = api.NewFixture(apiClient, config).Build(ctx)
			dataset = api.CreateChildren(ctx, fixture, fixture.FolderID, childCount, true)
		})

		Describe("Given valid paging parameters", func() {
			DescribeTable("should return the expected window and pagination",
				func(request *paging.Request) {
					page, err := apiClient.Nodes().Children(ctx, fixture.FolderID, &client.Params{Paging: request})
					Expect(err).NotTo(HaveOccurred())

					api.VerifyPage(dataset, request, page)
				},
				Entry("with server defaults", nil),
				Entry("for the first page", paging.New(0, 10)),
				Entry("for a middle page", paging.New(10, 10)),
				Entry("for a partial last page", paging.New(25, 10)),
				Entry("for a page ending on the last item", paging.New(20, 10)),
				Entry("when skipping to the end", paging.New(childCount, 10)),
				Entry("when skipping past the end", paging.New(childCount+5, 10)),
				Entry("for single items", paging.New(7, 1)),
				Entry("with a page larger than the collection", paging.New(0, 1000)),
			)

			It("should visit every child exactly once when walking pages", func() {
				var (
					request = paging.New(0, 7)
					seen    []openapi.Node
				)

				for {
					page, err := apiClient.Nodes().Children(ctx, fixture.FolderID, &client.Params{Paging: request})
					Expect(err).NotTo(HaveOccurred())
					Expect(paging.CheckConsistency(page.Paging, len(page.List))).To(Succeed())

					seen = append(seen, page.List...)

					if !page.Paging.HasMoreItems {
						break
					}

					request = request.Next(page.Paging.Count)
				}

				Expect(seen).To(HaveLen(len(dataset)))

				for i := range dataset {
					Expect(dataset[i].Expected(seen[i])).To(Succeed(), "child %d", i)
				}
			})
		})

		Describe("Given invalid paging parameters", func() {
			DescribeTable("should reject the request",
				func(request *paging.Request) {
					_, err := apiClient.Nodes().Children(ctx, fixture.FolderID, &client.Params{Paging: request})
					api.ExpectStatus(err, http.StatusBadRequest)
				},
				Entry("with a negative skip count", paging.New(-1, 10)),
				Entry("with a zero page size", paging.New(0, 0)),
				Entry("with a negative page size", paging.New(0, -1)),
			)

			It("should reject non-numeric values with an error envelope", func() {
				response, err := apiClient.Raw().Get(ctx, client.At(client.ResourceNodeChildren, fixture.FolderID), &client.Params{
					Extra: url.Values{"skipCount": []string{"first"}},
				}, http.StatusBadRequest)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Error).NotTo(BeNil())
				Expect(response.Error.Error.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("When listing the children of a large folder", func() {
		var (
			fixture *api.Fixture
			dataset []openapi.Node
		)

		BeforeEach(func() {
			fixture = api.NewFixture(apiClient, config).Build(ctx)
			dataset = api.CreateChildren(ctx, fixture, fixture.FolderID, largeChildCount, false)
		})

		Describe("Given a page larger than the collection", func() {
			It("should return every child on one page", func() {
				request := paging.New(0, 1000)

				page, err := apiClient.Nodes().Children(ctx, fixture.FolderID, &client.Params{Paging: request})
				Expect(err).NotTo(HaveOccurred())
				Expect(page.List).To(HaveLen(largeChildCount))
				Expect(page.Paging.HasMoreItems).To(BeFalse())

				api.VerifyPage(dataset, request, page)
			})
		})

		Describe("Given no paging parameters", func() {
			It("should stop at the default page size", func() {
				page, err := apiClient.Nodes().Children(ctx, fixture.FolderID, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(page.List).To(HaveLen(paging.DefaultMaxItems))
				Expect(page.Paging.Count).To(Equal(paging.DefaultMaxItems))
				Expect(page.Paging.HasMoreItems).To(BeTrue())

				api.VerifyPage(dataset, nil, page)
			})
		})
	})

	Context("When listing the people in a network", func() {
		Describe("Given the administrator exists", func() {
			It("should report a consistent total across pages", func() {
				first, err := apiClient.People().List(ctx, &client.Params{Paging: paging.New(0, 1)})
				Expect(err).NotTo(HaveOccurred())
				Expect(first.Paging.TotalItems).NotTo(BeNil())

				all, err := apiClient.People().List(ctx, &client.Params{Paging: paging.New(0, *first.Paging.TotalItems)})
				Expect(err).NotTo(HaveOccurred())
				Expect(all.Paging.HasMoreItems).To(BeFalse())
				Expect(all.List).To(HaveLen(*first.Paging.TotalItems))
				Expect(all.List[0].ID).To(Equal(first.List[0].ID))
			})
		})
	})
})
