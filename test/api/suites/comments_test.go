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

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/content-harness/test/api"
)

var _ = Describe("Node Comments", func() {
	var (
		fixture  *api.Fixture
		document *openapi.Node
	)

	BeforeEach(func() {
		fixture = api.NewFixture(apiClient, config).WithUser().Build(ctx)
		document = api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload(), "comment on me")
	})

	Context("When adding a comment", func() {
		Describe("Given valid content", func() {
			It("should record the author", func() {
				comment, err := fixture.AsUser().Nodes().AddComment(ctx, document.ID, &openapi.CommentBody{Content: "Test Comment 1"})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(openapi.Comment{
					Content:   "Test Comment 1",
					CreatedBy: &openapi.Person{ID: fixture.User.ID},
				}, comment)
				Expect(comment.Edited).To(BeFalse())
				Expect(comment.CanEdit).To(BeTrue())
				Expect(comment.CanDelete).To(BeTrue())
			})
		})

		Describe("Given invalid input", func() {
			DescribeTable("should reject blank content",
				func(content string) {
					_, err := fixture.AsUser().Nodes().AddComment(ctx, document.ID, &openapi.CommentBody{Content: content})
					api.ExpectStatus(err, http.StatusBadRequest)
				},
				Entry("when empty", ""),
				Entry("when only whitespace", "   "),
			)

			It("should not find a missing node", func() {
				_, err := fixture.AsUser().Nodes().AddComment(ctx, api.GenerateTestID(), &openapi.CommentBody{Content: "lost"})
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})
	})

	Context("When listing comments", func() {
		var dataset []openapi.Comment

		BeforeEach(func() {
			contents := []string{"Test Comment 4", "Test Comment 1", "ӉӋӐӞ", "?*^&*(,"}

			dataset = make([]openapi.Comment, len(contents))

			for i, content := range contents {
				comment, err := fixture.AsAdmin().Nodes().AddComment(ctx, document.ID, &openapi.CommentBody{Content: content})
				Expect(err).NotTo(HaveOccurred())

				// Newest first.
				dataset[len(contents)-1-i] = openapi.Comment{
					ID:        comment.ID,
					Content:   content,
					CreatedBy: comment.CreatedBy,
				}
			}
		})

		Describe("Given valid paging parameters", func() {
			DescribeTable("should return the expected window and pagination",
				func(request *paging.Request) {
					page, err := fixture.AsUser().Nodes().Comments(ctx, document.ID, &client.Params{Paging: request})
					Expect(err).NotTo(HaveOccurred())

					api.VerifyPage(dataset, request, page)

					for _, comment := range page.List {
						Expect(comment.CanEdit).To(BeFalse(), comment.ID)
						Expect(comment.CanDelete).To(BeFalse(), comment.ID)
					}
				},
				Entry("with server defaults", nil),
				Entry("for the first page", paging.New(0, 2)),
				Entry("for a partial last page", paging.New(3, 2)),
				Entry("when skipping past the end", paging.New(10, 2)),
			)
		})
	})

	Context("When changing a comment", func() {
		var comment *openapi.Comment

		BeforeEach(func() {
			var err error

			comment, err = fixture.AsAdmin().Nodes().AddComment(ctx, document.ID, &openapi.CommentBody{Content: "original"})
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("Given the author", func() {
			It("should mark the comment edited", func() {
				updated, err := fixture.AsAdmin().Nodes().UpdateComment(ctx, document.ID, comment.ID, &openapi.CommentBody{Content: "Updated comment"})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(openapi.Comment{
					ID:         comment.ID,
					Content:    "Updated comment",
					CreatedBy:  comment.CreatedBy,
					ModifiedBy: comment.CreatedBy,
					Edited:     true,
				}, updated)
			})

			It("should reject empty content", func() {
				_, err := fixture.AsAdmin().Nodes().UpdateComment(ctx, document.ID, comment.ID, &openapi.CommentBody{})
				api.ExpectStatus(err, http.StatusBadRequest)
			})

			It("should not find a missing comment", func() {
				_, err := fixture.AsAdmin().Nodes().UpdateComment(ctx, document.ID, api.GenerateTestID(), &openapi.CommentBody{Content: "x"})
				api.ExpectStatus(err, http.StatusNotFound)
			})

			It("should delete the comment once", func() {
				Expect(fixture.AsAdmin().Nodes().DeleteComment(ctx, document.ID, comment.ID)).To(Succeed())
				api.ExpectStatus(fixture.AsAdmin().Nodes().DeleteComment(ctx, document.ID, comment.ID), http.StatusNotFound)

				page, err := fixture.AsUser().Nodes().Comments(ctx, document.ID, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(page.List).To(BeEmpty())
			})
		})

		Describe("Given another user", func() {
			It("should refuse changes", func() {
				_, err := fixture.AsUser().Nodes().UpdateComment(ctx, document.ID, comment.ID, &openapi.CommentBody{Content: "hijacked"})
				api.ExpectStatus(err, http.StatusForbidden)

				api.ExpectStatus(fixture.AsUser().Nodes().DeleteComment(ctx, document.ID, comment.ID), http.StatusForbidden)

				page, err := fixture.AsUser().Nodes().Comments(ctx, document.ID, nil)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyPage([]openapi.Comment{*comment}, nil, page)
			})
		})
	})
})
