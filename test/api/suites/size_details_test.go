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
)

var _ = Describe("Folder Size Details", func() {
	var fixture *api.Fixture

	BeforeEach(func() {
		fixture = api.NewFixture(apiClient, config).Build(ctx)
	})

	Context("When calculating the size of a folder", func() {
		Describe("Given nested content", func() {
			BeforeEach(func() {
				nested := api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload())

				api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload(), "hello")
				api.CreateDocumentWithCleanup(ctx, fixture, nested.ID, api.NewDocumentPayload(), "world!")
			})

			It("should eventually report every file beneath it", func() {
				details := api.WaitForSizeDetails(ctx, fixture, fixture.FolderID)
				api.VerifyEntry(openapi.SizeDetails{
					NodeID:        fixture.FolderID,
					JobID:         details.JobID,
					Status:        openapi.JobStatusCompleted,
					SizeInBytes:   int64(len("hello") + len("world!")),
					NumberOfFiles: 2,
				}, details)
			})

			It("should complete through the client's poller", func() {
				job, err := apiClient.Nodes().RequestSizeDetails(ctx, fixture.FolderID)
				Expect(err).NotTo(HaveOccurred())

				details, err := apiClient.Nodes().AwaitSizeDetails(ctx, fixture.FolderID, job.JobID)
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Terminal()).To(BeTrue())
				Expect(details.CalculatedAt).NotTo(BeNil())
			})
		})

		Describe("Given an empty folder", func() {
			It("should report nothing", func() {
				details := api.WaitForSizeDetails(ctx, fixture, fixture.FolderID)
				Expect(details.SizeInBytes).To(BeZero())
				Expect(details.NumberOfFiles).To(BeZero())
			})
		})

		Describe("Given a document", func() {
			It("should reject the request", func() {
				document := api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload(), "")

				_, err := apiClient.Nodes().RequestSizeDetails(ctx, document.ID)
				api.ExpectStatus(err, http.StatusUnprocessableEntity)
			})
		})

		Describe("Given an unknown job", func() {
			It("should not find it", func() {
				_, err := apiClient.Nodes().SizeDetails(ctx, fixture.FolderID, "missing")
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})
	})
})
