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

var _ = Describe("People Management", func() {
	Context("When creating a person", func() {
		Describe("Given the caller is an administrator", func() {
			It("should create the person", func() {
				payload := api.NewPersonPayload()

				person, err := apiClient.People().Create(ctx, payload.Build())
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(payload.Expected(), person)

				got, err := apiClient.People().Get(ctx, person.ID)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(*person, got)
			})

			It("should reject a duplicate id", func() {
				payload := api.NewPersonPayload()

				_, err := apiClient.People().Create(ctx, payload.Build())
				Expect(err).NotTo(HaveOccurred())

				_, err = apiClient.People().Create(ctx, payload.Build())
				api.ExpectStatus(err, http.StatusConflict)
			})

			It("should reject an incomplete payload", func() {
				_, err := apiClient.People().Create(ctx, &openapi.PersonBodyCreate{ID: api.GenerateTestID()})
				api.ExpectStatus(err, http.StatusBadRequest)
			})
		})

		Describe("Given the caller is an ordinary user", func() {
			It("should deny the request", func() {
				fixture := api.NewFixture(apiClient, config).WithUser().Build(ctx)

				_, err := fixture.AsUser().People().Create(ctx, api.NewPersonPayload().Build())
				api.ExpectStatus(err, http.StatusForbidden)
			})
		})
	})

	Context("When reading people", func() {
		Describe("Given the current user alias", func() {
			It("should resolve to the caller", func() {
				fixture := api.NewFixture(apiClient, config).WithUser().Build(ctx)

				me, err := fixture.AsUser().People().Get(ctx, client.PersonMe)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(*fixture.User, me)
			})
		})

		Describe("Given an unknown person", func() {
			It("should not find them", func() {
				_, err := apiClient.People().Get(ctx, api.GenerateTestID())
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})

		Describe("Given several people", func() {
			It("should page through them", func() {
				for range 3 {
					_, err := apiClient.People().Create(ctx, api.NewPersonPayload().Build())
					Expect(err).NotTo(HaveOccurred())
				}

				all, err := apiClient.People().List(ctx, &client.Params{Paging: paging.New(0, 1000)})
				Expect(err).NotTo(HaveOccurred())

				request := paging.New(1, 2)

				page, err := apiClient.People().List(ctx, &client.Params{Paging: request})
				Expect(err).NotTo(HaveOccurred())

				api.VerifyPage(all.List, request, page)
			})
		})
	})
})
