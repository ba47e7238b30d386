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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/constants"
	"github.com/unikorn-cloud/content-harness/pkg/pager"
	"github.com/unikorn-cloud/core/pkg/options"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

func main() {
	var (
		coreOptions    options.CoreOptions
		clientOptions  client.Options
		requestContext client.RequestContext
		walkOptions    pager.Options
	)

	coreOptions.AddFlags(pflag.CommandLine)

	pflag.StringVar(&clientOptions.BaseURL, "base-url", "http://localhost:8080", "Content repository root URL.")
	pflag.DurationVar(&clientOptions.RequestTimeout, "request-timeout", 30*time.Second, "Timeout for each request.")
	pflag.BoolVar(&clientOptions.LogRequests, "log-requests", false, "Log every request line.")
	pflag.BoolVar(&clientOptions.ValidateResponses, "validate-responses", true, "Validate every response against the envelope contract.")
	pflag.StringVar(&requestContext.Network, "network", "", "Network (tenant) to walk, the user's home network if empty.")
	pflag.StringVar(&requestContext.UserID, "user", "admin", "User to authenticate as.")
	pflag.StringVar(&requestContext.Password, "password", os.Getenv("CONTENT_PASSWORD"), "Password, defaults to $CONTENT_PASSWORD.")
	pflag.StringVar(&walkOptions.NodeID, "node", client.NodeMy, "Folder whose children are walked.")
	pflag.IntVar(&walkOptions.PageSize, "page-size", 100, "maxItems for every page.")
	pflag.BoolVar(&walkOptions.CMIS, "cmis", false, "Walk the CMIS browser binding instead of the public API.")
	pflag.IntVar(&walkOptions.MaxPages, "max-pages", 10000, "Give up after this many pages, 0 means no limit.")

	pflag.Parse()

	coreOptions.SetupLogging()

	logger := log.Log.WithName("init")
	logger.Info("pager starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	logger = log.Log.WithName("pager")

	ctx := log.IntoContext(cr.SetupSignalHandler(), logger)

	c, err := client.New(ctx, clientOptions, nil)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	c.SetRequestContext(requestContext)

	summary, err := pager.Walk(ctx, c, walkOptions)
	if err != nil {
		logger.Error(err, "paging is inconsistent", "node", walkOptions.NodeID, "cmis", walkOptions.CMIS)
		os.Exit(1)
	}

	total := "unknown"
	if summary.TotalItems != nil {
		total = fmt.Sprint(*summary.TotalItems)
	}

	logger.Info("paging is consistent", "node", walkOptions.NodeID, "cmis", walkOptions.CMIS, "pages", summary.Pages, "items", summary.Items, "totalItems", total)
}
