/*
Copyright (c) OpenCensus Authors.

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

package cmd

import (
	"fmt"
	"net/http"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ocdaemon "github.com/census-instrumentation/oc-daemon-client"
)

var metricsAddrFlag string

func init() {
	RootCmd.AddCommand(metricsCmd)
	metricsCmd.Flags().StringVarP(&metricsAddrFlag, "addr", "a", ":21040", "address to serve /metrics on")
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Open a session and serve its counters in Prometheus format",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		opts, err := resolveOpts()
		if err != nil {
			log.Fatalf("reading config file: %v", err)
		}

		session, err := ocdaemon.Init(opts)
		if err != nil {
			log.Fatalf("init failed: %v", err)
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", session.PrometheusExporter())

		fmt.Println(color.CyanString("serving /metrics on %s", metricsAddrFlag))
		if err := http.ListenAndServe(metricsAddrFlag, mux); err != nil {
			log.Fatalf("metrics server stopped: %v", err)
		}
	},
}
