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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/olekukonko/tablewriter"

	ocdaemon "github.com/census-instrumentation/oc-daemon-client"
)

func init() {
	RootCmd.AddCommand(statCmd)
}

var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Open a session and print its send counters",
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

		snap := session.Telemetry()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"counter", "value"})
		rows := [][]string{
			{"attempted", fmt.Sprint(snap.Attempted)},
			{"sent", fmt.Sprint(snap.Sent)},
			{"failed", fmt.Sprint(snap.Failed)},
			{"bytes", fmt.Sprint(snap.Bytes)},
			{"latency_mean_us", fmt.Sprintf("%.2f", snap.LatencyMeanMicro)},
			{"latency_std_us", fmt.Sprintf("%.2f", snap.LatencyStdMicro)},
		}
		for _, row := range rows {
			table.Append(row)
		}
		table.Render()
	},
}
