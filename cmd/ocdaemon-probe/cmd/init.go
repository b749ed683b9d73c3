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

	"github.com/coreos/go-systemd/daemon"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ocdaemon "github.com/census-instrumentation/oc-daemon-client"
)

func init() {
	RootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Open a session against the daemon and report whether it opened",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		opts, err := resolveOpts()
		if err != nil {
			fmt.Println(color.RedString("reading config file: %v", err))
			return
		}

		if _, err := ocdaemon.Init(opts); err != nil {
			fmt.Println(color.RedString("init failed: %v", err))
			return
		}
		fmt.Println(color.GreenString("session initialized"))

		if ok, notifyErr := daemon.SdNotify(false, daemon.SdNotifyReady); notifyErr != nil {
			log.Debugf("sd_notify failed: %v", notifyErr)
		} else if !ok {
			log.Debug("sd_notify: not running under systemd")
		}
	},
}
