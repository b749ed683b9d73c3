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
	"os"

	yaml "gopkg.in/yaml.v2"
)

// fileConfig mirrors the Init options the root package's Config decodes,
// so a config file and the -s/--socket flag both end up feeding the same
// map[string]interface{} that ocdaemon.Init expects.
type fileConfig struct {
	SocketPath    string  `yaml:"socketPath"`
	NamedPipePath string  `yaml:"namedPipePath"`
	MaxSendTime   float64 `yaml:"maxSendTime"`
}

// readConfigFile reads and unmarshals a YAML config file, the same way the
// teacher's daemons load theirs (fbclock/daemon/config.go's ReadConfig).
func readConfigFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var c fileConfig
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return fileConfig{}, err
	}
	return c, nil
}

// resolveOpts builds the options map passed to ocdaemon.Init, applying the
// config file named by --config first and then letting the -s/--socket
// flag override it.
func resolveOpts() (map[string]interface{}, error) {
	opts := map[string]interface{}{}

	if rootConfigFlag != "" {
		cfg, err := readConfigFile(rootConfigFlag)
		if err != nil {
			return nil, err
		}
		if cfg.SocketPath != "" {
			opts["socketPath"] = cfg.SocketPath
		}
		if cfg.NamedPipePath != "" {
			opts["namedPipePath"] = cfg.NamedPipePath
		}
		if cfg.MaxSendTime != 0 {
			opts["maxSendTime"] = cfg.MaxSendTime
		}
	}

	if rootSocketFlag != "" {
		opts["socketPath"] = rootSocketFlag
	}

	return opts, nil
}
