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

package ocdaemon

import (
	"time"

	"github.com/mitchellh/mapstructure"
)

// MinSendTime is the floor for the per-frame send deadline.
const MinSendTime = 1 * time.Millisecond

// DefaultSendTime is used when Init is called without a maxSendTime
// override.
const DefaultSendTime = 5 * time.Millisecond

// Config holds the recognized Init options. Unrecognized keys in the map
// passed to Init are ignored, matching the protocol's config contract.
type Config struct {
	SocketPath    string  `mapstructure:"socketPath"`
	NamedPipePath string  `mapstructure:"namedPipePath"`
	MaxSendTime   float64 `mapstructure:"maxSendTime"`
}

// decodeConfig builds a Config from an options map, ignoring keys it does
// not recognize. The send-time default and floor are applied later, by
// sendTimeBudget.
func decodeConfig(opts map[string]interface{}) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(opts); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// sendTimeBudget returns the configured send-time budget, applying the
// default when unset and the floor regardless of what was configured.
func (c Config) sendTimeBudget() time.Duration {
	if c.MaxSendTime <= 0 {
		return DefaultSendTime
	}
	d := time.Duration(c.MaxSendTime * float64(time.Second))
	if d < MinSendTime {
		return MinSendTime
	}
	return d
}
