// Copyright (c) 2020 The Jaeger Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import "encoding/json"

// StringSlice is a flag.Value that accumulates one value per repeated
// flag occurrence (unlike pflag's own StringSlice, it never splits on
// commas), so AddGoFlagSet sees ordinary repeated string flags.
type StringSlice struct {
	slice []string
}

// String returns the accumulated values as a JSON array, satisfying
// flag.Value and giving pflag.FlagSet.GetStringSlice something to
// parse back out.
func (s *StringSlice) String() string {
	if len(s.slice) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(s.slice)
	return string(b)
}

// Set appends value to the accumulated slice.
func (s *StringSlice) Set(value string) error {
	s.slice = append(s.slice, value)
	return nil
}

// Type reports the pflag value type name.
func (*StringSlice) Type() string {
	return "stringSlice"
}
