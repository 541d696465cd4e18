// Copyright (c) 2017 Uber Technologies, Inc.
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

// Package config bridges stdlib flag.FlagSet-based AddFlags functions
// into a bound viper.Viper + cobra.Command pair, so every cmd/ binary
// can share one flag-registration idiom regardless of which underlying
// flag library its dependencies expect.
package config

import (
	"flag"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viperize runs every addFlags function against a shared flag.FlagSet,
// merges it into a cobra.Command's pflag.FlagSet, and binds a fresh
// viper.Viper to it with environment-variable lookups enabled (the
// upper-cased flag name with dots and dashes folded to underscores; no
// prefix is added).
func Viperize(inits ...func(*flag.FlagSet)) (*viper.Viper, *cobra.Command) {
	flagSet := new(flag.FlagSet)
	for _, init := range inits {
		init(flagSet)
	}

	command := &cobra.Command{
		RunE: func(_ *cobra.Command, _ []string) error { return nil },
	}
	command.Flags().AddGoFlagSet(flagSet)

	v := viper.New()
	v.BindPFlags(command.Flags())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v, command
}
