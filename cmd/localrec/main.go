// Copyright 2025 localrec Project Authors
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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/localrec/localrec/base/log"
	"github.com/localrec/localrec/config"
	"github.com/localrec/localrec/logics"
	"github.com/localrec/localrec/storage/data"
	"github.com/localrec/localrec/storage/meta"
)

var versionName = "0.1.0"

var rootCommand = &cobra.Command{
	Use:   "localrec",
	Short: "localrec: local business recommender",
	Long: "localrec suggests local businesses from precomputed similarity " +
		"matrices and latent-factor predictions.",
	Run: func(cmd *cobra.Command, args []string) {
		// setup logger
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)
		// load config
		configPath, _ := cmd.PersistentFlags().GetString("config")
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err), zap.String("config", configPath))
		}
		// open artifacts
		store, err := data.Open(conf.Data.Store)
		if err != nil {
			log.Logger().Fatal("failed to open store", zap.Error(err), zap.String("store", conf.Data.Store))
		}
		defer store.Close()
		catalog, err := meta.Open(conf.Data.Metadata)
		if err != nil {
			log.Logger().Fatal("failed to open metadata", zap.Error(err), zap.String("metadata", conf.Data.Metadata))
		}
		engine, err := logics.NewEngine(store, catalog, conf.Recommend)
		if err != nil {
			log.Logger().Fatal("failed to create engine", zap.Error(err))
		}
		// run the interactive session
		session := newSession(engine, os.Stdin, os.Stdout)
		session.Run(cmd.Context())
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Check the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionName)
	},
}

func init() {
	rootCommand.AddCommand(versionCommand)
	rootCommand.PersistentFlags().String("config", "config.toml", "path of the config file")
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	log.AddFlags(rootCommand.PersistentFlags())
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute command", zap.Error(err))
	}
}
