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

package config

import (
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration for the recommender.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Recommend RecommendConfig `mapstructure:"recommend"`
}

// DataConfig points to the precomputed artifacts consumed by the engine.
type DataConfig struct {
	// Store is either a directory of CSV extracts or a sqlite:// DSN.
	Store string `mapstructure:"store"`
	// Metadata is the path of the gzip line-delimited JSON metadata file.
	Metadata string `mapstructure:"metadata"`
}

// RecommendConfig holds the scoring policy knobs.
type RecommendConfig struct {
	NumNeighbors      int     `mapstructure:"num_neighbors"`      // similar users consulted by the user-based strategy
	FavoriteThreshold float64 `mapstructure:"favorite_threshold"` // minimal rating of a favorite
	QualityThreshold  float64 `mapstructure:"quality_threshold"`  // minimal average rating in the item-based strategy
	OverfetchFactor   int     `mapstructure:"overfetch_factor"`   // overfetch buffer of the item-based strategy
	Backfill          string  `mapstructure:"backfill"`           // backfill policy: replace or merge
}

func GetDefaultConfig() *Config {
	return &Config{
		Recommend: RecommendConfig{
			NumNeighbors:      50,
			FavoriteThreshold: 4,
			QualityThreshold:  3.5,
			OverfetchFactor:   2,
			Backfill:          "replace",
		},
	}
}

func setDefault() {
	defaultConfig := GetDefaultConfig()
	viper.SetDefault("recommend.num_neighbors", defaultConfig.Recommend.NumNeighbors)
	viper.SetDefault("recommend.favorite_threshold", defaultConfig.Recommend.FavoriteThreshold)
	viper.SetDefault("recommend.quality_threshold", defaultConfig.Recommend.QualityThreshold)
	viper.SetDefault("recommend.overfetch_factor", defaultConfig.Recommend.OverfetchFactor)
	viper.SetDefault("recommend.backfill", defaultConfig.Recommend.Backfill)
}

// LoadConfig loads the configuration from a TOML file. Values can be
// overridden by LOCALREC_* environment variables.
func LoadConfig(path string) (*Config, error) {
	setDefault()
	viper.SetConfigType("toml")
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("localrec")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Trace(err)
	}
	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	conf.Validate()
	return &conf, nil
}

func (config *Config) Validate() {
	validateNotEmpty("data.store", config.Data.Store)
	validateNotEmpty("data.metadata", config.Data.Metadata)
	validatePositive("recommend.num_neighbors", config.Recommend.NumNeighbors)
	validatePositive("recommend.overfetch_factor", config.Recommend.OverfetchFactor)
	validateIn("recommend.backfill", config.Recommend.Backfill, []string{"replace", "merge"})
}
