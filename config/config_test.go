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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	text := `
[data]
store = "testdata"
metadata = "testdata/meta.json.gz"

[recommend]
num_neighbors = 10
quality_threshold = 3.0
backfill = "merge"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	conf, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "testdata", conf.Data.Store)
	assert.Equal(t, "testdata/meta.json.gz", conf.Data.Metadata)
	assert.Equal(t, 10, conf.Recommend.NumNeighbors)
	assert.Equal(t, 3.0, conf.Recommend.QualityThreshold)
	assert.Equal(t, "merge", conf.Recommend.Backfill)
	// defaults
	assert.Equal(t, 4.0, conf.Recommend.FavoriteThreshold)
	assert.Equal(t, 2, conf.Recommend.OverfetchFactor)
}

func TestValidate(t *testing.T) {
	conf := GetDefaultConfig()
	assert.Panics(t, func() { conf.Validate() })
	conf.Data.Store = "testdata"
	conf.Data.Metadata = "testdata/meta.json.gz"
	assert.NotPanics(t, func() { conf.Validate() })
	conf.Recommend.Backfill = "append"
	assert.Panics(t, func() { conf.Validate() })
}
