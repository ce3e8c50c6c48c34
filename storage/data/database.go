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

package data

import (
	"context"
	"os"
	"strings"

	"github.com/juju/errors"
)

const SQLitePrefix = "sqlite://"

// Review is a single rating of an item by a user. Reviews are immutable
// and loaded in bulk from the reviews extract.
type Review struct {
	UserId string  `gorm:"column:user_id"`
	ItemId string  `gorm:"column:item_id"`
	Rating float64 `gorm:"column:rating"`
}

// Store reads the precomputed artifacts consumed by the engine: the
// reviews extract, both similarity matrices and the prediction table.
// Every call re-reads the backing artifact, there is no caching across
// requests.
type Store interface {
	Reviews(ctx context.Context) ([]Review, error)
	UserSimilarity(ctx context.Context) (*Matrix, error)
	ItemSimilarity(ctx context.Context) (*Matrix, error)
	Predictions(ctx context.Context) (*Matrix, error)
	Close() error
}

// Open a store. A sqlite:// DSN selects the SQL store, any other path is
// expected to be a directory of CSV extracts.
func Open(path string) (Store, error) {
	if strings.HasPrefix(path, SQLitePrefix) {
		return OpenSQLStore(path[len(SQLitePrefix):])
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Annotatef(err, "open store %s", path)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("store path %s is not a directory", path)
	}
	return NewCSVStore(path), nil
}
