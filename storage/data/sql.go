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
	"time"

	"github.com/juju/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"moul.io/zapgorm2"

	"github.com/localrec/localrec/base/log"
)

// SQLStore reads artifacts from a SQLite export. The reviews extract
// lives in the `reviews` table, matrices in long form in `user_neighbors`,
// `item_neighbors` and `predictions`.
type SQLStore struct {
	gormDB *gorm.DB
}

func OpenSQLStore(dataSourceName string) (*SQLStore, error) {
	gormDB, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: &zapgorm2.Logger{
			ZapLogger:                 log.Logger(),
			LogLevel:                  gormlogger.Warn,
			SlowThreshold:             10 * time.Second,
			IgnoreRecordNotFoundError: false,
		},
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &SQLStore{gormDB: gormDB}, nil
}

func (d *SQLStore) Reviews(ctx context.Context) ([]Review, error) {
	result, err := d.gormDB.WithContext(ctx).Table("reviews").
		Select("user_id, item_id, rating").Rows()
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer result.Close()
	var reviews []Review
	for result.Next() {
		var review Review
		if err = result.Scan(&review.UserId, &review.ItemId, &review.Rating); err != nil {
			return nil, errors.Trace(err)
		}
		reviews = append(reviews, review)
	}
	return reviews, errors.Trace(result.Err())
}

func (d *SQLStore) UserSimilarity(ctx context.Context) (*Matrix, error) {
	return d.readMatrix(ctx, "user_neighbors")
}

func (d *SQLStore) ItemSimilarity(ctx context.Context) (*Matrix, error) {
	return d.readMatrix(ctx, "item_neighbors")
}

func (d *SQLStore) Predictions(ctx context.Context) (*Matrix, error) {
	return d.readMatrix(ctx, "predictions")
}

func (d *SQLStore) Close() error {
	db, err := d.gormDB.DB()
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(db.Close())
}

func (d *SQLStore) readMatrix(ctx context.Context, table string) (*Matrix, error) {
	result, err := d.gormDB.WithContext(ctx).Table(table).
		Select("row_id, col_id, score").Rows()
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer result.Close()
	matrix := NewMatrix()
	for result.Next() {
		var rowId, colId string
		var score float64
		if err = result.Scan(&rowId, &colId, &score); err != nil {
			return nil, errors.Trace(err)
		}
		matrix.Set(rowId, colId, score)
	}
	return matrix, errors.Trace(result.Err())
}
