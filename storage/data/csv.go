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
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/juju/errors"
)

const (
	csvReviewsFile        = "reviews.csv"
	csvUserSimilarityFile = "user_sim.csv"
	csvItemSimilarityFile = "item_sim.csv"
	csvPredictionsFile    = "predictions.csv"
)

// CSVStore reads artifacts from a directory of CSV extracts. The reviews
// extract is a headed table (user_id, item_id, rating), matrices are wide
// tables with column ids in the header row and the row id in the leading
// cell.
type CSVStore struct {
	dir string
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{dir: dir}
}

func (s *CSVStore) Reviews(_ context.Context) ([]Review, error) {
	rows, err := s.readAll(csvReviewsFile)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("%s: missing header row", csvReviewsFile)
	}
	userCol, itemCol, ratingCol := -1, -1, -1
	for i, name := range rows[0] {
		switch name {
		case "user_id":
			userCol = i
		case "item_id", "gmap_id":
			itemCol = i
		case "rating":
			ratingCol = i
		}
	}
	if userCol < 0 || itemCol < 0 || ratingCol < 0 {
		return nil, errors.Errorf("%s: expect user_id, item_id (or gmap_id) and rating columns", csvReviewsFile)
	}
	reviews := make([]Review, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rating, err := strconv.ParseFloat(row[ratingCol], 64)
		if err != nil {
			return nil, errors.Annotatef(err, "%s: malformed rating", csvReviewsFile)
		}
		reviews = append(reviews, Review{
			UserId: row[userCol],
			ItemId: row[itemCol],
			Rating: rating,
		})
	}
	return reviews, nil
}

func (s *CSVStore) UserSimilarity(_ context.Context) (*Matrix, error) {
	return s.readMatrix(csvUserSimilarityFile)
}

func (s *CSVStore) ItemSimilarity(_ context.Context) (*Matrix, error) {
	return s.readMatrix(csvItemSimilarityFile)
}

func (s *CSVStore) Predictions(_ context.Context) (*Matrix, error) {
	return s.readMatrix(csvPredictionsFile)
}

func (s *CSVStore) Close() error {
	return nil
}

func (s *CSVStore) readMatrix(name string) (*Matrix, error) {
	rows, err := s.readAll(name)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("%s: missing header row", name)
	}
	header := rows[0]
	matrix := NewMatrix()
	for _, row := range rows[1:] {
		rowId := row[0]
		for i, cell := range row[1:] {
			if cell == "" {
				continue
			}
			score, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Annotatef(err, "%s: malformed score in row %s", name, rowId)
			}
			matrix.Set(rowId, header[i+1], score)
		}
	}
	return matrix, nil
}

func (s *CSVStore) readAll(name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return rows, nil
}
