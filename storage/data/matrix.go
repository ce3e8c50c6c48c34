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

import "sort"

// Entry is a scored column of a matrix row.
type Entry struct {
	Id    string
	Score float64
}

// Matrix is a sparse score table: similarity matrices are square
// (user x user, item x item), the prediction table maps users to items.
// Symmetry of similarity matrices is by construction, not enforced here.
type Matrix struct {
	rows map[string]map[string]float64
}

func NewMatrix() *Matrix {
	return &Matrix{rows: make(map[string]map[string]float64)}
}

func (m *Matrix) Set(row, col string, score float64) {
	if _, exist := m.rows[row]; !exist {
		m.rows[row] = make(map[string]float64)
	}
	m.rows[row][col] = score
}

func (m *Matrix) Has(row string) bool {
	_, exist := m.rows[row]
	return exist
}

// Neighbors returns the columns of a row sorted by score in descending
// order, ties broken by id. The diagonal entry is excluded. A
// non-positive k returns all columns.
func (m *Matrix) Neighbors(row string, k int) []Entry {
	entries := m.collect(row, func(Entry) bool { return true })
	if k > 0 && len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// PositiveNeighbors returns the columns of a row with positive scores,
// sorted like Neighbors. Only positive similarities are usable for
// recommendation.
func (m *Matrix) PositiveNeighbors(row string) []Entry {
	return m.collect(row, func(e Entry) bool { return e.Score > 0 })
}

func (m *Matrix) collect(row string, keep func(Entry) bool) []Entry {
	cols, exist := m.rows[row]
	if !exist {
		return nil
	}
	entries := make([]Entry, 0, len(cols))
	for id, score := range cols {
		if id == row {
			// self-similarity
			continue
		}
		if e := (Entry{Id: id, Score: score}); keep(e) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Id < entries[j].Id
	})
	return entries
}
