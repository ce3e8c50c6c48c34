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

import "context"

// MemoryStore is an in-memory store over preloaded artifacts.
type MemoryStore struct {
	reviews        []Review
	userSimilarity *Matrix
	itemSimilarity *Matrix
	predictions    *Matrix
}

func NewMemoryStore(reviews []Review, userSimilarity, itemSimilarity, predictions *Matrix) *MemoryStore {
	if userSimilarity == nil {
		userSimilarity = NewMatrix()
	}
	if itemSimilarity == nil {
		itemSimilarity = NewMatrix()
	}
	if predictions == nil {
		predictions = NewMatrix()
	}
	return &MemoryStore{
		reviews:        reviews,
		userSimilarity: userSimilarity,
		itemSimilarity: itemSimilarity,
		predictions:    predictions,
	}
}

func (m *MemoryStore) Reviews(_ context.Context) ([]Review, error) {
	return m.reviews, nil
}

func (m *MemoryStore) UserSimilarity(_ context.Context) (*Matrix, error) {
	return m.userSimilarity, nil
}

func (m *MemoryStore) ItemSimilarity(_ context.Context) (*Matrix, error) {
	return m.itemSimilarity, nil
}

func (m *MemoryStore) Predictions(_ context.Context) (*Matrix, error) {
	return m.predictions, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
