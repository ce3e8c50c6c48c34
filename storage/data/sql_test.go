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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLFixture(t *testing.T) *SQLStore {
	t.Helper()
	store, err := OpenSQLStore(filepath.Join(t.TempDir(), "artifacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	for _, stmt := range []string{
		"CREATE TABLE reviews (user_id TEXT, item_id TEXT, rating REAL)",
		"CREATE TABLE user_neighbors (row_id TEXT, col_id TEXT, score REAL)",
		"CREATE TABLE item_neighbors (row_id TEXT, col_id TEXT, score REAL)",
		"CREATE TABLE predictions (row_id TEXT, col_id TEXT, score REAL)",
		"INSERT INTO reviews VALUES ('u1','a',5),('u1','b',2),('u2','a',4)",
		"INSERT INTO user_neighbors VALUES ('u1','u2',0.5),('u2','u1',0.5)",
		"INSERT INTO item_neighbors VALUES ('a','b',-0.1),('b','a',-0.1)",
		"INSERT INTO predictions VALUES ('u1','a',4.2),('u1','b',3.1)",
	} {
		require.NoError(t, store.gormDB.Exec(stmt).Error)
	}
	return store
}

func TestSQLStore(t *testing.T) {
	ctx := context.Background()
	store := newSQLFixture(t)

	reviews, err := store.Reviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Review{
		{UserId: "u1", ItemId: "a", Rating: 5},
		{UserId: "u1", ItemId: "b", Rating: 2},
		{UserId: "u2", ItemId: "a", Rating: 4},
	}, reviews)

	userSim, err := store.UserSimilarity(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"u2", 0.5}}, userSim.Neighbors("u1", 0))

	itemSim, err := store.ItemSimilarity(ctx)
	require.NoError(t, err)
	assert.Empty(t, itemSim.PositiveNeighbors("a"))

	predictions, err := store.Predictions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"a", 4.2}, {"b", 3.1}}, predictions.Neighbors("u1", 0))
}

func TestSQLStoreMissingTable(t *testing.T) {
	store, err := OpenSQLStore(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer store.Close()
	_, err = store.Reviews(context.Background())
	assert.Error(t, err)
}
