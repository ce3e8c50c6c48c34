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

package logics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localrec/localrec/config"
	"github.com/localrec/localrec/storage/data"
	"github.com/localrec/localrec/storage/meta"
)

func TestItemBased(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "")
	result, err := engine.ItemBased(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, LabelSimilarity, result.Label)
	// u1's only favorite is a; b is already rated, f has negative
	// similarity, so c is the single candidate and passes the filter
	assert.Equal(t, []Score{
		{ItemId: "c", Score: 0.6, Name: "Creekside Coffee", AvgRating: 4.2},
	}, result.Scores)
}

func TestItemBasedAccumulatesSimilarity(t *testing.T) {
	ctx := context.Background()
	itemSim := data.NewMatrix()
	itemSim.Set("a", "c", 0.6)
	itemSim.Set("a", "d", 0.7)
	itemSim.Set("b", "c", 0.3)
	reviews := []data.Review{
		{UserId: "u1", ItemId: "a", Rating: 5},
		{UserId: "u1", ItemId: "b", Rating: 4},
	}
	store := data.NewMemoryStore(reviews, nil, itemSim, nil)
	engine, err := NewEngine(store, testCatalog(), config.GetDefaultConfig().Recommend)
	require.NoError(t, err)
	result, err := engine.ItemBased(ctx, "u1", 2)
	require.NoError(t, err)
	// c is reachable from both favorites: 0.6 + 0.3 beats d's 0.7
	assert.Equal(t, []string{"c", "d"}, itemIds(result.Scores))
	assert.InDelta(t, 0.9, result.Scores[0].Score, 1e-9)
}

func TestItemBasedBackfillReplace(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "replace")
	result, err := engine.ItemBased(ctx, "u1", 2)
	require.NoError(t, err)
	// only c survives the quality filter, so the survivors are replaced
	// by a popularity list sized to the shortfall of one
	assert.Len(t, result.Scores, 1)
	assert.Equal(t, "c", result.Scores[0].ItemId)
	// the backfill row is popularity-scored
	assert.Equal(t, 3.0, result.Scores[0].Score)
}

func TestItemBasedBackfillMerge(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "merge")
	result, err := engine.ItemBased(ctx, "u1", 2)
	require.NoError(t, err)
	// the survivor keeps its similarity score, the shortfall is filled
	// with the most popular unseen item
	require.Len(t, result.Scores, 2)
	assert.Equal(t, Score{ItemId: "c", Score: 0.6, Name: "Creekside Coffee", AvgRating: 4.2}, result.Scores[0])
	assert.Equal(t, "d", result.Scores[1].ItemId)
}

func TestItemBasedQualityFilter(t *testing.T) {
	ctx := context.Background()
	// c's average rating is at the threshold, so nothing survives
	catalog := meta.FromBusinesses([]meta.Business{
		{ItemId: "a", Name: "Alpine Diner", AvgRating: 4.5},
		{ItemId: "b", Name: "Bonneville Bikes", AvgRating: 2.0},
		{ItemId: "c", Name: "Creekside Coffee", AvgRating: 3.5},
		{ItemId: "d", Name: "Desert Deli", AvgRating: 4.4},
		{ItemId: "e", Name: "Eagle Eats", AvgRating: 4.0},
	})
	store := data.NewMemoryStore(testReviews(), testUserSimilarity(), testItemSimilarity(), testPredictions())
	engine, err := NewEngine(store, catalog, config.GetDefaultConfig().Recommend)
	require.NoError(t, err)
	result, err := engine.ItemBased(ctx, "u1", 2)
	require.NoError(t, err)
	// shortfall of two, backfilled by popularity excluding rated items
	assert.Equal(t, []string{"c", "d"}, itemIds(result.Scores))
	assert.Equal(t, 3.0, result.Scores[0].Score)
}

func TestItemBasedColdStart(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "")
	result, err := engine.ItemBased(ctx, "unknown", 3)
	require.NoError(t, err)
	// no favorites at all degrades to a full popularity backfill
	assert.Equal(t, []string{"c", "a", "d"}, itemIds(result.Scores))
}

func TestItemBasedEnrichmentNotFound(t *testing.T) {
	ctx := context.Background()
	itemSim := data.NewMatrix()
	itemSim.Set("a", "ghost", 0.9)
	reviews := []data.Review{{UserId: "u1", ItemId: "a", Rating: 5}}
	store := data.NewMemoryStore(reviews, nil, itemSim, nil)
	engine, err := NewEngine(store, testCatalog(), config.GetDefaultConfig().Recommend)
	require.NoError(t, err)
	_, err = engine.ItemBased(ctx, "u1", 1)
	assert.Error(t, err)
}
