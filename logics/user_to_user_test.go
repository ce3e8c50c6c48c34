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
)

func TestUserBased(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "")
	result, err := engine.UserBased(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, LabelSimilarity, result.Label)
	// neighbor favorites accumulate: c = 5+5+4, d = 4+5, e = 4;
	// item a is excluded because u1 already rated it
	assert.Equal(t, []Score{
		{ItemId: "c", Score: 14, Name: "Creekside Coffee", AvgRating: 4.2},
		{ItemId: "d", Score: 9, Name: "Desert Deli", AvgRating: 4.4},
	}, result.Scores)
}

func TestUserBasedNoRatedItems(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "")
	result, err := engine.UserBased(ctx, "u1", 10)
	require.NoError(t, err)
	// never more than requested, never an already rated item
	assert.LessOrEqual(t, len(result.Scores), 10)
	assert.NotContains(t, itemIds(result.Scores), "a")
	assert.NotContains(t, itemIds(result.Scores), "b")
}

func TestUserBasedColdStart(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "")
	result, err := engine.UserBased(ctx, "unknown", 3)
	require.NoError(t, err)
	// the review count is a popularity proxy, labeled accordingly
	assert.Equal(t, LabelPopularity, result.Label)
	// ranked by review count, then mean rating, then id
	assert.Equal(t, []string{"c", "a", "d"}, itemIds(result.Scores))
	assert.Equal(t, 3.0, result.Scores[0].Score)
	assert.Equal(t, "Creekside Coffee", result.Scores[0].Name)
	// the displayed average comes from the reviews extract
	assert.InDelta(t, 14.0/3.0, result.Scores[0].AvgRating, 1e-9)
}

func TestUserBasedColdStartExcludesRated(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, "")
	// u4 has reviews but no similarity row: the fallback must not
	// resurface the items u4 already rated
	result, err := engine.UserBased(ctx, "u4", 3)
	require.NoError(t, err)
	assert.Equal(t, LabelPopularity, result.Label)
	assert.NotContains(t, itemIds(result.Scores), "c")
}
