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
	"sort"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/localrec/localrec/base/log"
	"github.com/localrec/localrec/dataset"
)

// UserBased recommends items favored by users with similar tastes. The
// favorites of the most similar users accumulate their ratings per
// candidate item; a user absent from the similarity matrix falls back to
// a popularity ranking.
func (e *Engine) UserBased(ctx context.Context, userId string, n int) (*Result, error) {
	reviews, err := e.store.Reviews(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	userSim, err := e.store.UserSimilarity(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	set := dataset.New(reviews)
	rated := set.RatedSet(userId)

	if !userSim.Has(userId) {
		log.Logger().Info("user not found in similarity matrix, recommending popular businesses",
			zap.String("user_id", userId))
		scores, err := e.popularByCount(set, n, rated)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &Result{Label: LabelPopularity, Scores: scores}, nil
	}
	log.Logger().Debug("user found in similarity matrix", zap.String("user_id", userId))

	// Accumulate ratings of the neighbors' favorites per candidate item.
	// An item favored by multiple neighbors sums their ratings.
	total := make(map[string]float64)
	var order []string
	for _, neighbor := range userSim.Neighbors(userId, e.cfg.NumNeighbors) {
		for _, favorite := range set.Favorites(neighbor.Id, e.cfg.FavoriteThreshold) {
			if rated.Contains(favorite.ItemId) {
				continue
			}
			if _, exist := total[favorite.ItemId]; !exist {
				order = append(order, favorite.ItemId)
			}
			total[favorite.ItemId] += favorite.Rating
		}
	}
	candidates := make([]Score, 0, len(order))
	for _, itemId := range order {
		candidates = append(candidates, Score{ItemId: itemId, Score: total[itemId]})
	}
	// Equal scores keep first-seen order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	if err := e.enrich(candidates); err != nil {
		return nil, errors.Trace(err)
	}
	return &Result{Label: LabelSimilarity, Scores: candidates}, nil
}
