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

// BackfillPolicy decides what happens when fewer candidates than
// requested survive the quality filter of the item-based strategy.
type BackfillPolicy int

const (
	// BackfillReplace discards the surviving candidates and returns a
	// popularity list sized to the shortfall. This preserves the
	// original behavior of the tool.
	BackfillReplace BackfillPolicy = iota
	// BackfillMerge appends popularity picks to the survivors until the
	// requested count is reached.
	BackfillMerge
)

func ParseBackfillPolicy(name string) (BackfillPolicy, error) {
	switch name {
	case "", "replace":
		return BackfillReplace, nil
	case "merge":
		return BackfillMerge, nil
	}
	return BackfillReplace, errors.Errorf("unknown backfill policy %q", name)
}

// ItemBased recommends items similar to the user's favorites. Positive
// similarities accumulate per candidate item across all favorites, then
// candidates pass a quality filter on their average rating.
func (e *Engine) ItemBased(ctx context.Context, userId string, n int) (*Result, error) {
	reviews, err := e.store.Reviews(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	itemSim, err := e.store.ItemSimilarity(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	set := dataset.New(reviews)
	rated := set.RatedSet(userId)

	// A single accumulating map: the first encounter of an item and
	// every later encounter both add their similarity to the total.
	total := make(map[string]float64)
	var order []string
	for _, favorite := range set.Favorites(userId, e.cfg.FavoriteThreshold) {
		for _, entry := range itemSim.PositiveNeighbors(favorite.ItemId) {
			if rated.Contains(entry.Id) {
				continue
			}
			if _, exist := total[entry.Id]; !exist {
				order = append(order, entry.Id)
			}
			total[entry.Id] += entry.Score
		}
	}
	candidates := make([]Score, 0, len(order))
	for _, itemId := range order {
		candidates = append(candidates, Score{ItemId: itemId, Score: total[itemId]})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	// Overfetch so the quality filter has spares to drop.
	if overfetch := n * e.cfg.OverfetchFactor; len(candidates) > overfetch {
		candidates = candidates[:overfetch]
	}
	if err := e.enrich(candidates); err != nil {
		return nil, errors.Trace(err)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].AvgRating > candidates[j].AvgRating
	})
	survivors := candidates[:0]
	for _, candidate := range candidates {
		if candidate.AvgRating > e.cfg.QualityThreshold {
			survivors = append(survivors, candidate)
		}
	}
	if len(survivors) > n {
		survivors = survivors[:n]
	}
	if len(survivors) == n {
		return &Result{Label: LabelSimilarity, Scores: survivors}, nil
	}

	shortfall := n - len(survivors)
	log.Logger().Info("too few candidates survived the quality filter, backfilling with popular businesses",
		zap.String("user_id", userId), zap.Int("survivors", len(survivors)), zap.Int("shortfall", shortfall))
	switch e.backfill {
	case BackfillMerge:
		exclude := rated.Clone()
		for _, survivor := range survivors {
			exclude.Add(survivor.ItemId)
		}
		backfill, err := e.popularByCount(set, shortfall, exclude)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &Result{Label: LabelSimilarity, Scores: append(survivors, backfill...)}, nil
	default:
		// The survivors are discarded, the result is the shortfall-sized
		// popularity list alone.
		backfill, err := e.popularByCount(set, shortfall, rated)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &Result{Label: LabelSimilarity, Scores: backfill}, nil
	}
}
