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
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/localrec/localrec/dataset"
)

// popularByCount returns up to n of the most reviewed items, scored by
// review count with the mean rating as the displayed average. Items in
// the exclude set are skipped so that a backfill for a known user never
// resurfaces something the user already rated.
func (e *Engine) popularByCount(set *dataset.Dataset, n int, exclude mapset.Set[string]) ([]Score, error) {
	scores := make([]Score, 0, n)
	for _, stats := range set.Popular(0) {
		if exclude != nil && exclude.Contains(stats.ItemId) {
			continue
		}
		scores = append(scores, Score{
			ItemId:    stats.ItemId,
			Score:     float64(stats.Count),
			AvgRating: stats.Mean,
		})
		if len(scores) == n {
			break
		}
	}
	if err := e.enrichNames(scores); err != nil {
		return nil, errors.Trace(err)
	}
	return scores, nil
}

// popularByMean returns up to n of the most reviewed items, scored by
// their mean rating. The ranking is still by review count, the count
// column is dropped from the output. Name and average rating come from
// the metadata catalog.
func (e *Engine) popularByMean(set *dataset.Dataset, n int) ([]Score, error) {
	scores := lo.Map(set.Popular(n), func(stats dataset.ItemStats, _ int) Score {
		return Score{ItemId: stats.ItemId, Score: stats.Mean}
	})
	if err := e.enrich(scores); err != nil {
		return nil, errors.Trace(err)
	}
	return scores, nil
}
