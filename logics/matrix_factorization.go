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

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/localrec/localrec/base/log"
	"github.com/localrec/localrec/dataset"
)

// SVD recommends the items with the highest predicted ratings from the
// precomputed latent-factor table. A user without reviews falls back to
// a popularity ranking with the mean rating as the predicted rating.
func (e *Engine) SVD(ctx context.Context, userId string, n int) (*Result, error) {
	reviews, err := e.store.Reviews(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	set := dataset.New(reviews)

	if !set.HasUser(userId) {
		log.Logger().Info("user has no reviews, recommending popular businesses",
			zap.String("user_id", userId))
		scores, err := e.popularByMean(set, n)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return &Result{Label: LabelPredictedRating, Scores: scores}, nil
	}
	log.Logger().Debug("user has reviews", zap.String("user_id", userId))

	predictions, err := e.store.Predictions(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	rated := set.RatedSet(userId)
	// Overfetch by the number of rated items so that n unrated
	// candidates remain after filtering.
	scores := make([]Score, 0, n)
	for _, entry := range predictions.Neighbors(userId, n+rated.Cardinality()) {
		if rated.Contains(entry.Id) {
			continue
		}
		scores = append(scores, Score{ItemId: entry.Id, Score: entry.Score})
		if len(scores) == n {
			break
		}
	}
	if err := e.enrich(scores); err != nil {
		return nil, errors.Trace(err)
	}
	return &Result{Label: LabelPredictedRating, Scores: scores}, nil
}
