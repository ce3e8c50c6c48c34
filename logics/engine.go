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

// Package logics implements the three scoring strategies of the
// recommender: collaborative filtering by similar users, collaborative
// filtering by similar items, and latent-factor prediction. Every
// strategy degrades to a popularity ranking for cold-start users.
package logics

import (
	"context"

	"github.com/juju/errors"

	"github.com/localrec/localrec/config"
	"github.com/localrec/localrec/storage/data"
	"github.com/localrec/localrec/storage/meta"
)

// Strategy selects a scoring strategy.
type Strategy int

const (
	StrategyUserBased Strategy = iota + 1
	StrategyItemBased
	StrategySVD
)

// Engine serves recommendation requests one at a time. Artifacts are
// re-read from the store on every request, only the metadata catalog is
// shared read-only state.
type Engine struct {
	store    data.Store
	catalog  *meta.Catalog
	cfg      config.RecommendConfig
	backfill BackfillPolicy
}

func NewEngine(store data.Store, catalog *meta.Catalog, cfg config.RecommendConfig) (*Engine, error) {
	backfill, err := ParseBackfillPolicy(cfg.Backfill)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &Engine{
		store:    store,
		catalog:  catalog,
		cfg:      cfg,
		backfill: backfill,
	}, nil
}

// Recommend dispatches a request to a strategy.
func (e *Engine) Recommend(ctx context.Context, strategy Strategy, userId string, n int) (*Result, error) {
	if n <= 0 {
		return nil, errors.Errorf("number of recommendations must be positive, got %d", n)
	}
	switch strategy {
	case StrategyUserBased:
		return e.UserBased(ctx, userId, n)
	case StrategyItemBased:
		return e.ItemBased(ctx, userId, n)
	case StrategySVD:
		return e.SVD(ctx, userId, n)
	}
	return nil, errors.Errorf("unknown strategy %d", strategy)
}

// enrich fills the display name and average rating from the metadata
// catalog. A missing id aborts the request.
func (e *Engine) enrich(scores []Score) error {
	for i := range scores {
		business, err := e.catalog.Lookup(scores[i].ItemId)
		if err != nil {
			return errors.Trace(err)
		}
		scores[i].Name = business.Name
		scores[i].AvgRating = business.AvgRating
	}
	return nil
}

// enrichNames fills display names only, keeping the average rating
// already computed from the reviews extract.
func (e *Engine) enrichNames(scores []Score) error {
	for i := range scores {
		name, err := e.catalog.Name(scores[i].ItemId)
		if err != nil {
			return errors.Trace(err)
		}
		scores[i].Name = name
	}
	return nil
}
