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

// Package dataset derives per-user and per-item views from the reviews
// extract. A dataset is built per request and never mutated afterwards.
package dataset

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/localrec/localrec/storage/data"
)

// Rating is a single (item, rating) pair of a user.
type Rating struct {
	ItemId string
	Rating float64
}

// ItemStats is the review count and mean rating of an item.
type ItemStats struct {
	ItemId string
	Count  int
	Mean   float64
}

type Dataset struct {
	byUser map[string][]Rating
	byItem map[string]*ItemStats
}

// New builds a dataset from the reviews extract. One rating per
// (user, item) pair is assumed, the first occurrence wins on duplicates.
func New(reviews []data.Review) *Dataset {
	d := &Dataset{
		byUser: make(map[string][]Rating),
		byItem: make(map[string]*ItemStats),
	}
	rated := make(map[string]mapset.Set[string])
	for _, review := range reviews {
		seen, exist := rated[review.UserId]
		if !exist {
			seen = mapset.NewThreadUnsafeSet[string]()
			rated[review.UserId] = seen
		}
		if !seen.Add(review.ItemId) {
			continue
		}
		d.byUser[review.UserId] = append(d.byUser[review.UserId], Rating{
			ItemId: review.ItemId,
			Rating: review.Rating,
		})
		stats, exist := d.byItem[review.ItemId]
		if !exist {
			stats = &ItemStats{ItemId: review.ItemId}
			d.byItem[review.ItemId] = stats
		}
		stats.Count++
		stats.Mean += review.Rating
	}
	for _, stats := range d.byItem {
		stats.Mean /= float64(stats.Count)
	}
	return d
}

// HasUser reports whether the user has any reviews.
func (d *Dataset) HasUser(userId string) bool {
	_, exist := d.byUser[userId]
	return exist
}

// UserRatings returns the ratings of a user sorted by rating in
// descending order. Items with equal ratings keep their review order.
func (d *Dataset) UserRatings(userId string) []Rating {
	ratings := make([]Rating, len(d.byUser[userId]))
	copy(ratings, d.byUser[userId])
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].Rating > ratings[j].Rating
	})
	return ratings
}

// Favorites returns the ratings of a user at or above the favorite
// threshold, sorted like UserRatings.
func (d *Dataset) Favorites(userId string, threshold float64) []Rating {
	ratings := d.UserRatings(userId)
	favorites := ratings[:0]
	for _, rating := range ratings {
		if rating.Rating >= threshold {
			favorites = append(favorites, rating)
		}
	}
	return favorites
}

// RatedSet returns the set of item ids rated by a user.
func (d *Dataset) RatedSet(userId string) mapset.Set[string] {
	rated := mapset.NewThreadUnsafeSet[string]()
	for _, rating := range d.byUser[userId] {
		rated.Add(rating.ItemId)
	}
	return rated
}

// Popular returns up to n items ranked by review count, then mean
// rating, then id.
func (d *Dataset) Popular(n int) []ItemStats {
	popular := make([]ItemStats, 0, len(d.byItem))
	for _, stats := range d.byItem {
		popular = append(popular, *stats)
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		if popular[i].Mean != popular[j].Mean {
			return popular[i].Mean > popular[j].Mean
		}
		return popular[i].ItemId < popular[j].ItemId
	})
	if n > 0 && len(popular) > n {
		popular = popular[:n]
	}
	return popular
}
