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

// Score labels. The cold-start fallback of the user-based strategy ranks
// by review count, which is a popularity proxy rather than a similarity,
// so its column is labeled separately instead of reusing "similarity".
const (
	LabelSimilarity      = "similarity"
	LabelPopularity      = "popularity"
	LabelPredictedRating = "predicted_rating"
)

// Score is one assembled recommendation row. Rows are constructed fresh
// per request and never persisted.
type Score struct {
	ItemId    string
	Score     float64
	Name      string
	AvgRating float64
}

// Result is an ordered recommendation list. Label names the semantics of
// the score column.
type Result struct {
	Label  string
	Scores []Score
}
