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

// Package meta indexes the business metadata extract. The source is a
// gzip compressed line-delimited JSON file which is scanned once at open
// time to build an id index, instead of re-scanning it on every lookup.
package meta

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/localrec/localrec/base/log"
)

// Business is the displayable metadata of an item.
type Business struct {
	ItemId    string
	Name      string
	AvgRating float64
}

// Catalog is the read-only id index over the metadata extract. It is
// built once and shared for the lifetime of the process; rebuild by
// reopening when the artifact is replaced.
type Catalog struct {
	index map[string]Business
}

// Open scans the gzip line-delimited JSON metadata file and builds the
// catalog. The first record wins when an id occurs twice, matching the
// first-match semantics of a linear scan.
func Open(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "open metadata %s", path)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, errors.Trace(err)
	}
	bar := progressbar.DefaultBytes(info.Size(), "indexing metadata")
	gz, err := gzip.NewReader(io.TeeReader(f, bar))
	if err != nil {
		return nil, errors.Annotatef(err, "read metadata %s", path)
	}
	defer gz.Close()
	catalog, err := readCatalog(gz)
	if err != nil {
		return nil, errors.Annotatef(err, "read metadata %s", path)
	}
	_ = bar.Finish()
	log.Logger().Info("indexed metadata",
		zap.String("path", path),
		zap.Int("businesses", len(catalog.index)))
	return catalog, nil
}

// FromBusinesses builds a catalog from preloaded records.
func FromBusinesses(businesses []Business) *Catalog {
	catalog := &Catalog{index: make(map[string]Business, len(businesses))}
	for _, business := range businesses {
		catalog.insert(business)
	}
	return catalog
}

// Lookup returns the business record of an id. An absent id is a
// NotFound error, never a zero-valued record.
func (c *Catalog) Lookup(itemId string) (Business, error) {
	business, exist := c.index[itemId]
	if !exist {
		return Business{}, errors.NotFoundf("business %s", itemId)
	}
	return business, nil
}

// Name returns the display name of an item.
func (c *Catalog) Name(itemId string) (string, error) {
	business, err := c.Lookup(itemId)
	if err != nil {
		return "", errors.Trace(err)
	}
	return business.Name, nil
}

// AvgRating returns the average rating of an item.
func (c *Catalog) AvgRating(itemId string) (float64, error) {
	business, err := c.Lookup(itemId)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return business.AvgRating, nil
}

func (c *Catalog) insert(business Business) {
	if _, exist := c.index[business.ItemId]; !exist {
		c.index[business.ItemId] = business
	}
}

type record struct {
	GmapId    string  `json:"gmap_id"`
	ItemId    string  `json:"item_id"`
	Name      string  `json:"name"`
	AvgRating float64 `json:"avg_rating"`
}

func readCatalog(r io.Reader) (*Catalog, error) {
	catalog := &Catalog{index: make(map[string]Business)}
	decoder := json.NewDecoder(r)
	for {
		var rec record
		if err := decoder.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Trace(err)
		}
		id := rec.GmapId
		if id == "" {
			id = rec.ItemId
		}
		if id == "" {
			// records without an id cannot be looked up
			continue
		}
		catalog.insert(Business{ItemId: id, Name: rec.Name, AvgRating: rec.AvgRating})
	}
	return catalog, nil
}
