// github.com/clipforge/svgmeta - RDF licensing metadata for SVG clip art
// Copyright (C) 2026  The svgmeta authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"fmt"
	"os"

	bolt "go.etcd.io/bbolt"
)

var cacheBucket = []byte("validated")

// A resultCache remembers which files already passed validation, keyed by
// path with a size+mtime fingerprint.  Editing a file invalidates its
// entry.
type resultCache struct {
	db *bolt.DB
}

func openResultCache(path string) (*resultCache, error) {
	db, err := bolt.Open(path, 0o644, nil)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cacheBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &resultCache{db: db}, nil
}

func (c *resultCache) Close() error {
	return c.db.Close()
}

// Seen reports whether the file validated before and is unchanged since.
func (c *resultCache) Seen(path string) bool {
	fp, err := fingerprint(path)
	if err != nil {
		return false
	}
	seen := false
	c.db.View(func(tx *bolt.Tx) error {
		if string(tx.Bucket(cacheBucket).Get([]byte(path))) == fp {
			seen = true
		}
		return nil
	})
	return seen
}

// Mark records the file's current fingerprint as validated.
func (c *resultCache) Mark(path string) error {
	fp, err := fingerprint(path)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cacheBucket).Put([]byte(path), []byte(fp))
	})
}

func fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%d", info.Size(), info.ModTime().UnixNano()), nil
}
