// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package build

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

// CacheName is the name of the build cache file in the project directory.
const CacheName = "osml.cache"

const bucketSources = "sources"

// cache records the modification time of every source file
// as of its last successful compilation.
// Keys are source paths relative to the source directory,
// slash-separated and without the .osml extension.
type cache struct {
	db *bolt.DB
}

// openCache opens the cache at path, creating it if necessary.
// A file that is not a valid cache is replaced with an empty one.
//
// If readOnly is true, the file is neither created nor modified
// and a missing cache is returned as nil,
// which treats every source as out of date.
func openCache(path string, readOnly bool) (*cache, error) {
	if readOnly {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		db, err := bolt.Open(path, 0o666, &bolt.Options{Timeout: time.Second, ReadOnly: true})
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		return &cache{db: db}, nil
	}

	db, err := bolt.Open(path, 0o666, &bolt.Options{Timeout: time.Second})
	if errors.Is(err, bolt.ErrInvalid) || errors.Is(err, bolt.ErrVersionMismatch) || errors.Is(err, bolt.ErrChecksum) {
		tracer().Infof("cache %s is unusable (%v); starting fresh", path, err)
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		db, err = bolt.Open(path, 0o666, &bolt.Options{Timeout: time.Second})
	}
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSources))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &cache{db: db}, nil
}

func (c *cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

func marshalTime(t time.Time) []byte {
	return []byte(strconv.FormatInt(t.UnixNano(), 10))
}

func unmarshalTime(data []byte) (time.Time, bool) {
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(0, n), true
}

// upToDate reports whether the source was last compiled
// when it had the given modification time.
func (c *cache) upToDate(name string, modTime time.Time) (bool, error) {
	if c == nil {
		return false, nil
	}
	var ok bool
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSources))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(name))
		if v == nil {
			return nil
		}
		cached, valid := unmarshalTime(v)
		ok = valid && cached.Equal(modTime)
		return nil
	})
	return ok, err
}

// record stores the modification time of a successfully compiled source.
func (c *cache) record(name string, modTime time.Time) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSources)).Put([]byte(name), marshalTime(modTime))
	})
}

// prune deletes the entries for sources not in keep
// and returns the number of entries deleted.
func (c *cache) prune(keep map[string]struct{}) (int, error) {
	n := 0
	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSources))
		var stale [][]byte
		cur := b.Cursor()
		for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
			if _, ok := keep[string(k)]; !ok {
				stale = append(stale, append([]byte(nil), k...))
			}
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		n = len(stale)
		return nil
	})
	return n, err
}
