// Package cache keeps the last catalog bodies downloaded, so the browser can
// start when the catalog host is unreachable.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/mydrama-tv/mydrama/filesystem"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/where"
)

// DefaultTTL is used when a non-positive ttl is given.
const DefaultTTL = 7 * 24 * time.Hour

func dir() string {
	path := filepath.Join(where.Cache(), "catalog")
	_ = filesystem.API().MkdirAll(path, os.ModePerm)
	return path
}

// Key names the entry of a catalog url.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:]) + ".json"
}

// Read returns the body saved under key unless it is older than ttl.
func Read(key string, ttl time.Duration) ([]byte, bool) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	path := filepath.Join(dir(), key)
	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > ttl {
		return nil, false
	}

	body, err := filesystem.API().ReadFile(path)
	if err != nil {
		log.Debugf("cache: read %s: %s", key, err)
		return nil, false
	}
	return body, true
}

// Write replaces the entry of key. Readers never see a partial body.
func Write(key string, body []byte) error {
	path := filepath.Join(dir(), key)
	tmp := path + ".tmp"

	if err := filesystem.API().WriteFile(tmp, body, 0o644); err != nil {
		return err
	}
	return filesystem.API().Rename(tmp, path)
}

// CollectGarbage removes entries older than ttl.
func CollectGarbage(ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	fs := filesystem.API()
	_ = fs.Walk(dir(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > ttl {
			log.Debugf("cache: removing expired %s", filepath.Base(path))
			_ = fs.Remove(path)
		}
		return nil
	})
}
