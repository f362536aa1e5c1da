// Package where resolves the directories mydrama reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "MYDRAMA_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding mydrama.toml, favorites and history.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.MyDrama))
}

// Cache falls back to ./cache when the platform has no cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.MyDrama))
}

func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Store is the directory of the file storage backend.
func Store() string {
	return ensureDir(filepath.Join(Config(), "store"))
}

// Database is the SQLite file of the sqlite storage backend.
func Database() string {
	return filepath.Join(Config(), constant.MyDrama+".db")
}

// Queries is the file of remembered search queries.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp holds the mpv IPC sockets.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.MyDrama))
}
