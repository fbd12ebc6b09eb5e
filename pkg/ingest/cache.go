package ingest

import (
	"compress/gzip"
	"context"
	"encoding/gob"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/permclean/pkg/constants"
	"github.com/agentstation/permclean/pkg/errors"
	"github.com/agentstation/permclean/pkg/logging"
)

// ReadSource reads a source file, using a serialized raw-table cache in
// cacheDir when enabled (empty cacheDir disables caching). The cache is
// keyed by source base name and is purely an optimization: a corrupt or
// unreadable cache entry falls back to re-reading the source and is
// overwritten. Last write wins.
func ReadSource(ctx context.Context, path, cacheDir string) (*RawTable, error) {
	log := logging.FromContext(ctx)

	cachePath := ""
	if cacheDir != "" {
		base := filepath.Base(path)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		cachePath = filepath.Join(cacheDir, base+constants.CacheExt)

		if raw, err := readCache(cachePath); err == nil {
			log.Debug().Str("cache", cachePath).Msg("Loaded raw table from cache")
			return raw, nil
		} else if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("cache", cachePath).Msg("Ignoring unreadable cache entry")
		}
	}

	raw, err := ReadXLSX(path)
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		if err := writeCache(cachePath, raw); err != nil {
			log.Warn().Err(err).Str("cache", cachePath).Msg("Failed to write cache entry")
		}
	}
	return raw, nil
}

func readCache(path string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.WrapParse("gob", path, err)
	}
	defer zr.Close()

	var raw RawTable
	if err := gob.NewDecoder(zr).Decode(&raw); err != nil {
		return nil, errors.WrapParse("gob", path, err)
	}
	return &raw, nil
}

func writeCache(path string, raw *RawTable) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := gob.NewEncoder(zw).Encode(raw); err != nil {
		zw.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := zw.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
