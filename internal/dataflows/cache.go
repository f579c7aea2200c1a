package dataflows

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CacheManager is a TTL file cache keyed by source, method and params.
// Entries are JSON files; expiry is checked against file mtime.
type CacheManager struct {
	cacheDir     string
	ttl          time.Duration
	cacheEnabled bool
}

func NewCacheManager(cacheDir string, ttl time.Duration, cacheEnabled bool) *CacheManager {
	return &CacheManager{
		cacheDir:     cacheDir,
		ttl:          ttl,
		cacheEnabled: cacheEnabled,
	}
}

func (cm *CacheManager) cacheKey(source, method string, params interface{}) string {
	data, _ := json.Marshal(params)
	hash := md5.Sum(data)
	return fmt.Sprintf("%s_%s_%x.json", source, method, hash)
}

// Get retrieves cached data if present and not expired.
func (cm *CacheManager) Get(source, method string, params interface{}, result interface{}) bool {
	if !cm.cacheEnabled {
		return false
	}

	filePath := filepath.Join(cm.cacheDir, cm.cacheKey(source, method, params))

	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	if time.Since(info.ModTime()) > cm.ttl {
		os.Remove(filePath)
		return false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, result) == nil
}

// Set stores data in the cache. A disabled cache is a no-op, not an error.
func (cm *CacheManager) Set(source, method string, params interface{}, data interface{}) error {
	if !cm.cacheEnabled {
		return nil
	}

	if err := os.MkdirAll(cm.cacheDir, 0o755); err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	filePath := filepath.Join(cm.cacheDir, cm.cacheKey(source, method, params))
	return os.WriteFile(filePath, jsonData, 0o644)
}
