// Package config holds the assistant configuration and the flat-file
// project layout every command resolves its stores through.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// MarkerDir names the directory whose presence marks a project root.
const MarkerDir = ".tradeassist"

type Config struct {
	ProjectDir   string `json:"project_dir"`
	DataDir      string `json:"data_dir"`
	DataCacheDir string `json:"data_cache_dir"`

	WatchlistPath string `json:"watchlist_path"`
	TradeLogPath  string `json:"trade_log_path"`
	PricesDir     string `json:"prices_dir"`
	NewsDir       string `json:"news_dir"`
	SkillsDir     string `json:"skills_dir"`
	HistoryDBPath string `json:"history_db_path"`

	// External messaging client reached over subprocess.
	BridgeClientPath  string `json:"bridge_client_path"`
	BridgeSessionPath string `json:"bridge_session_path"`

	CacheEnabled   bool `json:"cache_enabled"`
	HistoryEnabled bool `json:"history_enabled"`
}

func DefaultConfig() *Config {
	root, err := FindProjectRoot()
	if err != nil {
		root, _ = os.Getwd()
	}
	return DefaultConfigWithRoot(root)
}

func DefaultConfigWithRoot(root string) *Config {
	dataDir := filepath.Join(root, "data")

	return &Config{
		ProjectDir:   root,
		DataDir:      dataDir,
		DataCacheDir: filepath.Join(dataDir, "cache"),

		WatchlistPath: filepath.Join(dataDir, "watchlist.json"),
		TradeLogPath:  filepath.Join(dataDir, "trade_log.csv"),
		PricesDir:     filepath.Join(dataDir, "prices"),
		NewsDir:       filepath.Join(dataDir, "news"),
		SkillsDir:     filepath.Join(root, "skills"),
		HistoryDBPath: filepath.Join(dataDir, "history.db"),

		BridgeClientPath:  "messaging-client",
		BridgeSessionPath: filepath.Join(dataDir, "messaging_session.json"),

		CacheEnabled:   true,
		HistoryEnabled: true,
	}
}

func (c *Config) Validate() error {
	if c.ProjectDir == "" {
		return fmt.Errorf("project_dir is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.DataCacheDir == "" {
		return fmt.Errorf("data_cache_dir is required")
	}
	return nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.DataDir,
		c.DataCacheDir,
		c.PricesDir,
		c.NewsDir,
		c.SkillsDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// LoadEnv loads a .env file from the project root if one exists.
// A missing file is not an error; the environment simply stays as-is.
func LoadEnv(root string) error {
	path := filepath.Join(root, ".env")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}
