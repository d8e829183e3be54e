package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	MongoURI    string        `yaml:"mongo_uri"`
	MongoDBName string        `yaml:"mongo_db_name"`
	Admin       AdminConfig   `yaml:"admin"`
	Spam        SpamConfig    `yaml:"spam"`
	Feeds       []FeedSource  `yaml:"feeds"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AdminConfig bounds the admin console list views and bulk actions.
type AdminConfig struct {
	// MaxBulkSelection is the largest selection a bulk action accepts.
	// 0 이하면 제한 없음으로 간주한다.
	MaxBulkSelection int `yaml:"max_bulk_selection"`

	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// SpamConfig tunes the comment spam heuristics.
type SpamConfig struct {
	// Threshold is the score at or above which a new comment is filed as
	// spam instead of pending.
	Threshold int `yaml:"threshold"`

	// MaxLinks is the number of links tolerated before the link-density
	// signal starts scoring.
	MaxLinks int `yaml:"max_links"`

	BannedTerms []string `yaml:"banned_terms"`
}

// FeedSource is a single external news feed the platform imports from.
type FeedSource struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	RSSURL string `yaml:"rss_url"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.Admin.DefaultPageSize <= 0 {
		c.Admin.DefaultPageSize = 20
	}
	if c.Admin.MaxPageSize <= 0 {
		c.Admin.MaxPageSize = 100
	}
	if c.Spam.Threshold <= 0 {
		c.Spam.Threshold = 5
	}
	if c.Spam.MaxLinks <= 0 {
		c.Spam.MaxLinks = 2
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
