package main

import (
	"github.com/dmitrymomot/sitekit/pkg/httpserver"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/site"
)

const (
	storePostgres = "postgres"
	storeMongo    = "mongo"
	storeFile     = "file"

	cacheMemory = "memory"
	cacheRedis  = "redis"
	cacheNone   = "none"
)

type appConfig struct {
	Store       string `env:"SITES_STORE" envDefault:"postgres"`             // Store selects the site store: postgres, mongo or file.
	File        string `env:"SITES_FILE" envDefault:"sites.yaml"`            // File is the YAML seed read by the file store.
	Table       string `env:"SITES_TABLE" envDefault:"sites"`                // Table is the sites table or collection name.
	Cache       string `env:"SITES_CACHE" envDefault:"memory"`               // Cache selects the host cache: memory, redis or none.
	CachePrefix string `env:"SITES_CACHE_PREFIX" envDefault:"sitekit:host:"` // CachePrefix namespaces Redis cache keys.

	Site   site.Config
	HTTP   httpserver.Config
	Logger logger.Config
}
