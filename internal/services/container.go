// Package services provides the dependency injection container wiring
// the catalog core together.
package services

import (
	"github.com/timshannon/bolthold"

	"streamvault/internal/cache"
	"streamvault/internal/genres"
	"streamvault/internal/mapper"
	"streamvault/internal/store"
	"streamvault/internal/tmdb"
	"streamvault/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	TMDB     *tmdb.Client
	Resolver *tmdb.Resolver
	Genres   *genres.Directory
	Mapper   *mapper.Mapper
	Content  *store.ContentStore
	Lists    *store.ListStore
	Cache    *cache.LRUCache
	Logger   logger.Logger
}

// New wires the full service graph on top of an open document store.
// The mapper reads curated locators back out of the content store so a
// re-sync sees previously curated fields.
func New(apiKey, language string, db *bolthold.Store, memCache *cache.LRUCache, log logger.Logger) *Container {
	client := tmdb.NewClient(apiKey, language, log)
	resolver := tmdb.NewResolver(client, log)
	directory := genres.New(client, log)
	contentStore := store.NewContent(db, log)

	return &Container{
		TMDB:     client,
		Resolver: resolver,
		Genres:   directory,
		Mapper:   mapper.New(directory, resolver, contentStore, log),
		Content:  contentStore,
		Lists:    store.NewList(db, log),
		Cache:    memCache,
		Logger:   log,
	}
}
