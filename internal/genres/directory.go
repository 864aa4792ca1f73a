// Package genres maintains the per-kind lookup from the catalog
// provider's numeric genre IDs to human-readable names.
package genres

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
	"streamvault/pkg/logger"
)

// CatalogFetcher is the slice of the catalog client the directory needs.
type CatalogFetcher interface {
	FetchJSON(path string, query url.Values) (json.RawMessage, error)
}

// Directory holds the genre ID to name mappings for both content
// kinds. Each kind's map is replaced wholesale under the write lock;
// readers never observe a partially updated mapping.
type Directory struct {
	client CatalogFetcher
	logger logger.Logger

	mu    sync.RWMutex
	names map[models.ContentKind]map[int64]string
}

// New creates an empty Directory. Load must succeed for both kinds
// before the directory is usable.
func New(client CatalogFetcher, log logger.Logger) *Directory {
	return &Directory{
		client: client,
		logger: log,
		names:  make(map[models.ContentKind]map[int64]string),
	}
}

// Load fetches the full genre list for one content kind and atomically
// replaces the in-memory mapping for that kind.
func (d *Directory) Load(kind models.ContentKind) error {
	path := fmt.Sprintf("/genre/%s/list", kind.PathSegment())

	raw, err := d.client.FetchJSON(path, nil)
	if err != nil {
		return fmt.Errorf("failed to load %s genres: %w", kind, err)
	}

	var list models.GenreListResponse
	if err := json.Unmarshal(raw, &list); err != nil {
		return apperrors.NewUpstreamFailure(fmt.Sprintf("failed to decode %s genre list", kind), err)
	}

	mapping := make(map[int64]string, len(list.Genres))
	for _, g := range list.Genres {
		mapping[g.ID] = g.Name
	}

	d.mu.Lock()
	d.names[kind] = mapping
	d.mu.Unlock()

	d.logger.Infof("[Genres] loaded %d %s genres", len(mapping), kind)
	return nil
}

// LoadAll loads both kinds. Genre data is a hard dependency: the caller
// treats any failure here as fatal at startup.
func (d *Directory) LoadAll() error {
	for _, kind := range []models.ContentKind{models.KindMovie, models.KindSeries} {
		if err := d.Load(kind); err != nil {
			return err
		}
	}
	return nil
}

// ResolveNames maps genre IDs to names for a kind. IDs with no match
// are omitted and input order is preserved. Never fails.
func (d *Directory) ResolveNames(ids []int64, kind models.ContentKind) []string {
	d.mu.RLock()
	mapping := d.names[kind]
	d.mu.RUnlock()

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := mapping[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// IDForName returns the genre ID whose name matches case-insensitively,
// for discovery queries keyed by genre name.
func (d *Directory) IDForName(name string, kind models.ContentKind) (int64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for id, genreName := range d.names[kind] {
		if strings.EqualFold(genreName, name) {
			return id, true
		}
	}
	return 0, false
}
