package store

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/timshannon/bolthold"

	"streamvault/internal/models"
)

// All returns every stored record of a kind, ordered by title.
func (s *ContentStore) All(kind models.ContentKind) ([]models.ContentRecord, error) {
	var docs []contentDoc
	err := s.store.Find(&docs, bolthold.Where("Kind").Eq(kind).SortBy("Title"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", kind, err)
	}
	return docsToRecords(docs), nil
}

// Popular returns the records with the highest rating counts.
func (s *ContentStore) Popular(kind models.ContentKind, limit int) ([]models.ContentRecord, error) {
	var docs []contentDoc
	err := s.store.Find(&docs, bolthold.Where("Kind").Eq(kind).
		SortBy("RatingCount").Reverse().Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list popular %s records: %w", kind, err)
	}
	return docsToRecords(docs), nil
}

// TopRated returns the records with the highest rating values.
func (s *ContentStore) TopRated(kind models.ContentKind, limit int) ([]models.ContentRecord, error) {
	var docs []contentDoc
	err := s.store.Find(&docs, bolthold.Where("Kind").Eq(kind).
		SortBy("RatingValue").Reverse().Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list top rated %s records: %w", kind, err)
	}
	return docsToRecords(docs), nil
}

// ByGenre returns records whose genre names contain the given name,
// matched case-insensitively.
func (s *ContentStore) ByGenre(kind models.ContentKind, genreName string, limit int) ([]models.ContentRecord, error) {
	needle := strings.ToLower(genreName)

	var docs []contentDoc
	err := s.store.Find(&docs, bolthold.Where("Kind").Eq(kind).
		And("GenreNames").MatchFunc(func(ra *bolthold.RecordAccess) (bool, error) {
			names, ok := ra.Field().([]string)
			if !ok {
				return false, nil
			}
			for _, name := range names {
				if strings.Contains(strings.ToLower(name), needle) {
					return true, nil
				}
			}
			return false, nil
		}).Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records by genre: %w", kind, err)
	}
	return docsToRecords(docs), nil
}

// Search returns records of a kind whose title, synopsis, genres, cast
// or director contain the query, matched case-insensitively.
func (s *ContentStore) Search(kind models.ContentKind, query string, limit int) ([]models.ContentRecord, error) {
	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return nil, fmt.Errorf("failed to compile search pattern: %w", err)
	}

	var docs []contentDoc
	if err := s.store.Find(&docs, bolthold.Where("Kind").Eq(kind)); err != nil {
		return nil, fmt.Errorf("failed to search %s records: %w", kind, err)
	}

	matches := make([]models.ContentRecord, 0)
	for _, doc := range docs {
		if len(matches) >= limit {
			break
		}
		if matchesRecord(&doc.ContentRecord, pattern) {
			matches = append(matches, doc.ContentRecord)
		}
	}
	return matches, nil
}

// matchesRecord checks the searchable text fields against the pattern.
func matchesRecord(rec *models.ContentRecord, pattern *regexp.Regexp) bool {
	if pattern.MatchString(rec.Title) ||
		pattern.MatchString(rec.Synopsis) ||
		pattern.MatchString(rec.TopCast) ||
		pattern.MatchString(rec.Director) {
		return true
	}
	for _, genre := range rec.GenreNames {
		if pattern.MatchString(genre) {
			return true
		}
	}
	return false
}

// DistinctGenres returns the deduplicated, sorted genre names present
// across stored records of a kind.
func (s *ContentStore) DistinctGenres(kind models.ContentKind) ([]string, error) {
	var docs []contentDoc
	if err := s.store.Find(&docs, bolthold.Where("Kind").Eq(kind)); err != nil {
		return nil, fmt.Errorf("failed to list %s genres: %w", kind, err)
	}

	seen := make(map[string]bool)
	for _, doc := range docs {
		for _, genre := range doc.GenreNames {
			if strings.TrimSpace(genre) != "" {
				seen[genre] = true
			}
		}
	}

	genres := make([]string, 0, len(seen))
	for genre := range seen {
		genres = append(genres, genre)
	}
	sort.Strings(genres)
	return genres, nil
}

// docsToRecords strips the storage wrapper.
func docsToRecords(docs []contentDoc) []models.ContentRecord {
	records := make([]models.ContentRecord, len(docs))
	for i, doc := range docs {
		records[i] = doc.ContentRecord
	}
	return records
}
