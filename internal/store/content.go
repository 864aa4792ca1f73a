package store

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/timshannon/bolthold"

	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
	"streamvault/pkg/logger"
)

// ratingIDPattern recognizes rating-provider identifiers ("tt" + digits).
var ratingIDPattern = regexp.MustCompile(`^tt\d+$`)

// contentDoc is the stored form of a ContentRecord. The key is derived
// from the identifiers known at insert time and never changes, even
// when a later sync learns the other identifier.
type contentDoc struct {
	Key string `boltholdKey:"Key"`
	models.ContentRecord
}

// ContentStore reconciles mapped catalog records against previously
// persisted ones. Lookups prefer the rating-provider ID, the more
// stable identifier, and fall back to the catalog ID.
type ContentStore struct {
	store  *bolthold.Store
	logger logger.Logger
}

// NewContent creates a ContentStore on an open bolthold store.
func NewContent(store *bolthold.Store, log logger.Logger) *ContentStore {
	return &ContentStore{store: store, logger: log}
}

// recordKey builds the storage key, preferring the rating ID.
func recordKey(rec *models.ContentRecord) string {
	if rec.RatingID != "" {
		return fmt.Sprintf("%s:%s", rec.Kind, rec.RatingID)
	}
	return fmt.Sprintf("%s:tmdb-%d", rec.Kind, rec.CatalogID)
}

// lookup finds a stored record by rating ID first, then catalog ID.
// A miss returns (nil, nil); only store failures return an error.
func (s *ContentStore) lookup(kind models.ContentKind, ratingID string, catalogID int64) (*contentDoc, error) {
	if ratingID != "" {
		var doc contentDoc
		err := s.store.FindOne(&doc, bolthold.Where("RatingID").Eq(ratingID).And("Kind").Eq(kind))
		if err == nil {
			return &doc, nil
		}
		if err != bolthold.ErrNotFound {
			return nil, fmt.Errorf("failed to look up record by rating ID: %w", err)
		}
	}

	if catalogID != 0 {
		var doc contentDoc
		err := s.store.FindOne(&doc, bolthold.Where("CatalogID").Eq(catalogID).And("Kind").Eq(kind))
		if err == nil {
			return &doc, nil
		}
		if err != bolthold.ErrNotFound {
			return nil, fmt.Errorf("failed to look up record by catalog ID: %w", err)
		}
	}

	return nil, nil
}

// insert persists a new record under its derived key. A concurrent
// insert of the same key resolves to the record that won.
func (s *ContentStore) insert(rec models.ContentRecord) (*models.ContentRecord, error) {
	doc := contentDoc{Key: recordKey(&rec), ContentRecord: rec}

	err := s.store.Insert(doc.Key, &doc)
	if err == bolthold.ErrKeyExists {
		s.logger.Warnf("[Store] concurrent insert for %q, keeping existing record", doc.Key)
		var existing contentDoc
		if getErr := s.store.Get(doc.Key, &existing); getErr == nil {
			return &existing.ContentRecord, nil
		}
		return nil, fmt.Errorf("failed to reload record after insert conflict: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}

	return &doc.ContentRecord, nil
}

// UpsertIfAbsent persists the record unless one already exists under
// either identifier, in which case the stored record is returned
// untouched. Listing paths use this: a page view must not clobber
// previously synced or curated data.
func (s *ContentStore) UpsertIfAbsent(rec *models.ContentRecord) (*models.ContentRecord, error) {
	if !rec.HasIdentifier() {
		return nil, apperrors.NewValidationError("identifier", "record carries neither a catalog ID nor a rating ID")
	}

	existing, err := s.lookup(rec.Kind, rec.RatingID, rec.CatalogID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &existing.ContentRecord, nil
	}

	return s.insert(*rec)
}

// UpsertMerge replaces a stored record's descriptive fields with the
// freshly mapped ones. The curated playable locator is preserved unless
// curatedOverride explicitly supplies a new value. Identifiers learned
// on either side are kept. Used by the detail path, which may refresh
// stale data.
func (s *ContentStore) UpsertMerge(rec *models.ContentRecord, curatedOverride *string) (*models.ContentRecord, error) {
	if !rec.HasIdentifier() {
		return nil, apperrors.NewValidationError("identifier", "record carries neither a catalog ID nor a rating ID")
	}

	existing, err := s.lookup(rec.Kind, rec.RatingID, rec.CatalogID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		fresh := *rec
		if curatedOverride != nil {
			fresh.PlayableLocator = *curatedOverride
		}
		return s.insert(fresh)
	}

	merged := *rec
	if merged.RatingID == "" {
		merged.RatingID = existing.RatingID
	}
	if merged.CatalogID == 0 {
		merged.CatalogID = existing.CatalogID
	}
	merged.PlayableLocator = existing.PlayableLocator
	if curatedOverride != nil {
		merged.PlayableLocator = *curatedOverride
	}

	existing.ContentRecord = merged
	if err := s.store.Update(existing.Key, existing); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	return &merged, nil
}

// SetPlayableLocator sets the curated locator on an existing record,
// located by rating ID when the external ID is rating-shaped and by
// catalog ID otherwise. Returns ErrNotFound when no record exists; it
// never creates one.
func (s *ContentStore) SetPlayableLocator(kind models.ContentKind, externalID, locator string) (*models.ContentRecord, error) {
	ratingID, catalogID, err := parseExternalID(externalID)
	if err != nil {
		return nil, err
	}

	existing, err := s.lookup(kind, ratingID, catalogID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrNotFound
	}

	existing.PlayableLocator = locator
	if err := s.store.Update(existing.Key, existing); err != nil {
		return nil, fmt.Errorf("failed to update playable locator: %w", err)
	}

	return &existing.ContentRecord, nil
}

// PlayableLocator returns the curated locator stored for the given
// identifiers, or an empty string when no record or locator exists.
func (s *ContentStore) PlayableLocator(kind models.ContentKind, ratingID string, catalogID int64) (string, error) {
	existing, err := s.lookup(kind, ratingID, catalogID)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", nil
	}
	return existing.PlayableLocator, nil
}

// FindByExternalID locates a stored record by either identifier space.
func (s *ContentStore) FindByExternalID(kind models.ContentKind, externalID string) (*models.ContentRecord, error) {
	ratingID, catalogID, err := parseExternalID(externalID)
	if err != nil {
		return nil, err
	}

	existing, err := s.lookup(kind, ratingID, catalogID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrNotFound
	}

	return &existing.ContentRecord, nil
}

// parseExternalID classifies an inbound identifier string: rating IDs
// match tt+digits, anything numeric is a catalog ID.
func parseExternalID(externalID string) (string, int64, error) {
	if ratingIDPattern.MatchString(externalID) {
		return externalID, 0, nil
	}
	catalogID, err := strconv.ParseInt(externalID, 10, 64)
	if err != nil {
		return "", 0, apperrors.NewValidationError("id", fmt.Sprintf("%q is neither a rating ID nor a catalog ID", externalID))
	}
	return "", catalogID, nil
}
