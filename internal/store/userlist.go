package store

import (
	"fmt"

	"github.com/timshannon/bolthold"

	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
	"streamvault/pkg/logger"
)

// ListStore holds each user's saved titles. Lists are created lazily on
// first add; absence of a list is never an error on read.
type ListStore struct {
	store  *bolthold.Store
	logger logger.Logger
}

// NewList creates a ListStore on an open bolthold store.
func NewList(store *bolthold.Store, log logger.Logger) *ListStore {
	return &ListStore{store: store, logger: log}
}

// GetList returns the user's list, or an empty list value when the
// user has none yet.
func (s *ListStore) GetList(userID string) (*models.UserList, error) {
	var list models.UserList
	err := s.store.Get(userID, &list)
	if err == bolthold.ErrNotFound {
		return &models.UserList{UserID: userID, Items: []models.UserListItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user list: %w", err)
	}
	return &list, nil
}

// AddItem appends an item to the user's list, creating the list on
// first use. Returns ErrDuplicateItem when an item with a matching
// catalog or rating ID is already present.
func (s *ListStore) AddItem(userID string, item models.UserListItem) (*models.UserList, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("userId", "user ID is required")
	}
	if !item.HasIdentifier() {
		return nil, apperrors.NewValidationError("item", "item carries neither a catalog ID nor a rating ID")
	}
	if item.Title == "" {
		return nil, apperrors.NewValidationError("title", "item title is required")
	}

	list, err := s.GetList(userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range list.Items {
		if existing.Matches(item.CatalogID, item.RatingID) {
			return nil, apperrors.ErrDuplicateItem
		}
	}

	list.Items = append(list.Items, item)
	if err := s.store.Upsert(userID, list); err != nil {
		return nil, fmt.Errorf("failed to save user list: %w", err)
	}

	s.logger.Debugf("[Lists] user %s saved %q (%d items)", userID, item.Title, len(list.Items))
	return list, nil
}

// RemoveItem removes every item matching either supplied identifier.
// Returns ErrNotFound when the list does not exist or nothing matched.
func (s *ListStore) RemoveItem(userID string, catalogID int64, ratingID string) (*models.UserList, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("userId", "user ID is required")
	}
	if catalogID == 0 && ratingID == "" {
		return nil, apperrors.NewValidationError("item", "either a catalog ID or a rating ID is required")
	}

	var list models.UserList
	err := s.store.Get(userID, &list)
	if err == bolthold.ErrNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user list: %w", err)
	}

	kept := make([]models.UserListItem, 0, len(list.Items))
	for _, item := range list.Items {
		if !item.Matches(catalogID, ratingID) {
			kept = append(kept, item)
		}
	}

	if len(kept) == len(list.Items) {
		return nil, apperrors.ErrNotFound
	}

	list.Items = kept
	if err := s.store.Upsert(userID, &list); err != nil {
		return nil, fmt.Errorf("failed to save user list: %w", err)
	}

	return &list, nil
}
