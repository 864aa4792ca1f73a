package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	apperrors "streamvault/internal/errors"
	"streamvault/internal/models"
	"streamvault/pkg/logger"
)

// Resolver maps between the catalog's native numeric ID and the
// alternate rating-provider ID ("tt" + digits). Both directions are
// plain lookups with no caching; persisted records act as the cache.
type Resolver struct {
	client *Client
	logger logger.Logger
}

// NewResolver creates a Resolver on top of the catalog client.
func NewResolver(client *Client, log logger.Logger) *Resolver {
	return &Resolver{client: client, logger: log}
}

// RatingIDForCatalogID returns the rating-provider ID linked to a
// catalog ID, or an empty string when no linkage exists. A missing
// linkage is not an error.
func (r *Resolver) RatingIDForCatalogID(catalogID int64, kind models.ContentKind) (string, error) {
	path := fmt.Sprintf("/%s/%d/external_ids", kind.PathSegment(), catalogID)

	raw, err := r.client.FetchJSON(path, nil)
	if err != nil {
		var upstream *apperrors.UpstreamError
		if errors.As(err, &upstream) && upstream.Status == 404 {
			return "", nil
		}
		return "", err
	}

	var ids models.ExternalIDs
	if err := json.Unmarshal(raw, &ids); err != nil {
		return "", apperrors.NewUpstreamFailure("failed to decode external IDs", err)
	}

	return ids.IMDBID, nil
}

// CatalogIDForRatingID returns the catalog ID cross-referenced from a
// rating-provider ID, or zero when the provider knows no match of the
// requested kind. When the provider returns several matches the first
// one wins; the order is provider-defined.
func (r *Resolver) CatalogIDForRatingID(ratingID string, kind models.ContentKind) (int64, error) {
	raw, err := r.client.FetchJSON("/find/"+ratingID, url.Values{
		"external_source": {"imdb_id"},
	})
	if err != nil {
		var upstream *apperrors.UpstreamError
		if errors.As(err, &upstream) && upstream.Status == 404 {
			return 0, nil
		}
		return 0, err
	}

	var found models.FindResponse
	if err := json.Unmarshal(raw, &found); err != nil {
		return 0, apperrors.NewUpstreamFailure("failed to decode find response", err)
	}

	results := found.MovieResults
	if kind == models.KindSeries {
		results = found.TVResults
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].ID, nil
}
