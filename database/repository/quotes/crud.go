package quotesRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"azulpool/database/repository/objectstore"
	"azulpool/models"

	"github.com/google/uuid"
)

// QuotePrefix is the object-store prefix for quote records.
const QuotePrefix = "quotes/"

// quoteKey builds a timestamped key for a new quote record. The timestamp
// keeps the listing human-scannable; the uuid fragment avoids collisions when
// two quotes land in the same second.
func quoteKey(now time.Time) string {
	ts := now.UTC().Format(time.RFC3339)
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return fmt.Sprintf("%squote-%s-%s.json", QuotePrefix, ts, uuid.New().String()[:8])
}

// Create stores a new quote record and returns its key.
func (r *objectQuoteRepo) Create(ctx context.Context, record models.QuoteRecord) (string, error) {
	key := quoteKey(time.Now())
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal quote record: %w", err)
	}
	if err := r.objects.Put(ctx, key, data, false); err != nil {
		return "", err
	}
	return key, nil
}

// GetByKey returns the quote record stored at key.
func (r *objectQuoteRepo) GetByKey(ctx context.Context, key string) (*models.QuoteRecord, error) {
	data, err := r.objects.Get(ctx, key)
	if err != nil {
		if errors.Is(err, objectstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, key)
		}
		return nil, err
	}
	var record models.QuoteRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote record %s: %w", key, err)
	}
	return &record, nil
}

// Update replaces the quote record at key in full.
func (r *objectQuoteRepo) Update(ctx context.Context, key string, record models.QuoteRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quote record: %w", err)
	}
	return r.objects.Put(ctx, key, data, true)
}

// List returns metadata for all stored quotes, newest first.
func (r *objectQuoteRepo) List(ctx context.Context) ([]objectstore.ObjectInfo, error) {
	return r.objects.List(ctx, QuotePrefix+"quote-")
}

// FindByEmail returns every stored quote whose residential or commercial
// contact address matches, case-insensitively. Records that cannot be read or
// parsed are skipped rather than failing the whole request.
func (r *objectQuoteRepo) FindByEmail(ctx context.Context, email string) ([]QuoteMatch, error) {
	infos, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]QuoteMatch, 0)
	for _, info := range infos {
		data, err := r.objects.Get(ctx, info.Key)
		if err != nil {
			continue
		}
		var record models.QuoteRecord
		if err := json.Unmarshal(data, &record); err != nil {
			continue
		}
		if matchesEmail(&record, email) {
			matches = append(matches, QuoteMatch{
				Key:        info.Key,
				UploadedAt: info.UploadedAt,
				Record:     record,
			})
		}
	}
	return matches, nil
}

func matchesEmail(record *models.QuoteRecord, email string) bool {
	if record.Email != "" && strings.EqualFold(record.Email, email) {
		return true
	}
	return record.Commercial != nil && record.Commercial.Email != "" &&
		strings.EqualFold(record.Commercial.Email, email)
}

// DeleteByKey removes the quote record at key.
func (r *objectQuoteRepo) DeleteByKey(ctx context.Context, key string) error {
	err := r.objects.Delete(ctx, key)
	if errors.Is(err, objectstore.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrQuoteNotFound, key)
	}
	return err
}
