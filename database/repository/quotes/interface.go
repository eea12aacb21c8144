package quotesRepo

import (
	"context"
	"errors"
	"time"

	"azulpool/database/repository/objectstore"
	"azulpool/models"
)

// ErrQuoteNotFound signals that no quote record exists at the given key.
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteMatch pairs a stored quote with its storage metadata. Returned by
// FindByEmail for data-access requests.
type QuoteMatch struct {
	Key        string             `json:"key"`
	UploadedAt time.Time          `json:"uploadedAt"`
	Record     models.QuoteRecord `json:"data"`
}

// QuoteRepository persists quote records as JSON documents in the object
// store under the "quotes/" prefix.
type QuoteRepository interface {
	Create(ctx context.Context, record models.QuoteRecord) (string, error)
	GetByKey(ctx context.Context, key string) (*models.QuoteRecord, error)
	Update(ctx context.Context, key string, record models.QuoteRecord) error
	List(ctx context.Context) ([]objectstore.ObjectInfo, error)
	FindByEmail(ctx context.Context, email string) ([]QuoteMatch, error)
	DeleteByKey(ctx context.Context, key string) error
}

type objectQuoteRepo struct {
	objects objectstore.ObjectStore
}

// NewObjectQuoteRepo returns a QuoteRepository over the given object store.
func NewObjectQuoteRepo(objects objectstore.ObjectStore) QuoteRepository {
	return &objectQuoteRepo{objects: objects}
}
