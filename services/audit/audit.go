// File: azulpool/services/audit/audit.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"azulpool/database/repository/objectstore"

	"github.com/google/uuid"
)

// AuditPrefix is the object-store prefix for audit events.
const AuditPrefix = "audit-logs/"

// Event types recorded by the admin console.
const (
	EventAccess          = "access"
	EventDeletionRequest = "deletion_request"
	EventConfigChange    = "config_change"
)

// Event is a single append-only audit entry.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Email     string    `json:"email,omitempty"`
	Key       string    `json:"key,omitempty"`
	IP        string    `json:"ip,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// Recorder writes audit events to the object store, one object per event.
type Recorder struct {
	Objects objectstore.ObjectStore
}

// NewRecorder returns a Recorder over the given object store.
func NewRecorder(objects objectstore.ObjectStore) *Recorder {
	return &Recorder{Objects: objects}
}

// Record persists a single event. Events are immutable once written.
func (r *Recorder) Record(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	data, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}
	ts := strings.NewReplacer(":", "-", ".", "-").Replace(event.Timestamp.Format(time.RFC3339))
	fragment := event.ID
	if len(fragment) > 8 {
		fragment = fragment[:8]
	}
	key := fmt.Sprintf("%s%s-%s.json", AuditPrefix, ts, fragment)
	return r.Objects.Put(ctx, key, data, false)
}

// List returns metadata for all stored audit events, newest first.
func (r *Recorder) List(ctx context.Context) ([]objectstore.ObjectInfo, error) {
	return r.Objects.List(ctx, AuditPrefix)
}
