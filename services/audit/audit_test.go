package audit

import (
	"context"
	"strings"
	"testing"
	"time"

	"azulpool/database/repository/objectstore"
)

func TestRecordGeneratesIDAndTimestamp(t *testing.T) {
	store := objectstore.NewMemoryObjectStore()
	rec := NewRecorder(store)
	ctx := context.Background()

	if err := rec.Record(ctx, Event{Type: EventAccess, Email: "dana@example.com", Success: true}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	infos, err := rec.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("stored %d events, want 1", len(infos))
	}
	if !strings.HasPrefix(infos[0].Key, AuditPrefix) {
		t.Errorf("key = %q, want %q prefix", infos[0].Key, AuditPrefix)
	}
}

func TestRecordAcceptsShortCallerID(t *testing.T) {
	store := objectstore.NewMemoryObjectStore()
	rec := NewRecorder(store)
	ctx := context.Background()

	// Caller-supplied IDs shorter than the usual uuid fragment must not
	// break key derivation.
	if err := rec.Record(ctx, Event{ID: "ab", Type: EventConfigChange, Success: true}); err != nil {
		t.Fatalf("Record with short ID: %v", err)
	}

	infos, err := rec.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("stored %d events, want 1", len(infos))
	}
	if !strings.HasSuffix(infos[0].Key, "-ab.json") {
		t.Errorf("key = %q, want the short ID as the fragment", infos[0].Key)
	}
}

func TestRecordedEventsAreImmutable(t *testing.T) {
	store := objectstore.NewMemoryObjectStore()
	rec := NewRecorder(store)
	ctx := context.Background()

	event := Event{ID: "fixed-id-123", Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	if err := rec.Record(ctx, event); err != nil {
		t.Fatalf("Record: %v", err)
	}
	// Same ID in the same second lands on the same key; the create-only put
	// must refuse to overwrite.
	err := rec.Record(ctx, event)
	if err == nil {
		t.Fatal("second Record on the same key succeeded, want refusal")
	}
}
