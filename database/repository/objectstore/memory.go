package objectstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryObject struct {
	data       []byte
	uploadedAt time.Time
}

// MemoryObjectStore is an in-memory ObjectStore used by tests and local
// development. Safe for concurrent use.
type MemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject

	// FailGets, when set, makes every Get return this error. Lets tests
	// exercise the transport-failure path as opposed to not-found.
	FailGets error
}

func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{objects: make(map[string]memoryObject)}
}

func (s *MemoryObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailGets != nil {
		return nil, s.FailGets
	}
	obj, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	data := make([]byte, len(obj.data))
	copy(data, obj.data)
	return data, nil
}

func (s *MemoryObjectStore) Put(ctx context.Context, key string, data []byte, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[key]; exists && !overwrite {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, key)
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[key] = memoryObject{data: stored, uploadedAt: time.Now().UTC()}
	return nil
}

func (s *MemoryObjectStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var infos []ObjectInfo
	for key, obj := range s.objects {
		if strings.HasPrefix(key, prefix) {
			infos = append(infos, ObjectInfo{
				Key:        key,
				Size:       int64(len(obj.data)),
				UploadedAt: obj.uploadedAt,
			})
		}
	}
	// Newest first, matching the mongo store's sort order.
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].UploadedAt.After(infos[j].UploadedAt)
	})
	return infos, nil
}

func (s *MemoryObjectStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[key]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(s.objects, key)
	return nil
}
