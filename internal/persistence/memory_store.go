// internal/persistence/memory_store.go
package persistence

import (
	"fmt"
	"sync"
	"time"
)

// MemoryStore держит сохранения в памяти. Используется, когда каталог
// сохранений недоступен, и в тестах.
type MemoryStore struct {
	mutex    sync.RWMutex
	progress map[string]*Progress
	runs     map[string]*RunSnapshot
	latest   string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		progress: make(map[string]*Progress),
		runs:     make(map[string]*RunSnapshot),
	}
}

func (ms *MemoryStore) SaveProgress(progress *Progress) error {
	if progress.ProfileID == "" {
		return fmt.Errorf("progress without profile id")
	}
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	p := progress.Clone()
	p.UpdatedAt = time.Now().UTC()
	ms.progress[p.ProfileID] = p
	ms.latest = p.ProfileID
	return nil
}

func (ms *MemoryStore) LoadProgress(profileID string) (*Progress, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	p, ok := ms.progress[profileID]
	if !ok {
		return nil, fmt.Errorf("progress %s: %w", profileID, ErrNotFound)
	}
	return p.Clone(), nil
}

func (ms *MemoryStore) LatestProgress() (*Progress, error) {
	ms.mutex.RLock()
	latest := ms.latest
	ms.mutex.RUnlock()
	if latest == "" {
		return nil, fmt.Errorf("latest progress: %w", ErrNotFound)
	}
	return ms.LoadProgress(latest)
}

func (ms *MemoryStore) SaveRun(run *RunSnapshot) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	r := run.clone()
	r.SavedAt = time.Now().UTC()
	ms.runs[r.ProfileID] = r
	return nil
}

func (ms *MemoryStore) LoadRun(profileID string) (*RunSnapshot, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	r, ok := ms.runs[profileID]
	if !ok {
		return nil, fmt.Errorf("run of %s: %w", profileID, ErrNotFound)
	}
	return r.clone(), nil
}

func (ms *MemoryStore) Close() error {
	return nil
}
