// internal/persistence/synced_store.go
package persistence

import (
	"context"
	"log"
	"sync"
	"time"
)

// SyncedStore: локальное хранилище с отправкой прогресса в облако.
// Локальное сохранение синхронное, отправка идёт в фоне; ошибки облака
// только логируются.
type SyncedStore struct {
	Storage
	cloud   *CloudClient
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewSyncedStore(local Storage, cloud *CloudClient, timeout time.Duration) *SyncedStore {
	return &SyncedStore{Storage: local, cloud: cloud, timeout: timeout}
}

func (s *SyncedStore) SaveProgress(progress *Progress) error {
	if err := s.Storage.SaveProgress(progress); err != nil {
		return err
	}
	if !s.cloud.Authenticated() {
		return nil
	}

	p := progress.Clone()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.cloud.Push(ctx, p); err != nil {
			log.Printf("Cloud sync failed: %v", err)
		}
	}()
	return nil
}

// Pull забирает прогресс из облака и сохраняет его локально.
func (s *SyncedStore) Pull(ctx context.Context) (*Progress, error) {
	p, err := s.cloud.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if p.ProfileID == "" {
		p.ProfileID = NewID()
	}
	if err := s.Storage.SaveProgress(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Close дожидается фоновых отправок и закрывает локальное хранилище.
func (s *SyncedStore) Close() error {
	s.wg.Wait()
	return s.Storage.Close()
}
