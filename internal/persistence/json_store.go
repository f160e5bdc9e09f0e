// internal/persistence/json_store.go
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// JSONStore хранит сохранения в локальном JSON-файле
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *JSONData
}

// JSONData: структура файла сохранений
type JSONData struct {
	Latest   string                  `json:"latest"`
	Progress map[string]*Progress    `json:"progress"`
	Runs     map[string]*RunSnapshot `json:"runs"`
}

// NewJSONStore открывает файл сохранений или создаёт его.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data:     emptyData(),
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create save directory: %w", err)
		}
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store file: %w", err)
		}
	}
	return store, nil
}

func emptyData() *JSONData {
	return &JSONData{
		Progress: make(map[string]*Progress),
		Runs:     make(map[string]*RunSnapshot),
	}
}

func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	data := emptyData()
	if err := json.Unmarshal(file, data); err != nil {
		return err
	}
	if data.Progress == nil {
		data.Progress = make(map[string]*Progress)
	}
	if data.Runs == nil {
		data.Runs = make(map[string]*RunSnapshot)
	}
	js.data = data
	return nil
}

// saveToFile пишет во временный файл и переименовывает его
func (js *JSONStore) saveToFile() error {
	js.mutex.RLock()
	data, err := json.MarshalIndent(js.data, "", "  ")
	js.mutex.RUnlock()
	if err != nil {
		return err
	}

	tmp := js.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, js.filePath)
}

func (js *JSONStore) SaveProgress(progress *Progress) error {
	if progress.ProfileID == "" {
		return fmt.Errorf("progress without profile id")
	}
	p := progress.Clone()
	p.UpdatedAt = time.Now().UTC()

	js.mutex.Lock()
	js.data.Progress[p.ProfileID] = p
	js.data.Latest = p.ProfileID
	js.mutex.Unlock()

	if err := js.saveToFile(); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (js *JSONStore) LoadProgress(profileID string) (*Progress, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	p, exists := js.data.Progress[profileID]
	if !exists {
		return nil, fmt.Errorf("progress %s: %w", profileID, ErrNotFound)
	}
	return p.Clone(), nil
}

func (js *JSONStore) LatestProgress() (*Progress, error) {
	js.mutex.RLock()
	latest := js.data.Latest
	js.mutex.RUnlock()
	if latest == "" {
		return nil, fmt.Errorf("latest progress: %w", ErrNotFound)
	}
	return js.LoadProgress(latest)
}

func (js *JSONStore) SaveRun(run *RunSnapshot) error {
	r := run.clone()
	r.SavedAt = time.Now().UTC()

	js.mutex.Lock()
	js.data.Runs[r.ProfileID] = r
	js.mutex.Unlock()

	if err := js.saveToFile(); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

func (js *JSONStore) LoadRun(profileID string) (*RunSnapshot, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	r, exists := js.data.Runs[profileID]
	if !exists {
		return nil, fmt.Errorf("run of %s: %w", profileID, ErrNotFound)
	}
	return r.clone(), nil
}

// Close does nothing for the JSON store
func (js *JSONStore) Close() error {
	return nil
}
