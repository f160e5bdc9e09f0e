// internal/assets/cache.go
package assets

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Status: состояние записи кэша
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Loader загружает ресурс по ключу. Вызывается из отдельной горутины.
type Loader[T any] func(key string) (T, error)

type entry[T any] struct {
	status Status
	value  T
	err    error
	done   chan struct{}
}

// Stats: сводка по кэшу
type Stats struct {
	Loaded  int
	Loading int
	Failed  int
}

// Cache хранит ресурсы (изображения, звуки) по ключу. Get никогда не
// блокирует кадр: пока ресурс грузится или если загрузка не удалась,
// возвращается заглушка. Неудачная загрузка не повторяется до Clear.
type Cache[T any] struct {
	mu          sync.Mutex
	entries     map[string]*entry[T]
	loader      Loader[T]
	placeholder T
	generation  int
}

func NewCache[T any](loader Loader[T], placeholder T) *Cache[T] {
	return &Cache[T]{
		entries:     make(map[string]*entry[T]),
		loader:      loader,
		placeholder: placeholder,
	}
}

// Get возвращает ресурс и true, если он загружен. Иначе заглушку и false;
// при первом обращении к ключу запускается фоновая загрузка.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		c.startLocked(key)
		return c.placeholder, false
	}
	if e.status != StatusLoaded {
		return c.placeholder, false
	}
	return e.value, true
}

// startLocked регистрирует ключ и запускает загрузку. mu должен быть захвачен.
func (c *Cache[T]) startLocked(key string) *entry[T] {
	e := &entry[T]{status: StatusLoading, done: make(chan struct{})}
	c.entries[key] = e
	gen := c.generation
	go c.load(key, e, gen)
	return e
}

func (c *Cache[T]) load(key string, e *entry[T], gen int) {
	value, err := c.loader(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer close(e.done)
	if gen != c.generation {
		// кэш очищен во время загрузки
		return
	}
	if err != nil {
		e.status = StatusFailed
		e.err = err
		log.Printf("Failed to load asset %q: %v", key, err)
		return
	}
	e.status = StatusLoaded
	e.value = value
}

// Status возвращает состояние ключа; false, если ключ ещё не запрашивали.
func (c *Cache[T]) Status(key string) (Status, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	return e.status, true
}

// IsCached сообщает, загружен ли ресурс.
func (c *Cache[T]) IsCached(key string) bool {
	s, ok := c.Status(key)
	return ok && s == StatusLoaded
}

// Preload запускает загрузку ключей. Канал получает одну ошибку (nil, если
// всё загрузилось) после завершения всех загрузок и закрывается.
func (c *Cache[T]) Preload(keys ...string) <-chan error {
	c.mu.Lock()
	pending := make([]*entry[T], 0, len(keys))
	for _, key := range keys {
		e, ok := c.entries[key]
		if !ok {
			e = c.startLocked(key)
		}
		pending = append(pending, e)
	}
	c.mu.Unlock()

	result := make(chan error, 1)
	go func() {
		defer close(result)
		var errs []error
		for i, e := range pending {
			<-e.done
			c.mu.Lock()
			if e.status == StatusFailed {
				errs = append(errs, fmt.Errorf("%s: %w", keys[i], e.err))
			}
			c.mu.Unlock()
		}
		result <- errors.Join(errs...)
	}()
	return result
}

// Clear забывает все записи. Незавершённые загрузки отбрасываются.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry[T])
	c.generation++
}

func (c *Cache[T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	var s Stats
	for _, e := range c.entries {
		switch e.status {
		case StatusLoaded:
			s.Loaded++
		case StatusLoading:
			s.Loading++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
