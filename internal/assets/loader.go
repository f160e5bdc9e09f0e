// internal/assets/loader.go
package assets

import (
	"fmt"
	"path/filepath"
)

// FileLoader превращает функцию открытия файла в Loader: ключом служит путь
// относительно dir.
func FileLoader[T any](dir string, open func(path string) (T, error)) Loader[T] {
	return func(key string) (T, error) {
		path := filepath.Join(dir, key)
		value, err := open(path)
		if err != nil {
			return value, fmt.Errorf("failed to open %s: %w", path, err)
		}
		return value, nil
	}
}
