// internal/utils/collections.go
package utils

// TrimOldest оставляет не более max последних элементов. Элементы хранятся
// в порядке добавления, поэтому удаляются самые старые.
func TrimOldest[T any](items []T, max int) []T {
	if max < 0 {
		max = 0
	}
	if len(items) <= max {
		return items
	}
	excess := len(items) - max
	// обнуляем хвост, чтобы не держать ссылки на удалённые элементы
	kept := copy(items, items[excess:])
	var zero T
	for i := kept; i < len(items); i++ {
		items[i] = zero
	}
	return items[:kept]
}

// RemoveIf удаляет элементы, для которых drop вернул true, сохраняя порядок.
func RemoveIf[T any](items []T, drop func(T) bool) []T {
	kept := items[:0]
	for _, item := range items {
		if !drop(item) {
			kept = append(kept, item)
		}
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
