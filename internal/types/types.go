// internal/types/types.go
package types

// EntityID: идентификатор сущности в мире (монстры, ресурсы, снаряды)
type EntityID uint64
