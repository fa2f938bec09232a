// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
// Идентификаторы выдаются монотонно, поэтому меньший ID означает,
// что сущность появилась на поле раньше.
type EntityID uint64
