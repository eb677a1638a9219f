// Package recyclerrepo provides the read-side persistence mapping for the
// recycler aggregate. The workflow only resolves recyclers and their
// availability flag; administration happens elsewhere.
package recyclerrepo

import (
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/recycler"

	"github.com/google/uuid"
)

// RecyclerDTO represents the database structure for recycler rows.
type RecyclerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Available bool      `gorm:"not null;default:true"`
}

// TableName specifies the database table name for recycler entities.
func (RecyclerDTO) TableName() string {
	return "recyclers"
}

func toDomain(dto RecyclerDTO) (*recycler.Recycler, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return recycler.RestoreRecycler(id, dto.Name, dto.Available)
}
