package recyclerrepo

import (
	"context"
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/recycler"
	"recycling/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecyclerRepository implements RecyclerRepository using GORM.
type GormRecyclerRepository struct {
	db *gorm.DB
}

// NewGormRecyclerRepository creates a new GORM recycler repository.
func NewGormRecyclerRepository(db *gorm.DB) *GormRecyclerRepository {
	return &GormRecyclerRepository{db: db}
}

// Get retrieves a recycler by ID.
func (r *GormRecyclerRepository) Get(ctx context.Context, id kernel.UUID) (*recycler.Recycler, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecyclerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recycler", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
