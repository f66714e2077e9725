package productrepo

import (
	"context"
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.PriceResolver using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// ResolvePrice runs one parameterized lookup for productID.
func (r *GormProductRepository) ResolvePrice(ctx context.Context, productID kernel.ProductID) (kernel.Money, error) {
	if err := productID.Validate(); err != nil {
		return kernel.ZeroMoney(), err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).Select("id", "price").Take(&dto, "id = ?", int64(productID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.ZeroMoney(), errs.NewPriceNotFoundError(int64(productID))
		}
		return kernel.ZeroMoney(), err
	}

	return dto.Price, nil
}
