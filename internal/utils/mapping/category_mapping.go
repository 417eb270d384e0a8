package mapping

import (
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	"github.com/taskforcepro/wallet_backend/internal/models"
)

// ToModelCategory converts a domain.Category for DB storage.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		UserID:      d.UserID,
		Name:        d.Name,
		ParentID:    d.ParentID,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainCategory converts a models.Category from the DB.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		UserID:      m.UserID,
		Name:        m.Name,
		ParentID:    m.ParentID,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainCategorySlice converts a slice of models.Category.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
