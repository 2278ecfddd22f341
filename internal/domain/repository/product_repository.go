package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pos/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos (DIP).
// UpdateCost lo usa exclusivamente el caso de uso de costeo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByIDs(ids []string) (map[string]*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateCost(productID string, cost decimal.Decimal) error
	List(onlyAvailable bool, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
