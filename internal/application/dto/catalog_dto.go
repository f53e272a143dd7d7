package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest alta de servicio del catálogo.
type CreateServiceRequest struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	Category  string          `json:"category,omitempty"`
}

// ServiceResponse servicio del catálogo en respuestas.
type ServiceResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	Category  string          `json:"category,omitempty"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateProductRequest alta de producto del catálogo.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ProductResponse producto del catálogo en respuestas.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
