package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductDef definición de un producto vendible del catálogo
// (medicamentos, alimento, accesorios).
type ProductDef struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Active    bool // borrado lógico
	CreatedAt time.Time
	UpdatedAt time.Time
}
