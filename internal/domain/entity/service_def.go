package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceDef definición de un servicio vendible del catálogo
// (consulta, vacunación, cirugía, etc.).
type ServiceDef struct {
	ID        string
	Name      string
	BasePrice decimal.Decimal
	Category  string
	Active    bool // borrado lógico
	CreatedAt time.Time
	UpdatedAt time.Time
}
