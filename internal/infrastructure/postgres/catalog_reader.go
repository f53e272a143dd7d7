package postgres

import (
	"github.com/tu-usuario/vetclinic-pro/internal/application/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
)

var _ billing.CatalogReader = (*CatalogReader)(nil)

// CatalogReader adapta los repositorios de catálogo al puerto de solo lectura
// que consume la facturación.
type CatalogReader struct {
	services *ServiceDefRepo
	products *ProductDefRepo
}

// NewCatalogReader construye el adaptador de lectura de catálogo.
func NewCatalogReader(services *ServiceDefRepo, products *ProductDefRepo) *CatalogReader {
	return &CatalogReader{services: services, products: products}
}

// LookupService busca la definición de un servicio por ID.
func (c *CatalogReader) LookupService(id string) (*entity.ServiceDef, error) {
	return c.services.GetByID(id)
}

// LookupProduct busca la definición de un producto por ID.
func (c *CatalogReader) LookupProduct(id string) (*entity.ProductDef, error) {
	return c.products.GetByID(id)
}
