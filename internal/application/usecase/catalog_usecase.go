package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/vetclinic-pro/internal/application/dto"
	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

// CatalogUseCase administración del catálogo de vendibles (servicios y productos).
// La facturación solo lee el catálogo; la administración vive aquí.
type CatalogUseCase struct {
	serviceRepo repository.ServiceDefRepository
	productRepo repository.ProductDefRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(serviceRepo repository.ServiceDefRepository, productRepo repository.ProductDefRepository) *CatalogUseCase {
	return &CatalogUseCase{serviceRepo: serviceRepo, productRepo: productRepo}
}

// CreateService da de alta un servicio.
func (uc *CatalogUseCase) CreateService(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	if !in.BasePrice.IsPositive() {
		return nil, fmt.Errorf("%w: el precio base debe ser positivo", domain.ErrInvalidInput)
	}
	now := time.Now()
	svc := &entity.ServiceDef{
		ID:        uuid.New().String(),
		Name:      in.Name,
		BasePrice: in.BasePrice,
		Category:  in.Category,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.serviceRepo.Create(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// ListServices lista los servicios activos.
func (uc *CatalogUseCase) ListServices(page dto.PageRequest) ([]*dto.ServiceResponse, error) {
	page.DefaultPage()
	services, err := uc.serviceRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

// GetService obtiene un servicio por ID.
func (uc *CatalogUseCase) GetService(id string) (*dto.ServiceResponse, error) {
	svc, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(svc), nil
}

// DeactivateService retira un servicio del catálogo (borrado lógico; las
// facturas ya emitidas conservan su snapshot).
func (uc *CatalogUseCase) DeactivateService(id string) error {
	svc, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if svc == nil {
		return domain.ErrNotFound
	}
	return uc.serviceRepo.Deactivate(id)
}

// CreateProduct da de alta un producto.
func (uc *CatalogUseCase) CreateProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	if !in.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: el precio unitario debe ser positivo", domain.ErrInvalidInput)
	}
	now := time.Now()
	p := &entity.ProductDef{
		ID:        uuid.New().String(),
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListProducts lista los productos activos.
func (uc *CatalogUseCase) ListProducts(page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetProduct obtiene un producto por ID.
func (uc *CatalogUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// DeactivateProduct retira un producto del catálogo (borrado lógico).
func (uc *CatalogUseCase) DeactivateProduct(id string) error {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Deactivate(id)
}

func toServiceResponse(s *entity.ServiceDef) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:        s.ID,
		Name:      s.Name,
		BasePrice: s.BasePrice,
		Category:  s.Category,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toProductResponse(p *entity.ProductDef) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
