package usecase

import (
	"context"
	"fmt"
	"time"

	"velvet-vogue/internal/data/entity"
	"velvet-vogue/internal/data/repository"
	"velvet-vogue/internal/dto/request"
	"velvet-vogue/internal/dto/response"
	"velvet-vogue/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// featuredLimit caps the storefront's featured shelf.
const featuredLimit = 4

type CatalogService interface {
	List(ctx context.Context, category, search string) ([]response.ProductResponse, error)
	GetFeatured(ctx context.Context) ([]response.ProductResponse, error)
	GetByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	GetByCategory(ctx context.Context, category string) ([]response.ProductResponse, error)

	// Admin operations
	ListAll(ctx context.Context) ([]response.ProductResponse, error)
	Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	Update(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, productID string) error
}

type catalogService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewCatalogService(productRepo repository.ProductRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		log:         log,
	}
}

// List filters by exact category (sentinel "all" disables the filter) and by
// case-insensitive substring search over name or description. Both compose
// with AND. Results are ordered by name ascending.
func (s *catalogService) List(ctx context.Context, category, search string) ([]response.ProductResponse, error) {
	var categoryFilter, searchFilter *string
	if category != "" && category != entity.CategoryAll {
		categoryFilter = &category
	}
	if search != "" {
		searchFilter = &search
	}

	products, err := s.productRepo.FindAll(ctx, categoryFilter, searchFilter)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) GetFeatured(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindFeatured(ctx, featuredLimit)
	if err != nil {
		s.log.Error("Failed to get featured products", zap.Error(err))
		return nil, fmt.Errorf("get featured products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) GetByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product ID", utils.ErrValidation)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product", utils.ErrNotFound)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *catalogService) GetByCategory(ctx context.Context, category string) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindByCategory(ctx, category)
	if err != nil {
		s.log.Error("Failed to get products by category",
			zap.Error(err),
			zap.String("category", category))
		return nil, fmt.Errorf("get products by category: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) ListAll(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindAllAdmin(ctx)
	if err != nil {
		s.log.Error("Failed to list all products", zap.Error(err))
		return nil, fmt.Errorf("list all products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		Featured:    req.Featured,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// Update is a full replace of the editable fields.
func (s *catalogService) Update(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product ID", utils.ErrValidation)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	product := &entity.Product{
		Base:        entity.Base{ID: id},
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		Featured:    req.Featured,
	}

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("update product: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: product", utils.ErrNotFound)
	}

	s.log.Info("Product updated", zap.String("product_id", productID))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *catalogService) Delete(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("%w: invalid product ID", utils.ErrValidation)
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("delete product: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: product", utils.ErrNotFound)
	}

	return nil
}
