package adaptor

import (
	"encoding/json"
	"net/http"

	"velvet-vogue/internal/dto/request"
	"velvet-vogue/internal/usecase"
	"velvet-vogue/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewProductHandler(service usecase.CatalogService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// List handles GET /api/products with optional ?category= and ?search=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	products, err := h.service.List(r.Context(), query.Get("category"), query.Get("search"))
	if err != nil {
		writeServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// GetFeatured handles GET /api/products/featured
func (h *ProductHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetFeatured(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get featured products")
		return
	}

	utils.ResponseSuccess(w, "Featured products retrieved successfully", products)
}

// GetByID handles GET /api/products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		writeServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

// GetByCategory handles GET /api/products/category/{category}
func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		utils.ResponseBadRequest(w, "Category is required", nil)
		return
	}

	products, err := h.service.GetByCategory(r.Context(), category)
	if err != nil {
		writeServiceError(w, h.log, err, "get products by category")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// ListAll handles GET /api/admin/products
func (h *ProductHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list all products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// Create handles POST /api/admin/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", product)
}

// Update handles PUT /api/admin/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.Update(r.Context(), productID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", product)
}

// Delete handles DELETE /api/admin/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), productID); err != nil {
		writeServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}
