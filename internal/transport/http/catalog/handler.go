package catalog

import (
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tkoval/catalog-service/internal/app/catalog/dto"
)

// Handler is the HTTP resource layer: it parses request parameters,
// enforces the admin role on mutating endpoints, and maps service
// outcomes to status codes. All business rules live in the services.
type Handler struct {
	products   ProductService
	categories CategoryService
	log        *logrus.Logger
}

func NewHandler(products ProductService, categories CategoryService, log *logrus.Logger) *Handler {
	return &Handler{products: products, categories: categories, log: log}
}

// RegisterRoutes mounts the catalog endpoints. The admin middleware gates
// every mutating route.
func (h *Handler) RegisterRoutes(router gin.IRouter, admin gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", h.searchProducts)
		products.GET("/:id", h.getProduct)
		products.POST("", admin, h.createProduct)
		products.PUT("/:id", admin, h.updateProduct)
		products.DELETE("/:id", admin, h.deleteProduct)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.POST("", admin, h.createCategory)
		categories.PUT("/:id", admin, h.updateCategory)
		categories.DELETE("/:id", admin, h.deleteCategory)
	}
}

// Products

func (h *Handler) searchProducts(c *gin.Context) {
	name := c.DefaultQuery("name", "")

	// "0" is the historical no-filter sentinel; identifiers are never 0.
	categoryID, err := strconv.ParseInt(c.DefaultQuery("categoryId", "0"), 10, 64)
	if err != nil || categoryID < 0 {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid categoryId")
		return
	}

	page, err := h.products.Search(c.Request.Context(), name, categoryID, parsePageRequest(c))
	if err != nil {
		h.log.Errorf("product search failed: %v", err)
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid product id")
		return
	}

	out, err := h.products.FindByID(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) createProduct(c *gin.Context) {
	var d dto.ProductDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid request body: "+err.Error())
		return
	}
	if msg, ok := validateProductDTO(d); !ok {
		writeError(c, http.StatusUnprocessableEntity, "Validation error", msg)
		return
	}

	out, err := h.products.Insert(c.Request.Context(), d)
	if err != nil {
		h.log.Errorf("product insert failed: %v", err)
		mapServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/products/%d", out.ID))
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid product id")
		return
	}

	var d dto.ProductDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid request body: "+err.Error())
		return
	}
	if msg, ok := validateProductDTO(d); !ok {
		writeError(c, http.StatusUnprocessableEntity, "Validation error", msg)
		return
	}

	out, err := h.products.Update(c.Request.Context(), id, d)
	if err != nil {
		h.log.Errorf("product update failed for id %d: %v", id, err)
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid product id")
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnf("product delete failed for id %d: %v", id, err)
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories

func (h *Handler) listCategories(c *gin.Context) {
	page, err := h.categories.FindAll(c.Request.Context(), parsePageRequest(c))
	if err != nil {
		h.log.Errorf("category list failed: %v", err)
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) getCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid category id")
		return
	}

	out, err := h.categories.FindByID(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) createCategory(c *gin.Context) {
	var d dto.CategoryDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(d.Name) == "" {
		writeError(c, http.StatusUnprocessableEntity, "Validation error", "name is required")
		return
	}

	out, err := h.categories.Insert(c.Request.Context(), d)
	if err != nil {
		h.log.Errorf("category insert failed: %v", err)
		mapServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/categories/%d", out.ID))
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) updateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid category id")
		return
	}

	var d dto.CategoryDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(d.Name) == "" {
		writeError(c, http.StatusUnprocessableEntity, "Validation error", "name is required")
		return
	}

	out, err := h.categories.Update(c.Request.Context(), id, d)
	if err != nil {
		h.log.Errorf("category update failed for id %d: %v", id, err)
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "Bad request", "invalid category id")
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnf("category delete failed for id %d: %v", id, err)
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// validateProductDTO enforces the boundary schema: required name, a
// parseable non-negative decimal price. Price is checked with big.Rat,
// the same parser the service uses, so nothing that passes here (NaN,
// Inf) can fail deeper as an internal error.
func validateProductDTO(d dto.ProductDTO) (string, bool) {
	if strings.TrimSpace(d.Name) == "" {
		return "name is required", false
	}
	if strings.TrimSpace(d.Price) == "" {
		return "price is required", false
	}
	price, ok := new(big.Rat).SetString(strings.TrimSpace(d.Price))
	if !ok {
		return "price must be a decimal number", false
	}
	if price.Sign() < 0 {
		return "price must not be negative", false
	}
	return "", true
}
