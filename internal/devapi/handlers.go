package devapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	store *Store
}

func NewHandlers(store *Store) *Handlers {
	return &Handlers{store: store}
}

func (h *Handlers) GetProducts(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, h.store.ProductsByCategory(category))
		return
	}
	c.JSON(http.StatusOK, h.store.Products())
}

// GetProductsByCategory keeps the legacy wrapped shape on this route; the
// client normalizes it.
func (h *Handlers) GetProductsByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"books": h.store.ProductsByCategory(c.Param("category"))})
}

func (h *Handlers) GetProductsByBrand(c *gin.Context) {
	brandID, err := strconv.ParseInt(c.Param("brandId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}
	c.JSON(http.StatusOK, h.store.ProductsByBrand(brandID))
}

func (h *Handlers) SearchProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SearchProducts(c.Query("name")))
}

func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	product, ok := h.store.Product(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handlers) GetBrands(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Brands())
}

func (h *Handlers) GetBrand(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	brand, ok := h.store.Brand(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "brand not found"})
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *Handlers) GetAbout(c *gin.Context) {
	brandID, err := strconv.ParseInt(c.Param("brandId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}
	about, ok := h.store.About(brandID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "about page not found"})
		return
	}
	c.JSON(http.StatusOK, about)
}

func (h *Handlers) GetBranchesByBrand(c *gin.Context) {
	brandID, err := strconv.ParseInt(c.Param("brandId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}
	c.JSON(http.StatusOK, h.store.BranchesByBrand(brandID))
}

func (h *Handlers) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.CartItems())
}

func (h *Handlers) AddToCart(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.store.AddToCart(req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart"})
	}
}

func (h *Handlers) RemoveFromCart(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("cartId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
		return
	}
	if err := h.store.RemoveFromCart(cartID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart"})
}
