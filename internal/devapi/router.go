package devapi

import "github.com/gin-gonic/gin"

// NewRouter wires the fixture API routes.
func NewRouter(store *Store) *gin.Engine {
	h := NewHandlers(store)

	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/category/:category", h.GetProductsByCategory)
		v1.GET("/products/brand/:brandId", h.GetProductsByBrand)
		v1.GET("/products/search", h.SearchProducts)
		v1.GET("/products/:id", h.GetProduct)

		v1.GET("/brand", h.GetBrands)
		v1.GET("/brand/:id", h.GetBrand)
		v1.GET("/about/:brandId", h.GetAbout)
		v1.GET("/branches/brand/:brandId", h.GetBranchesByBrand)

		v1.GET("/cart", h.GetCart)
		v1.POST("/cart", h.AddToCart)
		v1.DELETE("/cart/:cartId", h.RemoveFromCart)
	}

	return r
}
