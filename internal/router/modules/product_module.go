package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/storefront-api/internal/interface/http"
)

// ProductModule: GET /products, POST /products, GET /products/search.
// Adding products is deliberately unauthenticated.
type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", m.Handler.List)
	products.POST("", m.Handler.Add)
	products.GET("/search", m.Handler.Search)
}
