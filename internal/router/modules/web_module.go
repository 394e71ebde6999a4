package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/storefront-api/web"
)

// WebModule serves the embedded single-page front end at / and /static/*.
type WebModule struct{}

func NewWebModule() *WebModule { return &WebModule{} }

func (m *WebModule) Register(rg *gin.RouterGroup) {
	rg.StaticFS("/static", http.FS(web.Static()))
	rg.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(web.Static()))
	})
}
