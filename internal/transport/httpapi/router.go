package httpapi

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type RouterConfig struct {
	UserHeader string
	RoleHeader string
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
}

func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	r.GET("/health", h.health)
	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(cfg.Gatherer)))
	}

	authed := r.Group("/", Identity(cfg.UserHeader, cfg.RoleHeader), accessLog(h.log))

	authed.GET("/products", h.listProducts)
	authed.GET("/products/:id", h.getProduct)
	authed.GET("/categories", h.browseCategories)
	authed.GET("/categories/:id/products", h.categoryProducts)

	cart := authed.Group("/cart")
	cart.GET("", h.getCart)
	cart.DELETE("", h.clearCart)
	cart.POST("/add", h.addItem)
	cart.PUT("/update/:productId", h.updateQuantity)
	cart.DELETE("/remove/:productId", h.removeItem)
	cart.GET("/checkout", h.checkoutForm)
	cart.POST("/checkout", h.placeOrder)

	user := authed.Group("/user")
	user.GET("/orders", h.listMyOrders)
	user.GET("/orders/:id", h.getOrder)

	admin := authed.Group("/admin", RequireAdmin())
	admin.GET("/dashboard", h.dashboard)
	admin.GET("/categories", h.listCategories)
	admin.POST("/categories", h.createCategory)
	admin.PUT("/categories/:id", h.updateCategory)
	admin.DELETE("/categories/:id", h.deleteCategory)
	admin.POST("/products", h.createProduct)
	admin.PUT("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deactivateProduct)
	admin.GET("/orders", h.listAllOrders)
	admin.PUT("/orders/:id/status", h.updateOrderStatus)

	return r
}
