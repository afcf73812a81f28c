package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

type Handler struct {
	catalog  port.CatalogService
	carts    port.CartService
	checkout port.CheckoutService
	orders   port.OrderService
	currency currency.Unit
	log      logrus.FieldLogger
}

func NewHandler(
	catalog port.CatalogService,
	carts port.CartService,
	checkout port.CheckoutService,
	orders port.OrderService,
	unit currency.Unit,
	log logrus.FieldLogger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		carts:    carts,
		checkout: checkout,
		orders:   orders,
		currency: unit,
		log:      log.WithField("component", "http"),
	}
}

// render serves HTML to browsers and JSON to API clients.
func render(c *gin.Context, status int, name string, htmlData any, jsonData any) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{gin.MIMEHTML, gin.MIMEJSON},
		HTMLName: name,
		HTMLData: htmlData,
		JSONData: jsonData,
	})
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	return parseUUID(c.Param(name), name)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseUUID(s, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid id", domain.ErrInvalidArgument, name)
	}

	return id, nil
}
