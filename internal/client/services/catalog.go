package services

import (
	"context"

	"github.com/vyapkart/vyapkart-cli/internal/client/models"
	"github.com/vyapkart/vyapkart-cli/internal/logging"
)

// ShopAPI is the backend surface for catalog and orders. Implemented by
// api.Client. These routes require an active session; the request gateway
// attaches the session token automatically.
type ShopAPI interface {
	Products(ctx context.Context) ([]models.Product, error)
	CreateOrder(ctx context.Context, productID int64, quantity int) (*models.Order, error)
	MyOrders(ctx context.Context) ([]models.Order, error)
}

// CatalogService exposes the buyer-facing catalog and order operations.
type CatalogService interface {
	Products(ctx context.Context) ([]models.Product, error)
	Order(ctx context.Context, productID int64, quantity int) (*models.Order, error)
	MyOrders(ctx context.Context) ([]models.Order, error)
}

type catalogService struct {
	api ShopAPI
	log logging.Logger
}

// NewCatalogService constructs a CatalogService over the backend client.
func NewCatalogService(api ShopAPI, log logging.Logger) CatalogService {
	return &catalogService{api: api, log: log}
}

func (s *catalogService) Products(ctx context.Context) ([]models.Product, error) {
	return s.api.Products(ctx)
}

func (s *catalogService) Order(ctx context.Context, productID int64, quantity int) (*models.Order, error) {
	order, err := s.api.CreateOrder(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "order placed", "orderId", order.ID, "productId", productID, "quantity", quantity)
	return order, nil
}

func (s *catalogService) MyOrders(ctx context.Context) ([]models.Order, error) {
	return s.api.MyOrders(ctx)
}
