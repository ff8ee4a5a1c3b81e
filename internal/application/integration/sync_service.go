package integration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/figurine/backend/internal/domain/catalog"
	"github.com/figurine/backend/internal/domain/integration"
	"github.com/figurine/backend/internal/domain/ordering"
	"github.com/figurine/backend/internal/domain/partner"
	"github.com/figurine/backend/internal/domain/shared"
)

// syncPageSize is the page size used when pulling from the storefront
const syncPageSize = 100

// storefrontCategoryName is the category imported products and unmatched
// line items are filed under. It is created on first use.
const storefrontCategoryName = "Storefront"

// SyncService pulls customers, products and orders from the external
// storefront and pushes status changes back. Imports are idempotent: records
// are keyed by their storefront id, so re-running a sync updates in place
// instead of duplicating. Imported orders trust upstream totals and only
// have their status re-synced on later runs.
type SyncService struct {
	client       integration.StorefrontClient
	orderRepo    ordering.OrderRepository
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(
	client integration.StorefrontClient,
	orderRepo ordering.OrderRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		client:       client,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// SyncCustomers imports all storefront customers, upserting by external id
func (s *SyncService) SyncCustomers(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}

	for page := 1; ; page++ {
		upstream, err := s.client.FetchCustomers(ctx, page, syncPageSize)
		if err != nil {
			return nil, err
		}

		for i := range upstream {
			created, err := s.upsertCustomer(ctx, &upstream[i])
			if err != nil {
				return nil, err
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}

		if len(upstream) < syncPageSize {
			break
		}
	}

	s.logger.Info("customer sync finished",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))
	return result, nil
}

// SyncProducts imports all storefront products, upserting by external id.
// Imported products are filed under the storefront category.
func (s *SyncService) SyncProducts(ctx context.Context) (*SyncResult, error) {
	category, err := s.ensureStorefrontCategory(ctx)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for page := 1; ; page++ {
		upstream, err := s.client.FetchProducts(ctx, page, syncPageSize)
		if err != nil {
			return nil, err
		}

		for i := range upstream {
			created, err := s.upsertProduct(ctx, &upstream[i], category.ID)
			if err != nil {
				return nil, err
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}

		if len(upstream) < syncPageSize {
			break
		}
	}

	s.logger.Info("product sync finished",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))
	return result, nil
}

// SyncOrders imports all storefront orders. New orders are created with their
// upstream totals taken as-is; orders already imported only have their status
// re-synced, so local edits to pricing and notes survive re-runs.
func (s *SyncService) SyncOrders(ctx context.Context) (*SyncResult, error) {
	category, err := s.ensureStorefrontCategory(ctx)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for page := 1; ; page++ {
		upstream, err := s.client.FetchOrders(ctx, page, syncPageSize)
		if err != nil {
			return nil, err
		}

		for i := range upstream {
			created, err := s.importOrder(ctx, &upstream[i], category.ID)
			if err != nil {
				return nil, err
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}

		if len(upstream) < syncPageSize {
			break
		}
	}

	s.logger.Info("order sync finished",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))
	return result, nil
}

// PushOrderStatus pushes an order's current status to the storefront.
// The push is at-most-once: a single call with no retry, and a failure
// surfaces as an upstream error with nothing recorded locally.
// Orders that did not come from the storefront are skipped with Synced=false.
//
// TODO: route pushes through a durable outbox once one exists, so a failed
// push can be retried instead of being lost.
func (s *SyncService) PushOrderStatus(ctx context.Context, orderID uuid.UUID) (*PushStatusResult, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Source != ordering.OrderSourceWebsite {
		return &PushStatusResult{Synced: false}, nil
	}
	if order.ExternalID == nil {
		return nil, shared.NewDomainError("NOT_LINKED", "Order has no storefront id to push to")
	}

	status := integration.MapOutboundStatus(order.Status)
	if err := s.client.UpdateOrderStatus(ctx, *order.ExternalID, status); err != nil {
		s.logger.Warn("status push failed",
			zap.String("order_number", order.OrderNumber),
			zap.Int64("external_id", *order.ExternalID),
			zap.Error(err))
		return nil, err
	}

	return &PushStatusResult{Synced: true, Status: status.String()}, nil
}

func (s *SyncService) upsertCustomer(ctx context.Context, upstream *integration.StorefrontCustomer) (created bool, err error) {
	name := strings.TrimSpace(upstream.FirstName + " " + upstream.LastName)

	if upstream.ID != 0 {
		existing, err := s.customerRepo.FindByExternalID(ctx, upstream.ID)
		if err == nil {
			if name == "" {
				name = existing.Name
			}
			if err := existing.Update(name, upstream.Email, upstream.Phone, upstream.Address, upstream.City, upstream.PostalCode); err != nil {
				return false, err
			}
			return false, s.customerRepo.Save(ctx, existing)
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return false, err
		}
	}

	customer, err := partner.NewStorefrontCustomer(name, upstream.Email, upstream.Phone, upstream.Address, upstream.City, upstream.PostalCode, upstream.ID)
	if err != nil {
		return false, err
	}
	return true, s.customerRepo.Save(ctx, customer)
}

func (s *SyncService) upsertProduct(ctx context.Context, upstream *integration.StorefrontProduct, categoryID uuid.UUID) (created bool, err error) {
	existing, err := s.productRepo.FindByExternalID(ctx, upstream.ID)
	if err == nil {
		if err := existing.Update(upstream.Name, upstream.Description, existing.CategoryID, upstream.Price, existing.IsColored, existing.Dimensions); err != nil {
			return false, err
		}
		existing.SetActive(upstream.Published)
		return false, s.productRepo.Save(ctx, existing)
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return false, err
	}

	product, err := catalog.NewStorefrontProduct(upstream.Name, upstream.Description, categoryID, upstream.Price, upstream.ID, upstream.Published)
	if err != nil {
		return false, err
	}
	return true, s.productRepo.Save(ctx, product)
}

func (s *SyncService) importOrder(ctx context.Context, upstream *integration.StorefrontOrder, fallbackCategoryID uuid.UUID) (created bool, err error) {
	existing, err := s.orderRepo.FindByExternalID(ctx, upstream.ID)
	if err == nil {
		// Already imported: only the status follows the storefront.
		mapped := integration.MapInboundStatus(upstream.Status)
		if existing.Status == mapped {
			return false, nil
		}
		if err := existing.UpdateStatus(mapped); err != nil {
			return false, err
		}
		return false, s.orderRepo.Save(ctx, existing)
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return false, err
	}

	customerID, err := s.resolveOrderCustomer(ctx, upstream)
	if err != nil {
		return false, err
	}

	order, err := ordering.NewOrder(fmt.Sprintf("WEB-%d", upstream.ID), ordering.OrderSourceWebsite, customerID, upstream.CreatedAt)
	if err != nil {
		return false, err
	}

	for _, line := range upstream.LineItems {
		input, err := s.resolveLineItem(ctx, line, fallbackCategoryID)
		if err != nil {
			return false, err
		}
		if _, err := order.AddItem(*input); err != nil {
			return false, err
		}
	}

	if err := order.UpdateStatus(integration.MapInboundStatus(upstream.Status)); err != nil {
		return false, err
	}
	order.LinkExternal(upstream.ID)
	order.SetNotes(upstream.CustomerNote)
	// Upstream totals are authoritative; ours may differ on fees or taxes
	// the storefront applied.
	order.SetImportedTotals(order.Subtotal, upstream.Total)

	return true, s.orderRepo.Save(ctx, order)
}

// resolveOrderCustomer finds the customer an imported order belongs to.
// Registered storefront customers are matched by external id and created on
// the fly when the order arrives before the customer sync. Guest checkouts
// always get a fresh customer record built from the billing details.
func (s *SyncService) resolveOrderCustomer(ctx context.Context, upstream *integration.StorefrontOrder) (uuid.UUID, error) {
	if upstream.CustomerID != 0 {
		existing, err := s.customerRepo.FindByExternalID(ctx, upstream.CustomerID)
		if err == nil {
			return existing.ID, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, err
		}
	}

	billing := upstream.Billing
	name := strings.TrimSpace(billing.FirstName + " " + billing.LastName)
	externalID := upstream.CustomerID
	customer, err := partner.NewStorefrontCustomer(name, billing.Email, billing.Phone, billing.Address, billing.City, billing.PostalCode, externalID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return uuid.Nil, err
	}
	return customer.ID, nil
}

// resolveLineItem maps a storefront line item onto a local product when one
// is linked, and falls back to a custom item otherwise
func (s *SyncService) resolveLineItem(ctx context.Context, line integration.StorefrontLineItem, fallbackCategoryID uuid.UUID) (*ordering.OrderItemInput, error) {
	lineTotal := line.Total
	input := &ordering.OrderItemInput{
		ProductName:   line.Name,
		CategoryID:    fallbackCategoryID,
		Quantity:      line.Quantity,
		UnitPrice:     line.UnitPrice,
		ImportedTotal: &lineTotal,
	}

	if line.ProductID != 0 {
		product, err := s.productRepo.FindByExternalID(ctx, line.ProductID)
		if err == nil {
			input.ProductID = &product.ID
			input.CategoryID = product.CategoryID
			input.IsColored = product.IsColored
			input.Dimensions = product.Dimensions
			return input, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	input.CustomDescription = "Imported storefront item without a matching product"
	return input, nil
}

func (s *SyncService) ensureStorefrontCategory(ctx context.Context) (*catalog.Category, error) {
	category, err := s.categoryRepo.FindByName(ctx, storefrontCategoryName)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	category, err = catalog.NewCategory(storefrontCategoryName, "Products imported from the storefront")
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
