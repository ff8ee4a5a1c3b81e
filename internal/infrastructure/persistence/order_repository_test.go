package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/figurine/backend/internal/domain/billing"
	"github.com/figurine/backend/internal/domain/ordering"
	"github.com/figurine/backend/internal/domain/shared"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&ordering.Order{},
		&ordering.OrderItem{},
		&ordering.PainterAssignment{},
		&billing.Payment{},
		&billing.PaymentMethod{},
	)
	require.NoError(t, err)

	return db
}

func newStoredOrder(t *testing.T, number string) *ordering.Order {
	t.Helper()
	order, err := ordering.NewOrder(number, ordering.OrderSourceCustom, uuid.New(), time.Now())
	require.NoError(t, err)

	_, err = order.AddItem(ordering.OrderItemInput{
		ProductName: "Dragon Figurine",
		CategoryID:  uuid.New(),
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("45.00"),
	})
	require.NoError(t, err)
	return order
}

func TestOrderRepository_SaveAndFindByID(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := newStoredOrder(t, "ORD-0001")
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-0001", found.OrderNumber)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Dragon Figurine", found.Items[0].ProductName)
	assert.True(t, found.TotalAmount.Equal(decimal.RequireFromString("90.00")),
		"expected 90.00, got %s", found.TotalAmount)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOrderRepository_FindByOrderNumber(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := newStoredOrder(t, "ORD-0002")
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByOrderNumber(ctx, "ORD-0002")
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = repo.FindByOrderNumber(ctx, "ORD-MISSING")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOrderRepository_FindByExternalID(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := newStoredOrder(t, "WEB-501")
	order.LinkExternal(501)
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByExternalID(ctx, 501)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = repo.FindByExternalID(ctx, 999)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOrderRepository_Save_DeletesRemovedItems(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := newStoredOrder(t, "ORD-0003")
	_, err := order.AddItem(ordering.OrderItemInput{
		ProductName: "Knight Figurine",
		CategoryID:  uuid.New(),
		Quantity:    1,
		UnitPrice:   decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, order))

	removed := order.Items[1].ID
	require.NoError(t, order.RemoveItem(removed))
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.NotEqual(t, removed, found.Items[0].ID)

	var count int64
	require.NoError(t, db.Model(&ordering.OrderItem{}).
		Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOrderRepository_Delete_CascadesItemsAndPayments(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	paymentRepo := NewGormPaymentRepository(db)
	ctx := context.Background()

	order := newStoredOrder(t, "ORD-0004")
	require.NoError(t, repo.Save(ctx, order))

	method, err := billing.NewPaymentMethod("Bank Transfer", billing.CommissionTypeFixed, decimal.Zero)
	require.NoError(t, err)
	payment, err := billing.NewPayment(order.ID, method, decimal.RequireFromString("40.00"), time.Now(), "", "")
	require.NoError(t, err)
	require.NoError(t, paymentRepo.Save(ctx, payment))

	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err = repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var items, payments int64
	require.NoError(t, db.Model(&ordering.OrderItem{}).
		Where("order_id = ?", order.ID).Count(&items).Error)
	require.NoError(t, db.Model(&billing.Payment{}).
		Where("order_id = ?", order.ID).Count(&payments).Error)
	assert.Zero(t, items)
	assert.Zero(t, payments)
}

func TestOrderRepository_Delete_NotFound(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOrderRepository_FindAll_FiltersAndPaginates(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	for i, number := range []string{"ORD-A", "ORD-B", "ORD-C"} {
		order := newStoredOrder(t, number)
		if i < 2 {
			order.CustomerID = customerID
		}
		require.NoError(t, repo.Save(ctx, order))
	}

	filter := shared.DefaultFilter()
	filter.OrderBy = "order_number"
	filter.OrderDir = "asc"
	filter.Filters["customer_id"] = customerID

	orders, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-A", orders[0].OrderNumber)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	filter.PageSize = 1
	filter.Page = 2
	orders, err = repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-B", orders[0].OrderNumber)
}

func TestOrderRepository_FindAll_RejectsUnsafeSortInput(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	earlier := newStoredOrder(t, "ORD-OLD")
	earlier.OrderDate = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Save(ctx, earlier))
	require.NoError(t, repo.Save(ctx, newStoredOrder(t, "ORD-NEW")))

	filter := shared.DefaultFilter()
	filter.OrderBy = "order_number; DROP TABLE orders"
	filter.OrderDir = "asc; --"

	// Hostile sort input never reaches ORDER BY; the query falls back to
	// order_date DESC and still succeeds.
	orders, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-NEW", orders[0].OrderNumber)

	orders, err = repo.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, orders, 2, "orders table survived")
}

func TestOrderRepository_PainterAssignments(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := newStoredOrder(t, "ORD-0005")
	require.NoError(t, repo.Save(ctx, order))

	assignment, err := ordering.NewPainterAssignment(
		order.ID, uuid.New(), time.Now(), decimal.RequireFromString("25.00"), "gold trim")
	require.NoError(t, err)
	require.NoError(t, repo.SavePainterAssignment(ctx, assignment))

	assignments, err := repo.FindPainterAssignments(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, assignment.PainterID, assignments[0].PainterID)
	assert.Equal(t, "gold trim", assignments[0].Notes)
}
