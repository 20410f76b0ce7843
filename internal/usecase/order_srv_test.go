package usecase

import (
	"context"
	"testing"
	"time"

	"velvet-vogue/internal/data/entity"
	"velvet-vogue/internal/dto/request"
	"velvet-vogue/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, users *fakeUserRepo, name, email string, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func floatPtr(v float64) *float64 { return &v }

func validOrderRequest() *request.CreateOrderRequest {
	return &request.CreateOrderRequest{
		ShippingAddress: "42 Fashion Ave",
		PaymentMethod:   "credit_card",
		Items: []request.OrderItemRequest{
			{ProductID: uuid.NewString(), Name: "Classic Blazer", Price: 10, Quantity: 2},
		},
		Total: floatPtr(20),
	}
}

func TestCreateOrderValidation(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewOrderService(newFakeOrderRepo(users), zap.NewNop())
	ctx := context.Background()

	mutations := []struct {
		name   string
		mutate func(*request.CreateOrderRequest)
	}{
		{"missing shipping address", func(r *request.CreateOrderRequest) { r.ShippingAddress = "" }},
		{"missing payment method", func(r *request.CreateOrderRequest) { r.PaymentMethod = "" }},
		{"missing items", func(r *request.CreateOrderRequest) { r.Items = nil }},
		{"missing total", func(r *request.CreateOrderRequest) { r.Total = nil }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(req)
			_, err := svc.CreateOrder(ctx, uuid.New(), req)
			assert.ErrorIs(t, err, utils.ErrValidation)
		})
	}
}

func TestCreateOrderSnapshotRoundTrip(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewOrderService(newFakeOrderRepo(users), zap.NewNop())
	ctx := context.Background()

	user := seedUser(t, users, "Jane", "jane@example.com", entity.RoleUser)

	size := "M"
	color := "navy"
	productID := uuid.NewString()
	req := &request.CreateOrderRequest{
		ShippingAddress: "42 Fashion Ave",
		PaymentMethod:   "paypal",
		Items: []request.OrderItemRequest{
			{ProductID: productID, Name: "Classic Blazer", Price: 10, Quantity: 2, Size: &size, Color: &color},
		},
		Total: floatPtr(20),
	}

	created, err := svc.CreateOrder(ctx, user.ID, req)
	require.NoError(t, err)

	orders, err := svc.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, created.OrderID, order.ID)
	assert.Equal(t, "42 Fashion Ave", order.ShippingAddress)
	assert.Equal(t, "paypal", order.PaymentMethod)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "Jane", order.UserName)
	assert.Equal(t, "jane@example.com", order.UserEmail)

	// the snapshot comes back exactly as submitted
	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, productID, item.ProductID.String())
	assert.Equal(t, "Classic Blazer", item.Name)
	assert.Equal(t, 10.0, item.Price)
	assert.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.Size)
	assert.Equal(t, "M", *item.Size)
	require.NotNil(t, item.Color)
	assert.Equal(t, "navy", *item.Color)
}

func TestCreateOrderOverwritesClientTotal(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewOrderService(newFakeOrderRepo(users), zap.NewNop())
	ctx := context.Background()

	user := seedUser(t, users, "Jane", "jane@example.com", entity.RoleUser)

	req := validOrderRequest()
	req.Total = floatPtr(999) // client lies

	created, err := svc.CreateOrder(ctx, user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 20.0, created.Total)

	orders, err := svc.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 20.0, orders[0].Total)
}

func TestListAllNewestFirst(t *testing.T) {
	users := newFakeUserRepo()
	repo := newFakeOrderRepo(users)
	svc := NewOrderService(repo, zap.NewNop())
	ctx := context.Background()

	user := seedUser(t, users, "Jane", "jane@example.com", entity.RoleUser)

	first, err := svc.CreateOrder(ctx, user.ID, validOrderRequest())
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := svc.CreateOrder(ctx, user.ID, validOrderRequest())
	require.NoError(t, err)

	orders, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.OrderID, orders[0].ID)
	assert.Equal(t, first.OrderID, orders[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	users := newFakeUserRepo()
	repo := newFakeOrderRepo(users)
	svc := NewOrderService(repo, zap.NewNop())
	ctx := context.Background()

	user := seedUser(t, users, "Jane", "jane@example.com", entity.RoleUser)
	created, err := svc.CreateOrder(ctx, user.ID, validOrderRequest())
	require.NoError(t, err)

	// invalid status value
	err = svc.UpdateStatus(ctx, created.OrderID, &request.UpdateOrderStatusRequest{Status: "shipped"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	// unknown order
	err = svc.UpdateStatus(ctx, uuid.NewString(), &request.UpdateOrderStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	// any member of the status set can move to any other, including
	// completed back to pending
	require.NoError(t, svc.UpdateStatus(ctx, created.OrderID, &request.UpdateOrderStatusRequest{Status: "completed"}))
	require.NoError(t, svc.UpdateStatus(ctx, created.OrderID, &request.UpdateOrderStatusRequest{Status: "pending"}))

	orders, err := svc.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusPending, orders[0].Status)
}
