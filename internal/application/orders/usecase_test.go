package orders_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shop-admin-api/internal/application/dto"
	"github.com/jhoicas/shop-admin-api/internal/application/orders"
	"github.com/jhoicas/shop-admin-api/internal/domain"
	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	out := []*entity.Order{}
	for _, o := range r.orders {
		if status != "" && o.Status != status {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, categoryID string, limit, offset int) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakeRegionRepo struct {
	regions map[string]*entity.Region
}

func (r *fakeRegionRepo) Create(_ context.Context, reg *entity.Region) error {
	r.regions[reg.ID] = reg
	return nil
}

func (r *fakeRegionRepo) GetByID(_ context.Context, id string) (*entity.Region, error) {
	reg, ok := r.regions[id]
	if !ok {
		return nil, nil
	}
	return reg, nil
}

func (r *fakeRegionRepo) Update(_ context.Context, reg *entity.Region) error {
	r.regions[reg.ID] = reg
	return nil
}

func (r *fakeRegionRepo) List(_ context.Context) ([]*entity.Region, error) {
	out := []*entity.Region{}
	for _, reg := range r.regions {
		out = append(out, reg)
	}
	return out, nil
}

func (r *fakeRegionRepo) Delete(_ context.Context, id string) error {
	delete(r.regions, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) GetByTelegramID(_ context.Context, telegramID int64) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.TelegramID == telegramID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	out := []*entity.Customer{}
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

// fakeNotifier registra la llamada para verificar que se notifica tras crear.
type fakeNotifier struct {
	mu     sync.Mutex
	called chan struct{}
	order  *entity.Order
}

func (n *fakeNotifier) NotifyNewOrder(order *entity.Order, _ *entity.Customer) {
	n.mu.Lock()
	n.order = order
	n.mu.Unlock()
	close(n.called)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	customerID = "aaaaaaaa-0000-0000-0000-000000000001"
	regionID   = "bbbbbbbb-0000-0000-0000-000000000001"
	productAID = "cccccccc-0000-0000-0000-000000000001"
	productBID = "cccccccc-0000-0000-0000-000000000002"
	inactiveID = "cccccccc-0000-0000-0000-000000000003"
)

func buildOrderUseCase(t *testing.T, notifier orders.Notifier) (*orders.OrderUseCase, *fakeOrderRepo) {
	t.Helper()
	orderRepo := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		productAID: {ID: productAID, Name: "Ramo de rosas", Price: decimal.RequireFromString("25.00"), Active: true},
		productBID: {ID: productBID, Name: "Tarjeta", Price: decimal.RequireFromString("3.50"), Active: true},
		inactiveID: {ID: inactiveID, Name: "Descontinuado", Price: decimal.RequireFromString("9.99"), Active: false},
	}}
	regionRepo := &fakeRegionRepo{regions: map[string]*entity.Region{
		regionID: {ID: regionID, Name: "Centro", DeliveryFee: decimal.RequireFromString("5.00")},
	}}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		customerID: {ID: customerID, TelegramID: 123456, Name: "Cliente"},
	}}
	uc := orders.NewOrderUseCase(orderRepo, productRepo, regionRepo, customerRepo, notifier)
	return uc, orderRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Los totales se calculan en el servidor: Subtotal con precios del catálogo,
// Total = Subtotal + tarifa de la región.
func TestCreateOrder_TotalesDelServidor(t *testing.T) {
	uc, _ := buildOrderUseCase(t, nil)

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		RegionID:   regionID,
		Items: []dto.OrderItemRequest{
			{ProductID: productAID, Quantity: decimal.RequireFromString("2")}, // 50.00
			{ProductID: productBID, Quantity: decimal.RequireFromString("1")}, // 3.50
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("53.50")), "subtotal got %s", resp.Subtotal)
	assert.True(t, resp.DeliveryFee.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("58.50")), "total got %s", resp.Total)
	assert.Equal(t, entity.OrderStatusNew, resp.Status)
	require.Len(t, resp.Items, 2)

	// Las líneas denormalizan nombre y precio del catálogo al momento del pedido.
	assert.Equal(t, "Ramo de rosas", resp.Items[0].Name)
	assert.True(t, resp.Items[0].LineTotal.Equal(decimal.RequireFromString("50.00")))
}

func TestCreateOrder_ProductoInactivo(t *testing.T) {
	uc, repo := buildOrderUseCase(t, nil)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		RegionID:   regionID,
		Items: []dto.OrderItemRequest{
			{ProductID: inactiveID, Quantity: decimal.RequireFromString("1")},
		},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, repo.orders, "no debe persistirse ningún pedido")
}

func TestCreateOrder_SinItems(t *testing.T) {
	uc, _ := buildOrderUseCase(t, nil)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		RegionID:   regionID,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCreateOrder_ClienteInexistente(t *testing.T) {
	uc, _ := buildOrderUseCase(t, nil)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: "aaaaaaaa-0000-0000-0000-000000000099",
		RegionID:   regionID,
		Items: []dto.OrderItemRequest{
			{ProductID: productAID, Quantity: decimal.RequireFromString("1")},
		},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreateOrder_NotificaDespuesDePersistir(t *testing.T) {
	notifier := &fakeNotifier{called: make(chan struct{})}
	uc, repo := buildOrderUseCase(t, notifier)

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		RegionID:   regionID,
		Items: []dto.OrderItemRequest{
			{ProductID: productAID, Quantity: decimal.RequireFromString("1")},
		},
	})
	require.NoError(t, err)

	select {
	case <-notifier.called:
	case <-time.After(2 * time.Second):
		t.Fatal("la notificación de pedido nuevo no llegó")
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, resp.ID, notifier.order.ID)
	_, ok := repo.orders[resp.ID]
	assert.True(t, ok, "el pedido debe estar persistido antes de notificar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStatus / List
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _ := buildOrderUseCase(t, nil)

	_, err := uc.UpdateStatus(context.Background(), "cualquiera", "shipped")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestUpdateStatus_Valido(t *testing.T) {
	uc, _ := buildOrderUseCase(t, nil)

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		RegionID:   regionID,
		Items: []dto.OrderItemRequest{
			{ProductID: productAID, Quantity: decimal.RequireFromString("1")},
		},
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), created.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestList_FiltroEstadoInvalido(t *testing.T) {
	uc, _ := buildOrderUseCase(t, nil)

	_, err := uc.List(context.Background(), "shipped", 20, 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
