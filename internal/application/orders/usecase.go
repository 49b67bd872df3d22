package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/shop-admin-api/internal/application/dto"
	"github.com/jhoicas/shop-admin-api/internal/domain"
	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
	"github.com/jhoicas/shop-admin-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Notifier avisa de pedidos nuevos al chat de administración.
// La implementación de Telegram vive en infrastructure; un Notifier nil deshabilita los avisos.
type Notifier interface {
	NotifyNewOrder(order *entity.Order, customer *entity.Customer)
}

// OrderUseCase creación y gestión de pedidos. Los totales se calculan siempre
// en el servidor: Subtotal desde los precios vigentes del catálogo,
// Total = Subtotal + tarifa de envío de la región.
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	regionRepo   repository.RegionRepository
	customerRepo repository.CustomerRepository
	notifier     Notifier
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	regionRepo repository.RegionRepository,
	customerRepo repository.CustomerRepository,
	notifier Notifier,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		regionRepo:   regionRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

// Create valida cliente, región y productos, arma las líneas con precios del
// catálogo, calcula los totales y persiste pedido + items. La notificación
// a Telegram sale después del commit y nunca bloquea la respuesta.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" || in.RegionID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	region, err := uc.regionRepo.GetByID(ctx, in.RegionID)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	orderID := uuid.New().String()
	subtotal := decimal.Zero
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, domain.ErrNotFound
		}
		lineTotal := product.Price.Mul(line.Quantity)
		subtotal = subtotal.Add(lineTotal)
		items = append(items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
	}

	order := &entity.Order{
		ID:          orderID,
		CustomerID:  in.CustomerID,
		RegionID:    in.RegionID,
		Status:      entity.OrderStatusNew,
		Subtotal:    subtotal,
		DeliveryFee: region.DeliveryFee,
		Total:       subtotal.Add(region.DeliveryFee),
		Comment:     in.Comment,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		go uc.notifier.NotifyNewOrder(order, customer)
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// UpdateStatus cambia el estado del pedido validando el valor.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if err := uc.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order), nil
}

// List lista pedidos con paginación; status filtra si no está vacío.
func (uc *OrderUseCase) List(ctx context.Context, status string, limit, offset int) (*dto.OrderListResponse, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orderRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal,
		})
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		RegionID:    o.RegionID,
		Status:      o.Status,
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		Comment:     o.Comment,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
