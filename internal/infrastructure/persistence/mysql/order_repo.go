package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/shopadmin/internal/domain/order"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// orderRepository 订单仓储的MySQL实现
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// CreateWithOrderID 在同一事务内插入订单和明细
// 订单号唯一索引冲突时返回order.ErrOrderIDTaken（分配器据此重试），
// 事务回滚保证冲突时不留下任何写入
func (r *orderRepository) CreateWithOrderID(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Items随父模型级联插入
		return tx.Create(model).Error
	})
	if err != nil {
		if isDuplicateError(err) {
			return order.ErrOrderIDTaken
		}
		return apperrors.WrapWithCode(err, apperrors.ErrCodeStoreUnavailable, "创建订单失败")
	}

	o.ID = model.ID
	for i := range model.Items {
		if i < len(o.Items) {
			o.Items[i].ID = model.Items[i].ID
			o.Items[i].OrderID = model.Items[i].OrderID
		}
	}
	return nil
}

// LastOrderIDForPrefix 查询指定日期前缀下最大的订单号
// 序号固定4位零填充，字符串倒序即数值倒序
func (r *orderRepository) LastOrderIDForPrefix(ctx context.Context, prefix string) (string, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).
		Select("order_id").
		Where("order_id LIKE ?", prefix+"-%").
		Order("order_id DESC").
		First(&model).Error
	if err != nil {
		if isNotFoundError(err) {
			return "", nil // 当日还没有订单
		}
		return "", apperrors.WrapWithCode(err, apperrors.ErrCodeStoreUnavailable, "查询最大订单号失败")
	}
	return model.OrderID, nil
}

// FindByID 根据存储主键查找订单（包含明细）
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).Preload("Items").First(&model, id).Error
	if err != nil {
		if isNotFoundError(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// FindByOrderID 根据业务订单号查找订单
func (r *orderRepository) FindByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).Preload("Items").
		Where("order_id = ?", orderID).
		First(&model).Error
	if err != nil {
		if isNotFoundError(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// UpdateStatus 更新订单状态，返回更新后的完整订单
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status order.OrderStatus) (*order.Order, error) {
	return r.updateFields(ctx, id, map[string]interface{}{
		"status": int(status),
	})
}

// UpdatePaymentStatus 更新支付状态，返回更新后的完整订单
func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uint, status order.PaymentStatus) (*order.Order, error) {
	return r.updateFields(ctx, id, map[string]interface{}{
		"payment_status": int(status),
	})
}

func (r *orderRepository) updateFields(ctx context.Context, id uint, fields map[string]interface{}) (*order.Order, error) {
	fields["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&OrderModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "更新订单失败")
	}
	if result.RowsAffected == 0 {
		return nil, order.ErrOrderNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete 删除订单及其明细
func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&OrderModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "删除订单失败")
		}
		if result.RowsAffected == 0 {
			return order.ErrOrderNotFound
		}
		if err := tx.Where("order_id = ?", id).Delete(&OrderItemModel{}).Error; err != nil {
			return apperrors.Wrap(err, "删除订单明细失败")
		}
		return nil
	})
}

// List 按过滤条件分页查询订单，按创建时间倒序
func (r *orderRepository) List(ctx context.Context, params order.ListParams) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&OrderModel{})

	if params.Status != nil {
		query = query.Where("status = ?", int(*params.Status))
	}
	if params.PaymentMode != "" {
		query = query.Where("payment_mode = ?", string(params.PaymentMode))
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计订单数量失败")
	}

	var models []OrderModel
	offset := (params.Page - 1) * params.PageSize
	err := query.Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(params.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderEntity(&models[i]))
	}
	return orders, total, nil
}

// toOrderModel 领域实体转数据模型
func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemModel{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return &OrderModel{
		ID:      o.ID,
		OrderID: o.OrderID,
		Customer: CustomerColumns{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
			City:    o.Customer.City,
			State:   o.Customer.State,
			Pincode: o.Customer.Pincode,
		},
		Items:          items,
		Subtotal:       o.Subtotal,
		DeliveryCharge: o.DeliveryCharge,
		TotalAmount:    o.TotalAmount,
		PaymentMode:    string(o.PaymentMode),
		PaymentStatus:  int(o.PaymentStatus),
		Status:         int(o.Status),
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// toOrderEntity 数据模型转领域实体
func toOrderEntity(m *OrderModel) *order.Order {
	items := make([]order.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, order.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return &order.Order{
		ID:      m.ID,
		OrderID: m.OrderID,
		Customer: order.Customer{
			Name:    m.Customer.Name,
			Email:   m.Customer.Email,
			Phone:   m.Customer.Phone,
			Address: m.Customer.Address,
			City:    m.Customer.City,
			State:   m.Customer.State,
			Pincode: m.Customer.Pincode,
		},
		Items:          items,
		Subtotal:       m.Subtotal,
		DeliveryCharge: m.DeliveryCharge,
		TotalAmount:    m.TotalAmount,
		PaymentMode:    order.PaymentMode(m.PaymentMode),
		PaymentStatus:  order.PaymentStatus(m.PaymentStatus),
		Status:         order.OrderStatus(m.Status),
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
