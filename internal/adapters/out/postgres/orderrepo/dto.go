// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is indexed because the queue views and the purge job both filter
// on it. Items cascade on delete so cancelling an order needs no separate
// item cleanup.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderCode      string    `gorm:"type:varchar(16)"`
	Customer       string
	CustomerName   string
	TableNumber    *int
	OrderType      string `gorm:"type:varchar(16)"`
	Status         int    `gorm:"index"`
	Total          float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ProcessingTime *string   `gorm:"type:varchar(8)"`
	Items          []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line of an order in the order_items table.
type ItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Price    float64
	Quantity int
	Notes    *string
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Notes:    item.Notes(),
		})
	}

	var processingTime *string
	if pt := aggregate.ProcessingTime(); pt != nil {
		s := pt.String()
		processingTime = &s
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrderCode:      aggregate.OrderCode(),
		Customer:       aggregate.Customer(),
		CustomerName:   aggregate.CustomerName(),
		TableNumber:    aggregate.TableNumber(),
		OrderType:      aggregate.OrderType(),
		Status:         int(aggregate.Status()),
		Total:          aggregate.Total(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		ProcessingTime: processingTime,
		Items:          items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including stored status, total, and
// processing time using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, itemDTO.Name, itemDTO.Price, itemDTO.Quantity, itemDTO.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var processingTime *order.ProcessingTime
	if dto.ProcessingTime != nil {
		pt, ptErr := order.ProcessingTimeFromString(*dto.ProcessingTime)
		if ptErr != nil {
			return nil, ptErr
		}
		processingTime = &pt
	}

	return order.RestoreOrder(
		id,
		dto.Customer,
		dto.CustomerName,
		dto.TableNumber,
		dto.OrderType,
		dto.OrderCode,
		order.Status(dto.Status),
		dto.Total,
		dto.CreatedAt,
		dto.UpdatedAt,
		processingTime,
		items,
	)
}
