package csvstore

import (
	"time"

	"martgen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// The read side of the partition store. The warehouse load stage reads the
// files the generator wrote, so the column knowledge stays in one package.

// ReadOrdersFile parses one partition's orders file.
func ReadOrdersFile(path string) ([]*entity.Order, error) {
	records, err := readCSVFile(path, len(ordersHeader))
	if err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(records))
	for i, record := range records {
		line := i + 2

		id, err := uuid.Parse(record[0])
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: invalid order id %q", path, line, record[0])
		}

		var customerID *uuid.UUID
		if record[1] != "" {
			parsed, err := uuid.Parse(record[1])
			if err != nil {
				return nil, errors.Wrapf(err, "%s line %d: invalid customer id %q", path, line, record[1])
			}
			customerID = &parsed
		}

		isGuest, err := parseBool(record[2], path, line)
		if err != nil {
			return nil, err
		}
		orderDate, err := parseTimestamp(record[3], path, line)
		if err != nil {
			return nil, err
		}
		totalAmount, err := parseFloat(record[5], path, line)
		if err != nil {
			return nil, err
		}
		shippingCost, err := parseFloat(record[12], path, line)
		if err != nil {
			return nil, err
		}

		orders = append(orders, &entity.Order{
			ID:              id,
			CustomerID:      customerID,
			IsGuest:         isGuest,
			OrderDate:       orderDate,
			Status:          entity.OrderStatus(record[4]),
			TotalAmount:     totalAmount,
			ShippingAddress: record[6],
			ShippingCity:    record[7],
			ShippingState:   record[8],
			ShippingZip:     record[9],
			PaymentMethod:   entity.PaymentMethod(record[10]),
			PaymentStatus:   entity.PaymentStatus(record[11]),
			ShippingCost:    shippingCost,
		})
	}

	return orders, nil
}

// ReadOrderItemsFile parses one partition's order items file.
func ReadOrderItemsFile(path string) ([]*entity.OrderItem, error) {
	records, err := readCSVFile(path, len(orderItemsHeader))
	if err != nil {
		return nil, err
	}

	items := make([]*entity.OrderItem, 0, len(records))
	for i, record := range records {
		line := i + 2

		id, err := uuid.Parse(record[0])
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: invalid order item id %q", path, line, record[0])
		}
		orderID, err := uuid.Parse(record[1])
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: invalid order id %q", path, line, record[1])
		}
		productID, err := uuid.Parse(record[2])
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: invalid product id %q", path, line, record[2])
		}
		quantity, err := parseInt(record[3], path, line)
		if err != nil {
			return nil, err
		}
		unitPrice, err := parseFloat(record[4], path, line)
		if err != nil {
			return nil, err
		}
		discount, err := parseFloat(record[5], path, line)
		if err != nil {
			return nil, err
		}
		totalPrice, err := parseFloat(record[6], path, line)
		if err != nil {
			return nil, err
		}

		var reason *string
		if record[8] != "" {
			value := record[8]
			reason = &value
		}

		items = append(items, &entity.OrderItem{
			ID:           id,
			OrderID:      orderID,
			ProductID:    productID,
			Quantity:     quantity,
			UnitPrice:    unitPrice,
			DiscountPct:  discount,
			TotalPrice:   totalPrice,
			ReturnStatus: entity.ReturnStatus(record[7]),
			ReturnReason: reason,
		})
	}

	return items, nil
}

// ReadMovementsFile parses one partition's inventory movements file.
func ReadMovementsFile(path string) ([]*entity.InventoryMovement, error) {
	records, err := readCSVFile(path, len(movementsHeader))
	if err != nil {
		return nil, err
	}

	movements := make([]*entity.InventoryMovement, 0, len(records))
	for i, record := range records {
		line := i + 2

		id, err := uuid.Parse(record[0])
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: invalid movement id %q", path, line, record[0])
		}
		productID, err := uuid.Parse(record[1])
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: invalid product id %q", path, line, record[1])
		}
		movementDate, err := parseTimestamp(record[2], path, line)
		if err != nil {
			return nil, err
		}
		quantity, err := parseInt(record[3], path, line)
		if err != nil {
			return nil, err
		}
		referenceID, err := uuid.Parse(record[5])
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: invalid reference id %q", path, line, record[5])
		}

		movements = append(movements, &entity.InventoryMovement{
			ID:           id,
			ProductID:    productID,
			MovementDate: movementDate,
			Quantity:     quantity,
			MovementType: entity.MovementType(record[4]),
			ReferenceID:  referenceID,
			Notes:        record[6],
		})
	}

	return movements, nil
}

func parseTimestamp(field, path string, line int) (time.Time, error) {
	v, err := time.Parse(timestampFormat, field)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "%s line %d: invalid timestamp %q", path, line, field)
	}

	return v, nil
}
