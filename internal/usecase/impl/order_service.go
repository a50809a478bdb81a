package impl

import (
	"context"
	"log/slog"
	"time"

	"martgen/config"
	"martgen/internal/domain/entity"
	"martgen/internal/infra/datagen"
	"martgen/internal/usecase"
	"martgen/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// weekendFactor scales the daily order ceiling on Saturday and Sunday.
const weekendFactor = 1.5

// volumeFloor keeps even the slowest day at 30% of the weekday ceiling.
const volumeFloor = 0.3

var orderStatusChoice = datagen.MustWeighted(
	datagen.Item(entity.OrderStatusCompleted, 0.85),
	datagen.Item(entity.OrderStatusProcessing, 0.05),
	datagen.Item(entity.OrderStatusCancelled, 0.05),
	datagen.Item(entity.OrderStatusReturned, 0.05),
)

var returnStatusChoice = datagen.MustWeighted(
	datagen.Item(entity.ReturnStatusNotReturned, 0.90),
	datagen.Item(entity.ReturnStatusReturned, 0.07),
	datagen.Item(entity.ReturnStatusRefunded, 0.03),
)

type orderService struct {
	cfg       *config.GeneratorConfig
	guestRate float64
	faker     *datagen.Faker
	logger    *slog.Logger
}

// NewOrderGenerator creates the order and order-item generator.
func NewOrderGenerator(cfg *config.Config, faker *datagen.Faker, logger *slog.Logger) usecase.OrderGeneratorUsecase {
	// An unset rate means no guest orders; config.New fills the default
	// before construction.
	guestRate := 0.0
	if cfg.Generator.GuestOrderRate != nil {
		guestRate = *cfg.Generator.GuestOrderRate
	}

	return &orderService{
		cfg:       cfg.Generator,
		guestRate: guestRate,
		faker:     faker,
		logger:    logger,
	}
}

// GenerateDay fabricates one calendar day's orders and their line items.
func (s *orderService) GenerateDay(_ context.Context, ref *entity.ReferenceData, date time.Time) ([]*entity.Order, []*entity.OrderItem, error) {
	if len(ref.Customers) == 0 || len(ref.Products) == 0 {
		return nil, nil, errors.New("reference population is empty")
	}

	volume := s.dailyVolume(date)
	s.logger.Debug("sampled daily order volume",
		slog.String("date", date.Format("2006-01-02")),
		slog.Int("orders", volume))

	orders := make([]*entity.Order, 0, volume)
	var items []*entity.OrderItem

	for i := 0; i < volume; i++ {
		order, orderItems := s.generateOrder(ref, date)
		orders = append(orders, order)
		items = append(items, orderItems...)
	}

	// Return reasons are assigned in a final pass once every item of the day
	// exists, matching how the downstream models expect them to be populated.
	s.assignReturnReasons(items)

	return orders, items, nil
}

// dailyVolume samples the day's order count between 30% of the weekday
// ceiling and the (possibly weekend-scaled) ceiling.
func (s *orderService) dailyVolume(date time.Time) int {
	factor := 1.0
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		factor = weekendFactor
	}

	low := int(float64(s.cfg.MaxOrdersPerDay) * volumeFloor)
	high := int(float64(s.cfg.MaxOrdersPerDay) * factor)

	return s.faker.IntRange(low, high)
}

func (s *orderService) generateOrder(ref *entity.ReferenceData, date time.Time) (*entity.Order, []*entity.OrderItem) {
	// One customer is sampled for every order and supplies the shipping
	// snapshot. Guest status is decided independently: a guest order drops the
	// account reference but keeps the sampled address.
	customer := datagen.Pick(s.faker, ref.Customers)

	var customerID *uuid.UUID
	isGuest := s.faker.Chance(s.guestRate)
	if !isGuest {
		id := customer.ID
		customerID = &id
	}

	status := orderStatusChoice.Pick(s.faker)

	order := &entity.Order{
		ID:         s.faker.UUID(),
		CustomerID: customerID,
		IsGuest:    isGuest,
		OrderDate: time.Date(date.Year(), date.Month(), date.Day(),
			s.faker.IntRange(8, 22), s.faker.IntRange(0, 59), 0, 0, date.Location()),
		Status:          status,
		ShippingAddress: customer.Address,
		ShippingCity:    customer.City,
		ShippingState:   customer.State,
		ShippingZip:     customer.ZipCode,
		PaymentMethod:   datagen.Pick(s.faker, entity.PaymentMethods()),
		PaymentStatus:   s.paymentStatus(status),
		ShippingCost:    util.Round2(s.faker.Float64Range(0, 15)),
	}

	items, itemsTotal := s.generateItems(ref, order)

	// The total is a pure function of status and the finished item set, so it
	// is only written once every item exists.
	if status == entity.OrderStatusCompleted {
		order.TotalAmount = util.Round2(itemsTotal + order.ShippingCost)
	}

	return order, items
}

func (s *orderService) generateItems(ref *entity.ReferenceData, order *entity.Order) ([]*entity.OrderItem, float64) {
	numItems := s.faker.IntRange(1, 10)
	items := make([]*entity.OrderItem, 0, numItems)

	var total float64
	for i := 0; i < numItems; i++ {
		product := datagen.Pick(s.faker, ref.Products)
		quantity := s.faker.IntRange(1, 5)

		discount := 0.0
		if s.faker.Chance(0.3) {
			discount = util.Round2(s.faker.Float64Range(0, 0.3))
		}

		// Item totals stay unrounded; only the order total is rounded.
		itemTotal := float64(quantity) * product.SellingPrice * (1 - discount)
		total += itemTotal

		items = append(items, &entity.OrderItem{
			ID:           s.faker.UUID(),
			OrderID:      order.ID,
			ProductID:    product.ID,
			Quantity:     quantity,
			UnitPrice:    product.SellingPrice,
			DiscountPct:  discount,
			TotalPrice:   itemTotal,
			ReturnStatus: s.returnStatus(order.Status),
		})
	}

	return items, total
}

// paymentStatus derives the payment state from the order status: a completed
// order is always paid, anything else ended pending or failed.
func (s *orderService) paymentStatus(status entity.OrderStatus) entity.PaymentStatus {
	if status == entity.OrderStatusCompleted {
		return entity.PaymentStatusPaid
	}

	return datagen.Pick(s.faker, []entity.PaymentStatus{
		entity.PaymentStatusPending,
		entity.PaymentStatusFailed,
	})
}

// returnStatus samples the item return state. Items of a completed order are
// never returned.
func (s *orderService) returnStatus(orderStatus entity.OrderStatus) entity.ReturnStatus {
	if orderStatus == entity.OrderStatusCompleted {
		return entity.ReturnStatusNotReturned
	}

	return returnStatusChoice.Pick(s.faker)
}

func (s *orderService) assignReturnReasons(items []*entity.OrderItem) {
	reasons := entity.ReturnReasons()
	for _, item := range items {
		if item.ReturnStatus == entity.ReturnStatusNotReturned {
			continue
		}
		reason := datagen.Pick(s.faker, reasons)
		item.ReturnReason = &reason
	}
}
