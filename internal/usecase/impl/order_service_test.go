package impl

import (
	"context"
	"testing"
	"time"

	"martgen/internal/domain/entity"
	"martgen/internal/infra/datagen"
	"martgen/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderFixtures holds the generator under test plus its reference population.
type orderFixtures struct {
	svc   *orderService
	ref   *entity.ReferenceData
	faker *datagen.Faker
}

func createTestOrderGenerator(t *testing.T) orderFixtures {
	t.Helper()

	cfg := testConfig(t)
	faker := datagen.New(testSeed)
	ref := testReference(t, faker, 20, 10)
	svc := NewOrderGenerator(cfg, faker, testLogger()).(*orderService)

	return orderFixtures{svc: svc, ref: ref, faker: faker}
}

func TestOrderService_GenerateDay_WeekdayVolume(t *testing.T) {
	fx := createTestOrderGenerator(t)
	tuesday := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	orders, items, err := fx.svc.GenerateDay(context.Background(), fx.ref, tuesday)
	require.NoError(t, err)

	// MaxOrdersPerDay is 20, so a weekday samples 6 to 20 orders.
	assert.GreaterOrEqual(t, len(orders), 6)
	assert.LessOrEqual(t, len(orders), 20)
	assert.NotEmpty(t, items)
}

func TestOrderService_DailyVolume_WeekendCeiling(t *testing.T) {
	fx := createTestOrderGenerator(t)
	saturday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		weekend := fx.svc.dailyVolume(saturday)
		assert.GreaterOrEqual(t, weekend, 6)
		assert.LessOrEqual(t, weekend, 30)

		weekday := fx.svc.dailyVolume(tuesday)
		assert.GreaterOrEqual(t, weekday, 6)
		assert.LessOrEqual(t, weekday, 20)
	}
}

func TestOrderService_GenerateDay_ZeroGuestRate(t *testing.T) {
	cfg := testConfig(t)
	zero := 0.0
	cfg.Generator.GuestOrderRate = &zero

	faker := datagen.New(testSeed)
	ref := testReference(t, faker, 20, 10)
	svc := NewOrderGenerator(cfg, faker, testLogger())

	// A configured zero rate means every order keeps its account reference.
	for day := 0; day < 10; day++ {
		date := time.Date(2024, 3, 4+day, 0, 0, 0, 0, time.UTC)
		orders, _, err := svc.GenerateDay(context.Background(), ref, date)
		require.NoError(t, err)

		for _, order := range orders {
			assert.False(t, order.IsGuest)
			require.NotNil(t, order.CustomerID)
		}
	}
}

func TestOrderService_GenerateDay_OrderInvariants(t *testing.T) {
	fx := createTestOrderGenerator(t)
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	orders, items, err := fx.svc.GenerateDay(context.Background(), fx.ref, date)
	require.NoError(t, err)

	itemsByOrder := make(map[string][]*entity.OrderItem)
	for _, item := range items {
		itemsByOrder[item.OrderID.String()] = append(itemsByOrder[item.OrderID.String()], item)
	}

	for _, order := range orders {
		assert.True(t, order.Status.IsValid())
		assert.Equal(t, date.Year(), order.OrderDate.Year())
		assert.Equal(t, date.Day(), order.OrderDate.Day())
		assert.GreaterOrEqual(t, order.OrderDate.Hour(), 8)
		assert.LessOrEqual(t, order.OrderDate.Hour(), 22)

		// Guest orders drop the account reference but keep the address snapshot.
		if order.IsGuest {
			assert.Nil(t, order.CustomerID)
		} else {
			assert.NotNil(t, order.CustomerID)
		}
		assert.NotEmpty(t, order.ShippingAddress)
		assert.NotEmpty(t, order.ShippingCity)

		orderItems := itemsByOrder[order.ID.String()]
		require.NotEmpty(t, orderItems, "every order has at least one item")
		assert.LessOrEqual(t, len(orderItems), 10)

		var itemsTotal float64
		for _, item := range orderItems {
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.LessOrEqual(t, item.Quantity, 5)
			assert.GreaterOrEqual(t, item.DiscountPct, 0.0)
			assert.LessOrEqual(t, item.DiscountPct, 0.3)
			assert.InDelta(t, float64(item.Quantity)*item.UnitPrice*(1-item.DiscountPct), item.TotalPrice, 1e-9)
			itemsTotal += item.TotalPrice
		}

		if order.Status == entity.OrderStatusCompleted {
			assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
			assert.InDelta(t, util.Round2(itemsTotal+order.ShippingCost), order.TotalAmount, 1e-9)
		} else {
			assert.Contains(t, []entity.PaymentStatus{
				entity.PaymentStatusPending,
				entity.PaymentStatusFailed,
			}, order.PaymentStatus)
			assert.Zero(t, order.TotalAmount)
		}
	}
}

func TestOrderService_GenerateDay_ReturnSemantics(t *testing.T) {
	fx := createTestOrderGenerator(t)
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	statusByOrder := make(map[string]entity.OrderStatus)

	// Accumulate several days so both returned and non-returned items show up.
	var allItems []*entity.OrderItem
	for day := 0; day < 20; day++ {
		orders, items, err := fx.svc.GenerateDay(context.Background(), fx.ref, date.AddDate(0, 0, day))
		require.NoError(t, err)
		for _, order := range orders {
			statusByOrder[order.ID.String()] = order.Status
		}
		allItems = append(allItems, items...)
	}

	var returned int
	for _, item := range allItems {
		if statusByOrder[item.OrderID.String()] == entity.OrderStatusCompleted {
			assert.Equal(t, entity.ReturnStatusNotReturned, item.ReturnStatus)
		}

		if item.ReturnStatus == entity.ReturnStatusNotReturned {
			assert.Nil(t, item.ReturnReason)
		} else {
			returned++
			require.NotNil(t, item.ReturnReason)
			assert.Contains(t, entity.ReturnReasons(), *item.ReturnReason)
		}
	}

	assert.Positive(t, returned, "20 days of orders should include some returns")
}

func TestOrderService_GenerateDay_EmptyReference(t *testing.T) {
	cfg := testConfig(t)
	svc := NewOrderGenerator(cfg, datagen.New(testSeed), testLogger())

	_, _, err := svc.GenerateDay(context.Background(), &entity.ReferenceData{}, time.Now())
	require.Error(t, err)
}

func TestOrderService_GenerateDay_DeterministicForSeed(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	generate := func() []*entity.Order {
		cfg := testConfig(t)
		faker := datagen.New(testSeed)
		ref := testReference(t, faker, 20, 10)
		svc := NewOrderGenerator(cfg, faker, testLogger())

		orders, _, err := svc.GenerateDay(context.Background(), ref, date)
		require.NoError(t, err)

		return orders
	}

	first := generate()
	second := generate()

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Status, second[i].Status)
		assert.Equal(t, first[i].TotalAmount, second[i].TotalAmount)
	}
}
