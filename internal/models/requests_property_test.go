package models

import (
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: any order built from valid enum values with positive quantity
// and prices passes validation.
func TestProperty_ValidOrdersPassValidation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	orderGen := gen.Struct(reflect.TypeOf(OrderRequest{}), map[string]gopter.Gen{
		"DhanClientID":    gen.OneConstOf("1000000001", "1000000002"),
		"TransactionType": gen.OneConstOf(TransactionBuy, TransactionSell),
		"ExchangeSegment": gen.OneConstOf(SegmentNSEEquity, SegmentBSEEquity, SegmentNSEFNO, SegmentMCXCommodity),
		"ProductType":     gen.OneConstOf(ProductCNC, ProductIntraday, ProductMargin),
		"OrderType":       gen.OneConstOf(OrderLimit, OrderMarket),
		"Validity":        gen.OneConstOf(ValidityDay, ValidityIOC),
		"SecurityID":      gen.OneConstOf("1333", "11536", "2885"),
		"Quantity":        gen.IntRange(1, 10000),
		"Price":           gen.Float64Range(1.0, 50000.0),
	})

	properties.Property("valid enum combinations validate", prop.ForAll(
		func(order OrderRequest) bool {
			return order.Validate() == nil
		},
		orderGen,
	))

	properties.TestingRun(t)
}

// Property: an unknown order type is rejected regardless of the rest of
// the payload.
func TestProperty_UnknownOrderTypeRejected(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("garbage order types never validate", prop.ForAll(
		func(orderType string, qty int) bool {
			order := OrderRequest{
				DhanClientID:    "1000000001",
				TransactionType: TransactionBuy,
				ExchangeSegment: SegmentNSEEquity,
				ProductType:     ProductCNC,
				OrderType:       OrderType(orderType),
				Validity:        ValidityDay,
				SecurityID:      "1333",
				Quantity:        qty,
				Price:           100,
			}
			err := order.Validate()
			if OrderType(orderType).Valid() {
				return err == nil
			}
			return err != nil
		},
		gen.OneConstOf("BANANA", "limit", "MKT", "", "SL", "LIMIT"),
		gen.IntRange(1, 100),
	))

	properties.TestingRun(t)
}

// Property: disclosed quantity can never exceed total quantity.
func TestProperty_DisclosedQuantityBounded(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("disclosed quantity above total is rejected", prop.ForAll(
		func(qty, extra int) bool {
			order := OrderRequest{
				DhanClientID:      "1000000001",
				TransactionType:   TransactionBuy,
				ExchangeSegment:   SegmentNSEEquity,
				ProductType:       ProductCNC,
				OrderType:         OrderMarket,
				Validity:          ValidityDay,
				SecurityID:        "1333",
				Quantity:          qty,
				DisclosedQuantity: qty + extra,
			}
			return order.Validate() != nil
		},
		gen.IntRange(1, 1000),
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}

func TestOrderRequestPriceRules(t *testing.T) {
	base := OrderRequest{
		DhanClientID:    "1000000001",
		TransactionType: TransactionBuy,
		ExchangeSegment: SegmentNSEEquity,
		ProductType:     ProductCNC,
		Validity:        ValidityDay,
		SecurityID:      "1333",
		Quantity:        10,
	}

	tests := []struct {
		name    string
		mutate  func(*OrderRequest)
		wantErr bool
	}{
		{"market needs no price", func(o *OrderRequest) { o.OrderType = OrderMarket }, false},
		{"limit without price", func(o *OrderRequest) { o.OrderType = OrderLimit }, true},
		{"limit with price", func(o *OrderRequest) { o.OrderType = OrderLimit; o.Price = 1450.5 }, false},
		{"stop loss without trigger", func(o *OrderRequest) { o.OrderType = OrderStopLoss; o.Price = 100 }, true},
		{"stop loss complete", func(o *OrderRequest) { o.OrderType = OrderStopLoss; o.Price = 100; o.TriggerPrice = 99 }, false},
		{"stop loss market without trigger", func(o *OrderRequest) { o.OrderType = OrderStopLossMarket }, true},
		{"stop loss market with trigger", func(o *OrderRequest) { o.OrderType = OrderStopLossMarket; o.TriggerPrice = 99 }, false},
		{"amo without timing", func(o *OrderRequest) { o.OrderType = OrderMarket; o.AfterMarketOrder = true }, true},
		{"amo with timing", func(o *OrderRequest) { o.OrderType = OrderMarket; o.AfterMarketOrder = true; o.AMOTime = AMOPreOpen }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := base
			tt.mutate(&order)
			err := order.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestMarketFeedRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     MarketFeedRequest
		wantErr bool
	}{
		{"empty", MarketFeedRequest{}, true},
		{"valid", MarketFeedRequest{Instruments: map[ExchangeSegment][]int{SegmentNSEEquity: {1333}}}, false},
		{"bad segment", MarketFeedRequest{Instruments: map[ExchangeSegment][]int{"NSE": {1333}}}, true},
		{"empty segment list", MarketFeedRequest{Instruments: map[ExchangeSegment][]int{SegmentNSEEquity: {}}}, true},
		{"non-positive id", MarketFeedRequest{Instruments: map[ExchangeSegment][]int{SegmentNSEEquity: {0}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
