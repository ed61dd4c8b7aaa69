package models

// OrderRequest is the payload for placing a new order. Field names follow
// the Dhan v2 wire format exactly.
type OrderRequest struct {
	DhanClientID      string          `json:"dhanClientId"`
	CorrelationID     string          `json:"correlationId,omitempty"`
	TransactionType   TransactionType `json:"transactionType"`
	ExchangeSegment   ExchangeSegment `json:"exchangeSegment"`
	ProductType       ProductType     `json:"productType"`
	OrderType         OrderType       `json:"orderType"`
	Validity          Validity        `json:"validity"`
	SecurityID        string          `json:"securityId"`
	Quantity          int             `json:"quantity"`
	DisclosedQuantity int             `json:"disclosedQuantity,omitempty"`
	Price             float64         `json:"price,omitempty"`
	TriggerPrice      float64         `json:"triggerPrice,omitempty"`
	AfterMarketOrder  bool            `json:"afterMarketOrder"`
	AMOTime           AMOTime         `json:"amoTime,omitempty"`
	BOProfitValue     float64         `json:"boProfitValue,omitempty"`
	BOStopLossValue   float64         `json:"boStopLossValue,omitempty"`
}

// Validate rejects a malformed order before it reaches the wire.
func (r *OrderRequest) Validate() error {
	if r.DhanClientID == "" {
		return invalid("dhanClientId", "client id is required")
	}
	if !r.TransactionType.Valid() {
		return invalid("transactionType", "invalid transaction type %q", r.TransactionType)
	}
	if !r.ExchangeSegment.Valid() {
		return invalid("exchangeSegment", "invalid exchange segment %q", r.ExchangeSegment)
	}
	if !r.ProductType.Valid() {
		return invalid("productType", "invalid product type %q", r.ProductType)
	}
	if !r.OrderType.Valid() {
		return invalid("orderType", "invalid order type %q", r.OrderType)
	}
	if !r.Validity.Valid() {
		return invalid("validity", "invalid validity %q", r.Validity)
	}
	if err := ValidateSecurityID(r.SecurityID); err != nil {
		return err
	}
	if r.Quantity <= 0 {
		return invalid("quantity", "quantity must be positive, got %d", r.Quantity)
	}
	if r.DisclosedQuantity < 0 {
		return invalid("disclosedQuantity", "disclosed quantity cannot be negative")
	}
	if r.DisclosedQuantity > r.Quantity {
		return invalid("disclosedQuantity", "disclosed quantity %d exceeds quantity %d", r.DisclosedQuantity, r.Quantity)
	}
	if r.OrderType.RequiresPrice() && r.Price <= 0 {
		return invalid("price", "%s orders require a positive price", r.OrderType)
	}
	if r.OrderType.RequiresTrigger() && r.TriggerPrice <= 0 {
		return invalid("triggerPrice", "%s orders require a positive trigger price", r.OrderType)
	}
	if r.AMOTime != "" && !r.AMOTime.Valid() {
		return invalid("amoTime", "invalid AMO timing %q", r.AMOTime)
	}
	if r.AfterMarketOrder && r.AMOTime == "" {
		return invalid("amoTime", "after-market orders require an AMO timing")
	}
	return nil
}

// SliceOrderRequest places an order sliced into legs over the freeze limit.
// The payload is identical to a regular order; only the endpoint differs.
type SliceOrderRequest OrderRequest

func (r *SliceOrderRequest) Validate() error {
	return (*OrderRequest)(r).Validate()
}

// ModifyOrderRequest amends a pending order.
type ModifyOrderRequest struct {
	DhanClientID      string    `json:"dhanClientId"`
	OrderID           string    `json:"orderId"`
	OrderType         OrderType `json:"orderType"`
	LegName           LegName   `json:"legName,omitempty"`
	Quantity          int       `json:"quantity,omitempty"`
	Price             float64   `json:"price,omitempty"`
	DisclosedQuantity int       `json:"disclosedQuantity,omitempty"`
	TriggerPrice      float64   `json:"triggerPrice,omitempty"`
	Validity          Validity  `json:"validity"`
}

func (r *ModifyOrderRequest) Validate() error {
	if r.DhanClientID == "" {
		return invalid("dhanClientId", "client id is required")
	}
	if err := ValidateOrderID("orderId", r.OrderID); err != nil {
		return err
	}
	if !r.OrderType.Valid() {
		return invalid("orderType", "invalid order type %q", r.OrderType)
	}
	if !r.Validity.Valid() {
		return invalid("validity", "invalid validity %q", r.Validity)
	}
	if r.LegName != "" && !r.LegName.Valid() {
		return invalid("legName", "invalid leg name %q", r.LegName)
	}
	if r.Quantity < 0 {
		return invalid("quantity", "quantity cannot be negative")
	}
	if r.Price < 0 {
		return invalid("price", "price cannot be negative")
	}
	if r.TriggerPrice < 0 {
		return invalid("triggerPrice", "trigger price cannot be negative")
	}
	return nil
}

// MarginRequest asks the broker for the margin required by a prospective order.
type MarginRequest struct {
	DhanClientID    string          `json:"dhanClientId"`
	ExchangeSegment ExchangeSegment `json:"exchangeSegment"`
	TransactionType TransactionType `json:"transactionType"`
	Quantity        int             `json:"quantity"`
	ProductType     ProductType     `json:"productType"`
	SecurityID      string          `json:"securityId"`
	Price           float64         `json:"price"`
	TriggerPrice    float64         `json:"triggerPrice,omitempty"`
}

func (r *MarginRequest) Validate() error {
	if r.DhanClientID == "" {
		return invalid("dhanClientId", "client id is required")
	}
	if !r.ExchangeSegment.Valid() {
		return invalid("exchangeSegment", "invalid exchange segment %q", r.ExchangeSegment)
	}
	if !r.TransactionType.Valid() {
		return invalid("transactionType", "invalid transaction type %q", r.TransactionType)
	}
	if !r.ProductType.Valid() {
		return invalid("productType", "invalid product type %q", r.ProductType)
	}
	if err := ValidateSecurityID(r.SecurityID); err != nil {
		return err
	}
	if r.Quantity <= 0 {
		return invalid("quantity", "quantity must be positive, got %d", r.Quantity)
	}
	if r.Price <= 0 {
		return invalid("price", "price must be positive")
	}
	return nil
}

// MarketFeedRequest names the instruments for a quote snapshot, grouped by
// exchange segment. The wire payload is the bare map.
type MarketFeedRequest struct {
	Instruments map[ExchangeSegment][]int
}

func (r *MarketFeedRequest) Validate() error {
	if len(r.Instruments) == 0 {
		return invalid("instruments", "at least one exchange segment is required")
	}
	for segment, ids := range r.Instruments {
		if !segment.Valid() {
			return invalid("instruments", "invalid exchange segment %q", segment)
		}
		if len(ids) == 0 {
			return invalid("instruments", "segment %s has no security ids", segment)
		}
		for _, id := range ids {
			if id <= 0 {
				return invalid("instruments", "segment %s has non-positive security id %d", segment, id)
			}
		}
	}
	return nil
}

// HistoricalDataRequest fetches daily OHLC candles.
type HistoricalDataRequest struct {
	SecurityID      string          `json:"securityId"`
	ExchangeSegment ExchangeSegment `json:"exchangeSegment"`
	Instrument      InstrumentKind  `json:"instrument"`
	ExpiryCode      int             `json:"expiryCode"`
	OI              bool            `json:"oi"`
	FromDate        string          `json:"fromDate"`
	ToDate          string          `json:"toDate"`
}

func (r *HistoricalDataRequest) Validate() error {
	if err := ValidateSecurityID(r.SecurityID); err != nil {
		return err
	}
	if !r.ExchangeSegment.Valid() {
		return invalid("exchangeSegment", "invalid exchange segment %q", r.ExchangeSegment)
	}
	if !r.Instrument.Valid() {
		return invalid("instrument", "invalid instrument kind %q", r.Instrument)
	}
	if err := ValidateDate("fromDate", r.FromDate); err != nil {
		return err
	}
	if err := ValidateDate("toDate", r.ToDate); err != nil {
		return err
	}
	return ValidateDateOrder(r.FromDate, r.ToDate)
}

// IntradayDataRequest fetches minute-level OHLC candles.
type IntradayDataRequest struct {
	SecurityID      string          `json:"securityId"`
	ExchangeSegment ExchangeSegment `json:"exchangeSegment"`
	Instrument      InstrumentKind  `json:"instrument"`
	Interval        Interval        `json:"interval"`
	OI              bool            `json:"oi"`
	FromDate        string          `json:"fromDate"`
	ToDate          string          `json:"toDate"`
}

func (r *IntradayDataRequest) Validate() error {
	if err := ValidateSecurityID(r.SecurityID); err != nil {
		return err
	}
	if !r.ExchangeSegment.Valid() {
		return invalid("exchangeSegment", "invalid exchange segment %q", r.ExchangeSegment)
	}
	if !r.Instrument.Valid() {
		return invalid("instrument", "invalid instrument kind %q", r.Instrument)
	}
	if !r.Interval.Valid() {
		return invalid("interval", "invalid interval %q (want 1, 5, 15, 25 or 60)", r.Interval)
	}
	if err := ValidateDateTime("fromDate", r.FromDate); err != nil {
		return err
	}
	if err := ValidateDateTime("toDate", r.ToDate); err != nil {
		return err
	}
	return ValidateDateOrder(r.FromDate, r.ToDate)
}

// DateRangeRequest scopes ledger and historical-trade lookups.
type DateRangeRequest struct {
	FromDate string
	ToDate   string
	Page     int
}

func (r *DateRangeRequest) Validate() error {
	if err := ValidateDate("from_date", r.FromDate); err != nil {
		return err
	}
	if err := ValidateDate("to_date", r.ToDate); err != nil {
		return err
	}
	if r.Page < 0 {
		return invalid("page", "page cannot be negative")
	}
	return ValidateDateOrder(r.FromDate, r.ToDate)
}
