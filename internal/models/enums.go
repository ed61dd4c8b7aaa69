// Package models defines the typed request/response schemas and enumerations
// for the Dhan v2 trading API.
package models

// TransactionType is the trading side of a transaction.
type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// Valid reports whether the transaction type is one Dhan accepts.
func (t TransactionType) Valid() bool {
	return t == TransactionBuy || t == TransactionSell
}

// ExchangeSegment identifies an exchange and market segment.
type ExchangeSegment string

const (
	SegmentNSEEquity    ExchangeSegment = "NSE_EQ"
	SegmentNSEFNO       ExchangeSegment = "NSE_FNO"
	SegmentNSECurrency  ExchangeSegment = "NSE_CURRENCY"
	SegmentBSEEquity    ExchangeSegment = "BSE_EQ"
	SegmentBSEFNO       ExchangeSegment = "BSE_FNO"
	SegmentBSECurrency  ExchangeSegment = "BSE_CURRENCY"
	SegmentMCXCommodity ExchangeSegment = "MCX_COMM"
	SegmentIndex        ExchangeSegment = "IDX_I"
)

// ExchangeSegments lists all known segments.
var ExchangeSegments = []ExchangeSegment{
	SegmentNSEEquity, SegmentNSEFNO, SegmentNSECurrency,
	SegmentBSEEquity, SegmentBSEFNO, SegmentBSECurrency,
	SegmentMCXCommodity, SegmentIndex,
}

func (s ExchangeSegment) Valid() bool {
	for _, v := range ExchangeSegments {
		if s == v {
			return true
		}
	}
	return false
}

// ProductType is the product under which an order is booked.
type ProductType string

const (
	ProductCNC      ProductType = "CNC"
	ProductIntraday ProductType = "INTRADAY"
	ProductMargin   ProductType = "MARGIN"
	ProductMTF      ProductType = "MTF"
	ProductCO       ProductType = "CO"
	ProductBO       ProductType = "BO"
)

var ProductTypes = []ProductType{
	ProductCNC, ProductIntraday, ProductMargin, ProductMTF, ProductCO, ProductBO,
}

func (p ProductType) Valid() bool {
	for _, v := range ProductTypes {
		if p == v {
			return true
		}
	}
	return false
}

// OrderType is the execution style of an order.
type OrderType string

const (
	OrderLimit          OrderType = "LIMIT"
	OrderMarket         OrderType = "MARKET"
	OrderStopLoss       OrderType = "STOP_LOSS"
	OrderStopLossMarket OrderType = "STOP_LOSS_MARKET"
)

var OrderTypes = []OrderType{OrderLimit, OrderMarket, OrderStopLoss, OrderStopLossMarket}

func (o OrderType) Valid() bool {
	for _, v := range OrderTypes {
		if o == v {
			return true
		}
	}
	return false
}

// RequiresPrice reports whether the order type needs a limit price.
func (o OrderType) RequiresPrice() bool {
	return o == OrderLimit || o == OrderStopLoss
}

// RequiresTrigger reports whether the order type needs a trigger price.
func (o OrderType) RequiresTrigger() bool {
	return o == OrderStopLoss || o == OrderStopLossMarket
}

// Validity is how long an order stays live.
type Validity string

const (
	ValidityDay Validity = "DAY"
	ValidityIOC Validity = "IOC"
)

func (v Validity) Valid() bool {
	return v == ValidityDay || v == ValidityIOC
}

// AMOTime is the release timing for an after-market order.
type AMOTime string

const (
	AMOPreOpen AMOTime = "PRE_OPEN"
	AMOOpen    AMOTime = "OPEN"
	AMOOpen30  AMOTime = "OPEN_30"
	AMOOpen60  AMOTime = "OPEN_60"
)

func (a AMOTime) Valid() bool {
	switch a {
	case AMOPreOpen, AMOOpen, AMOOpen30, AMOOpen60:
		return true
	}
	return false
}

// LegName identifies which leg of a BO/CO order a modification targets.
type LegName string

const (
	LegEntry    LegName = "ENTRY_LEG"
	LegTarget   LegName = "TARGET_LEG"
	LegStopLoss LegName = "STOP_LOSS_LEG"
)

func (l LegName) Valid() bool {
	switch l {
	case LegEntry, LegTarget, LegStopLoss:
		return true
	}
	return false
}

// Order status values as returned by the broker. The server does not model
// a status state machine; these exist so callers can compare against named
// values.
const (
	StatusTransit   = "TRANSIT"
	StatusPending   = "PENDING"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
	StatusTraded    = "TRADED"
	StatusExpired   = "EXPIRED"
)

// InstrumentKind distinguishes cash equity from derivatives in chart requests.
type InstrumentKind string

const (
	KindEquity      InstrumentKind = "EQUITY"
	KindDerivatives InstrumentKind = "DERIVATIVES"
)

func (k InstrumentKind) Valid() bool {
	return k == KindEquity || k == KindDerivatives
}

// Interval is the candle width for intraday charts, in minutes.
type Interval string

const (
	Interval1  Interval = "1"
	Interval5  Interval = "5"
	Interval15 Interval = "15"
	Interval25 Interval = "25"
	Interval60 Interval = "60"
)

var Intervals = []Interval{Interval1, Interval5, Interval15, Interval25, Interval60}

func (i Interval) Valid() bool {
	for _, v := range Intervals {
		if i == v {
			return true
		}
	}
	return false
}
