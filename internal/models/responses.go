package models

// Profile is the account profile returned by GET /profile.
type Profile struct {
	DhanClientID  string `json:"dhanClientId"`
	TokenValidity string `json:"tokenValidity"`
	ActiveSegment string `json:"activeSegment"`
	DDPI          string `json:"ddpi"`
	MTF           string `json:"mtf"`
	DataPlan      string `json:"dataPlan"`
	DataValidity  string `json:"dataValidity"`
}

// OrderResponse acknowledges an order placement, modification or cancellation.
type OrderResponse struct {
	OrderID     string `json:"orderId"`
	OrderStatus string `json:"orderStatus"`
}

// OrderDetail is a full order record as returned by the order book.
type OrderDetail struct {
	DhanClientID      string  `json:"dhanClientId"`
	OrderID           string  `json:"orderId"`
	CorrelationID     string  `json:"correlationId"`
	OrderStatus       string  `json:"orderStatus"`
	TransactionType   string  `json:"transactionType"`
	ExchangeSegment   string  `json:"exchangeSegment"`
	ProductType       string  `json:"productType"`
	OrderType         string  `json:"orderType"`
	Validity          string  `json:"validity"`
	TradingSymbol     string  `json:"tradingSymbol"`
	SecurityID        string  `json:"securityId"`
	Quantity          int     `json:"quantity"`
	DisclosedQuantity int     `json:"disclosedQuantity"`
	Price             float64 `json:"price"`
	TriggerPrice      float64 `json:"triggerPrice"`
	AfterMarketOrder  bool    `json:"afterMarketOrder"`
	LegName           string  `json:"legName"`
	CreateTime        string  `json:"createTime"`
	UpdateTime        string  `json:"updateTime"`
	ExchangeTime      string  `json:"exchangeTime"`
	DrvExpiryDate     string  `json:"drvExpiryDate"`
	DrvOptionType     string  `json:"drvOptionType"`
	DrvStrikePrice    float64 `json:"drvStrikePrice"`
	OMSErrorCode      string  `json:"omsErrorCode"`
	OMSErrorDesc      string  `json:"omsErrorDescription"`
	FilledQty         int     `json:"filled_qty"`
	AlgoID            string  `json:"algoId"`
}

// Trade is an executed trade record.
type Trade struct {
	DhanClientID     string  `json:"dhanClientId"`
	OrderID          string  `json:"orderId"`
	ExchangeOrderID  string  `json:"exchangeOrderId"`
	ExchangeTradeID  string  `json:"exchangeTradeId"`
	TransactionType  string  `json:"transactionType"`
	ExchangeSegment  string  `json:"exchangeSegment"`
	ProductType      string  `json:"productType"`
	OrderType        string  `json:"orderType"`
	TradingSymbol    string  `json:"tradingSymbol"`
	CustomSymbol     string  `json:"customSymbol"`
	SecurityID       string  `json:"securityId"`
	TradedQuantity   int     `json:"tradedQuantity"`
	TradedPrice      float64 `json:"tradedPrice"`
	CreateTime       string  `json:"createTime"`
	UpdateTime       string  `json:"updateTime"`
	ExchangeTime     string  `json:"exchangeTime"`
	STT              float64 `json:"stt"`
	BrokerageCharges float64 `json:"brokerageCharges"`
	ServiceTax       float64 `json:"serviceTax"`
	SEBITax          float64 `json:"sebiTax"`
}

// Position is an open trading position.
type Position struct {
	DhanClientID        string  `json:"dhanClientId"`
	TradingSymbol       string  `json:"tradingSymbol"`
	SecurityID          string  `json:"securityId"`
	PositionType        string  `json:"positionType"`
	ExchangeSegment     string  `json:"exchangeSegment"`
	ProductType         string  `json:"productType"`
	BuyAvg              float64 `json:"buyAvg"`
	BuyQty              int     `json:"buyQty"`
	SellAvg             float64 `json:"sellAvg"`
	SellQty             int     `json:"sellQty"`
	NetQty              int     `json:"netQty"`
	RealizedProfit      float64 `json:"realizedProfit"`
	UnrealizedProfit    float64 `json:"unrealizedProfit"`
	CostPrice           float64 `json:"costPrice"`
	Multiplier          int     `json:"multiplier"`
	CarryForwardBuyQty  int     `json:"carryForwardBuyQty"`
	CarryForwardSellQty int     `json:"carryForwardSellQty"`
	DrvExpiryDate       string  `json:"drvExpiryDate"`
	DrvOptionType       string  `json:"drvOptionType"`
	DrvStrikePrice      float64 `json:"drvStrikePrice"`
	CrossCurrency       bool    `json:"crossCurrency"`
}

// Holding is a long-term demat holding.
type Holding struct {
	Exchange        string  `json:"exchange"`
	TradingSymbol   string  `json:"tradingSymbol"`
	SecurityID      string  `json:"securityId"`
	ISIN            string  `json:"isin"`
	TotalQty        int     `json:"totalQty"`
	DPQty           int     `json:"dpQty"`
	T1Qty           int     `json:"t1Qty"`
	AvailableQty    int     `json:"availableQty"`
	CollateralQty   int     `json:"collateralQty"`
	AvgCostPrice    float64 `json:"avgCostPrice"`
	LastTradedPrice float64 `json:"lastTradedPrice"`
}

// FundLimit is the account funds snapshot. The upstream API really does
// spell "availabelBalance" that way.
type FundLimit struct {
	DhanClientID        string  `json:"dhanClientId"`
	AvailableBalance    float64 `json:"availabelBalance"`
	SODLimit            float64 `json:"sodLimit"`
	CollateralAmount    float64 `json:"collateralAmount"`
	ReceivableAmount    float64 `json:"receiveableAmount"`
	UtilizedAmount      float64 `json:"utilizedAmount"`
	BlockedPayoutAmount float64 `json:"blockedPayoutAmount"`
	WithdrawableBalance float64 `json:"withdrawableBalance"`
}

// MarginResponse is the broker's margin calculation for a prospective order.
type MarginResponse struct {
	TotalMargin         float64 `json:"totalMargin"`
	SpanMargin          float64 `json:"spanMargin"`
	ExposureMargin      float64 `json:"exposureMargin"`
	AvailableBalance    float64 `json:"availableBalance"`
	VariableMargin      float64 `json:"variableMargin"`
	InsufficientBalance float64 `json:"insufficientBalance"`
	Brokerage           float64 `json:"brokerage"`
	Leverage            string  `json:"leverage"`
}

// LedgerEntry is one credit/debit row of the account ledger. Amounts arrive
// as strings from upstream.
type LedgerEntry struct {
	DhanClientID   string `json:"dhanClientId"`
	Narration      string `json:"narration"`
	VoucherDate    string `json:"voucherdate"`
	Exchange       string `json:"exchange"`
	VoucherDesc    string `json:"voucherdesc"`
	VoucherNumber  string `json:"vouchernumber"`
	Debit          string `json:"debit"`
	Credit         string `json:"credit"`
	RunningBalance string `json:"runbal"`
}

// OHLC is an open/high/low/close snapshot inside a quote.
type OHLC struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// DepthLevel is one price level of the order book.
type DepthLevel struct {
	Quantity int     `json:"quantity"`
	Orders   int     `json:"orders"`
	Price    float64 `json:"price"`
}

// MarketDepth is the five-level order book of a quote.
type MarketDepth struct {
	Buy  []DepthLevel `json:"buy"`
	Sell []DepthLevel `json:"sell"`
}

// Quote is a market data snapshot for one instrument. LTP responses carry
// only LastPrice; OHLC and full-quote responses fill the rest.
type Quote struct {
	LastPrice         float64      `json:"last_price"`
	OHLC              *OHLC        `json:"ohlc,omitempty"`
	Volume            int64        `json:"volume,omitempty"`
	AveragePrice      float64      `json:"average_price,omitempty"`
	BuyQuantity       int64        `json:"buy_quantity,omitempty"`
	SellQuantity      int64        `json:"sell_quantity,omitempty"`
	NetChange         float64      `json:"net_change,omitempty"`
	UpperCircuitLimit float64      `json:"upper_circuit_limit,omitempty"`
	LowerCircuitLimit float64      `json:"lower_circuit_limit,omitempty"`
	OI                int64        `json:"oi,omitempty"`
	Depth             *MarketDepth `json:"depth,omitempty"`
	LastTradeTime     string       `json:"last_trade_time,omitempty"`
}

// MarketFeedResponse is the envelope for LTP/OHLC/depth snapshots:
// status plus data keyed by exchange segment, then security id.
type MarketFeedResponse struct {
	Status string                      `json:"status"`
	Data   map[string]map[string]Quote `json:"data"`
}

// ChartsResponse holds candle data as parallel arrays, the shape the charts
// endpoints return.
type ChartsResponse struct {
	Open         []float64 `json:"open"`
	High         []float64 `json:"high"`
	Low          []float64 `json:"low"`
	Close        []float64 `json:"close"`
	Volume       []float64 `json:"volume"`
	Timestamp    []float64 `json:"timestamp"`
	OpenInterest []float64 `json:"open_interest,omitempty"`
}

// Len returns the number of candles.
func (c *ChartsResponse) Len() int { return len(c.Open) }

// Instrument is one row of the instrument master.
type Instrument struct {
	SecurityID      string  `json:"securityId"`
	ExchangeSegment string  `json:"exchangeSegment"`
	TradingSymbol   string  `json:"tradingSymbol"`
	SymbolName      string  `json:"symbolName"`
	CustomSymbol    string  `json:"customSymbol"`
	InstrumentType  string  `json:"instrumentType"`
	LotSize         int     `json:"lotSize"`
	ExpiryDate      string  `json:"expiryDate,omitempty"`
	StrikePrice     float64 `json:"strikePrice,omitempty"`
	OptionType      string  `json:"optionType,omitempty"`
	TickSize        float64 `json:"tickSize,omitempty"`
}
