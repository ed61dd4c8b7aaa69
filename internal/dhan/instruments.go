package dhan

import (
	"context"
	"fmt"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// instrumentRecord is the loosely-shaped row the per-segment instrument API
// returns; field names mirror the scrip master columns.
type instrumentRecord struct {
	SecurityID     string  `json:"SEM_SMST_SECURITY_ID"`
	ExchangeID     string  `json:"SEM_EXM_EXCH_ID"`
	Segment        string  `json:"SEM_SEGMENT"`
	TradingSymbol  string  `json:"SEM_TRADING_SYMBOL"`
	CustomSymbol   string  `json:"SEM_CUSTOM_SYMBOL"`
	SymbolName     string  `json:"SM_SYMBOL_NAME"`
	InstrumentName string  `json:"SEM_INSTRUMENT_NAME"`
	LotUnits       int     `json:"SEM_LOT_UNITS"`
	ExpiryDate     string  `json:"SEM_EXPIRY_DATE"`
	StrikePrice    float64 `json:"SEM_STRIKE_PRICE"`
	OptionType     string  `json:"SEM_OPTION_TYPE"`
	TickSize       float64 `json:"SEM_TICK_SIZE"`
}

// GetInstrumentsBySegment returns the instrument list for one exchange
// segment from the broker's API (as opposed to the bulk CSV master, which
// internal/instruments handles).
func (c *Client) GetInstrumentsBySegment(ctx context.Context, segment models.ExchangeSegment) ([]models.Instrument, error) {
	if !segment.Valid() {
		return nil, &models.ValidationError{Field: "exchangeSegment", Message: fmt.Sprintf("invalid exchange segment %q", segment)}
	}
	var records []instrumentRecord
	if err := c.get(ctx, "/instrument/"+string(segment), nil, &records); err != nil {
		return nil, fmt.Errorf("fetching instruments for %s: %w", segment, err)
	}
	instruments := make([]models.Instrument, len(records))
	for i, r := range records {
		instruments[i] = models.Instrument{
			SecurityID:      r.SecurityID,
			ExchangeSegment: string(segment),
			TradingSymbol:   r.TradingSymbol,
			SymbolName:      r.SymbolName,
			CustomSymbol:    r.CustomSymbol,
			InstrumentType:  r.InstrumentName,
			LotSize:         r.LotUnits,
			ExpiryDate:      r.ExpiryDate,
			StrikePrice:     r.StrikePrice,
			OptionType:      r.OptionType,
			TickSize:        r.TickSize,
		}
	}
	return instruments, nil
}
