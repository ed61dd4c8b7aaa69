package instruments

import (
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// masterRow is one line of the Dhan scrip-master CSV. Numeric columns are
// kept as strings because the file mixes empty cells into them.
type masterRow struct {
	ExchangeID     string `csv:"SEM_EXM_EXCH_ID"`
	Segment        string `csv:"SEM_SEGMENT"`
	SecurityID     string `csv:"SEM_SMST_SECURITY_ID"`
	InstrumentName string `csv:"SEM_INSTRUMENT_NAME"`
	ExpiryCode     string `csv:"SEM_EXPIRY_CODE"`
	TradingSymbol  string `csv:"SEM_TRADING_SYMBOL"`
	LotUnits       string `csv:"SEM_LOT_UNITS"`
	CustomSymbol   string `csv:"SEM_CUSTOM_SYMBOL"`
	ExpiryDate     string `csv:"SEM_EXPIRY_DATE"`
	StrikePrice    string `csv:"SEM_STRIKE_PRICE"`
	OptionType     string `csv:"SEM_OPTION_TYPE"`
	TickSize       string `csv:"SEM_TICK_SIZE"`
	SymbolName     string `csv:"SM_SYMBOL_NAME"`
}

// segmentFor derives the API exchange-segment code from the CSV's exchange
// and single-letter segment columns.
func segmentFor(exchangeID, segment string) models.ExchangeSegment {
	exch := strings.ToUpper(strings.TrimSpace(exchangeID))
	seg := strings.ToUpper(strings.TrimSpace(segment))

	if exch == "MCX" {
		return models.SegmentMCXCommodity
	}
	var suffix string
	switch seg {
	case "E":
		suffix = "EQ"
	case "D":
		suffix = "FNO"
	case "C":
		suffix = "CURRENCY"
	case "I":
		return models.SegmentIndex
	default:
		return ""
	}
	return models.ExchangeSegment(exch + "_" + suffix)
}

// parseMaster decodes the scrip-master CSV into instrument rows, skipping
// lines whose segment cannot be mapped.
func parseMaster(data []byte) ([]models.Instrument, error) {
	var rows []masterRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, err
	}

	instruments := make([]models.Instrument, 0, len(rows))
	for _, r := range rows {
		segment := segmentFor(r.ExchangeID, r.Segment)
		if segment == "" || strings.TrimSpace(r.SecurityID) == "" {
			continue
		}
		lot, _ := strconv.Atoi(strings.TrimSpace(r.LotUnits))
		strike, _ := strconv.ParseFloat(strings.TrimSpace(r.StrikePrice), 64)
		tick, _ := strconv.ParseFloat(strings.TrimSpace(r.TickSize), 64)
		instruments = append(instruments, models.Instrument{
			SecurityID:      strings.TrimSpace(r.SecurityID),
			ExchangeSegment: string(segment),
			TradingSymbol:   strings.TrimSpace(r.TradingSymbol),
			SymbolName:      strings.TrimSpace(r.SymbolName),
			CustomSymbol:    strings.TrimSpace(r.CustomSymbol),
			InstrumentType:  strings.TrimSpace(r.InstrumentName),
			LotSize:         lot,
			ExpiryDate:      strings.TrimSpace(r.ExpiryDate),
			StrikePrice:     strike,
			OptionType:      strings.TrimSpace(r.OptionType),
			TickSize:        tick,
		})
	}
	return instruments, nil
}
