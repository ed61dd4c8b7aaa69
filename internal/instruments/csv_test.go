package instruments

import (
	"testing"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

func TestSegmentFor(t *testing.T) {
	tests := []struct {
		exchange, segment string
		want              models.ExchangeSegment
	}{
		{"NSE", "E", models.SegmentNSEEquity},
		{"NSE", "D", models.SegmentNSEFNO},
		{"NSE", "C", models.SegmentNSECurrency},
		{"BSE", "E", models.SegmentBSEEquity},
		{"BSE", "D", models.SegmentBSEFNO},
		{"MCX", "M", models.SegmentMCXCommodity},
		{"NSE", "I", models.SegmentIndex},
		{"nse", "e", models.SegmentNSEEquity},
		{"NSE", "X", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		if got := segmentFor(tt.exchange, tt.segment); got != tt.want {
			t.Errorf("segmentFor(%q, %q) = %q, want %q", tt.exchange, tt.segment, got, tt.want)
		}
	}
}

const sampleMaster = `SEM_EXM_EXCH_ID,SEM_SEGMENT,SEM_SMST_SECURITY_ID,SEM_INSTRUMENT_NAME,SEM_EXPIRY_CODE,SEM_TRADING_SYMBOL,SEM_LOT_UNITS,SEM_CUSTOM_SYMBOL,SEM_EXPIRY_DATE,SEM_STRIKE_PRICE,SEM_OPTION_TYPE,SEM_TICK_SIZE,SM_SYMBOL_NAME
NSE,E,1333,EQUITY,,HDFCBANK,1,HDFC Bank,,,,0.05,HDFC BANK
NSE,E,11536,EQUITY,,TCS,1,Tata Consultancy Services,,,,0.05,TCS
NSE,D,49081,OPTIDX,0,NIFTY-Dec2025-24000-CE,75,NIFTY 24000 CE,2025-12-24,24000,CE,0.05,NIFTY
ZZZ,X,99999,EQUITY,,JUNK,1,Junk,,,,0.05,JUNK
NSE,E,,EQUITY,,NOID,1,No Id,,,,0.05,NO ID
`

func TestParseMaster(t *testing.T) {
	rows, err := parseMaster([]byte(sampleMaster))
	if err != nil {
		t.Fatalf("parseMaster: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("parsed %d rows, want 3 (unmappable and id-less rows skipped)", len(rows))
	}

	hdfc := rows[0]
	if hdfc.SecurityID != "1333" || hdfc.ExchangeSegment != "NSE_EQ" {
		t.Errorf("row 0 = %+v", hdfc)
	}
	if hdfc.TickSize != 0.05 {
		t.Errorf("tick size = %v", hdfc.TickSize)
	}

	opt := rows[2]
	if opt.ExchangeSegment != "NSE_FNO" || opt.InstrumentType != "OPTIDX" {
		t.Errorf("derivative row = %+v", opt)
	}
	if opt.LotSize != 75 || opt.StrikePrice != 24000 || opt.OptionType != "CE" {
		t.Errorf("derivative fields = lot %d strike %v type %q", opt.LotSize, opt.StrikePrice, opt.OptionType)
	}
}
