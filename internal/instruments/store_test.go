package instruments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "instruments.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var sampleInstruments = []models.Instrument{
	{SecurityID: "1333", ExchangeSegment: "NSE_EQ", TradingSymbol: "HDFCBANK", SymbolName: "HDFC BANK", CustomSymbol: "HDFC Bank", InstrumentType: "EQUITY", LotSize: 1, TickSize: 0.05},
	{SecurityID: "11536", ExchangeSegment: "NSE_EQ", TradingSymbol: "TCS", SymbolName: "TCS", CustomSymbol: "Tata Consultancy Services", InstrumentType: "EQUITY", LotSize: 1, TickSize: 0.05},
	{SecurityID: "2885", ExchangeSegment: "NSE_EQ", TradingSymbol: "RELIANCE", SymbolName: "RELIANCE INDUSTRIES", CustomSymbol: "Reliance Industries", InstrumentType: "EQUITY", LotSize: 1, TickSize: 0.05},
	{SecurityID: "49081", ExchangeSegment: "NSE_FNO", TradingSymbol: "NIFTY-Dec2025-24000-CE", SymbolName: "NIFTY", CustomSymbol: "NIFTY 24000 CE", InstrumentType: "OPTIDX", LotSize: 75, ExpiryDate: "2025-12-24", StrikePrice: 24000, OptionType: "CE", TickSize: 0.05},
}

func TestReplaceAndSearch(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Replace(ctx, sampleInstruments); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != len(sampleInstruments) {
		t.Errorf("count = %d, want %d", count, len(sampleInstruments))
	}

	if _, ok := store.LoadedAt(ctx); !ok {
		t.Error("LoadedAt not stamped after Replace")
	}

	matches, err := store.Search(ctx, Query{Text: "reliance"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 1 || matches[0].SecurityID != "2885" {
		t.Errorf("matches = %+v", matches)
	}

	// Search is case-insensitive on all three symbol columns.
	matches, err = store.Search(ctx, Query{Text: "Tata Consultancy"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 1 || matches[0].SecurityID != "11536" {
		t.Errorf("matches = %+v", matches)
	}
}

func TestSearchFilters(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	if err := store.Replace(ctx, sampleInstruments); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	matches, err := store.Search(ctx, Query{Text: "nifty", ExchangeSegment: models.SegmentNSEFNO, InstrumentType: "OPTIDX"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 1 || matches[0].SecurityID != "49081" {
		t.Errorf("matches = %+v", matches)
	}

	matches, err = store.Search(ctx, Query{Text: "nifty", ExchangeSegment: models.SegmentNSEEquity})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("segment filter leaked: %+v", matches)
	}
}

func TestSearchRequiresText(t *testing.T) {
	store := testStore(t)
	if _, err := store.Search(context.Background(), Query{Text: "  "}); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestReplaceIsAtomic(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Replace(ctx, sampleInstruments); err != nil {
		t.Fatalf("first Replace: %v", err)
	}
	if err := store.Replace(ctx, sampleInstruments[:1]); err != nil {
		t.Fatalf("second Replace: %v", err)
	}
	count, _ := store.Count(ctx)
	if count != 1 {
		t.Errorf("count after replace = %d, want 1", count)
	}
}

func csvServer(t *testing.T, body string, hits *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestServiceEnsureFreshSkipsRecentLoad(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	var hits int
	srv := csvServer(t, sampleMaster, &hits)
	service := NewService(store, ServiceConfig{
		MasterURL:  srv.URL,
		Refresh:    time.Hour,
		HTTPClient: srv.Client(),
	}, zerolog.Nop())

	if err := service.EnsureFresh(ctx); err != nil {
		t.Fatalf("EnsureFresh: %v", err)
	}
	if err := service.EnsureFresh(ctx); err != nil {
		t.Fatalf("second EnsureFresh: %v", err)
	}
	if hits != 1 {
		t.Errorf("master downloaded %d times, want 1", hits)
	}

	count, _ := service.Count(ctx)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestServiceResolve(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	srv := csvServer(t, sampleMaster, nil)
	service := NewService(store, ServiceConfig{
		MasterURL:  srv.URL,
		HTTPClient: srv.Client(),
	}, zerolog.Nop())

	// Shortcut table answers without touching the store.
	id, err := service.Resolve(ctx, "Reliance", models.SegmentNSEEquity)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "2885" {
		t.Errorf("reliance id = %q, want 2885", id)
	}

	// Unlisted names fall through to the search index.
	id, err = service.Resolve(ctx, "nifty", models.SegmentNSEFNO)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "49081" {
		t.Errorf("nifty id = %q, want 49081", id)
	}

	if _, err := service.Resolve(ctx, "no-such-symbol", models.SegmentNSEEquity); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}
