package dhan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:     srv.URL,
		ClientID:    "1000000001",
		AccessToken: "test-token",
		HTTPClient:  srv.Client(),
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func decodeBody(t *testing.T, r *http.Request, out any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		t.Fatalf("decoding request body: %v", err)
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{ClientID: "", AccessToken: ""}, zerolog.Nop())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindConfig {
		t.Fatalf("want config error, got %v", err)
	}
}

func TestAuthHeadersSent(t *testing.T) {
	var gotToken, gotClientID string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("access-token")
		gotClientID = r.Header.Get("client-id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"dhanClientId":"1000000001"}`))
	}))

	if _, err := client.GetProfile(context.Background()); err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if gotToken != "test-token" {
		t.Errorf("access-token header = %q, want test-token", gotToken)
	}
	if gotClientID != "" {
		t.Errorf("client-id header should not be sent on plain endpoints, got %q", gotClientID)
	}
}

func TestFeedEndpointsSendClientIDHeader(t *testing.T) {
	var gotClientID string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClientID = r.Header.Get("client-id")
		w.Write([]byte(`{"status":"success","data":{}}`))
	}))

	_, err := client.MarketLTP(context.Background(), &models.MarketFeedRequest{
		Instruments: map[models.ExchangeSegment][]int{models.SegmentNSEEquity: {1333}},
	})
	if err != nil {
		t.Fatalf("MarketLTP: %v", err)
	}
	if gotClientID != "1000000001" {
		t.Errorf("client-id header = %q, want 1000000001", gotClientID)
	}
}

func TestMarketLTPDecodesQuotes(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"NSE_EQ":{"1333":{"last_price":1450.5}}}}`))
	}))

	resp, err := client.MarketLTP(context.Background(), &models.MarketFeedRequest{
		Instruments: map[models.ExchangeSegment][]int{models.SegmentNSEEquity: {1333}},
	})
	if err != nil {
		t.Fatalf("MarketLTP: %v", err)
	}
	quote, ok := resp.Data["NSE_EQ"]["1333"]
	if !ok {
		t.Fatalf("quote for NSE_EQ/1333 missing: %+v", resp.Data)
	}
	if quote.LastPrice != 1450.5 {
		t.Errorf("last_price = %v, want 1450.5", quote.LastPrice)
	}
}

func TestErrorEnvelopeDecoded(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errorType":"Invalid_Authentication","errorCode":"DH-901","errorMessage":"Client ID or access token is invalid"}`))
	}))

	_, err := client.GetProfile(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %T (%v)", err, err)
	}
	if apiErr.Kind != KindHTTP || apiErr.StatusCode != 401 {
		t.Errorf("kind/status = %s/%d, want http/401", apiErr.Kind, apiErr.StatusCode)
	}
	if apiErr.ErrorCode != "DH-901" {
		t.Errorf("error code = %q, want DH-901", apiErr.ErrorCode)
	}
}

func TestNonJSONErrorBodyStillFails(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))

	_, err := client.GetProfile(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindHTTP || apiErr.StatusCode != 502 {
		t.Fatalf("want http/502 error, got %v", err)
	}
}

func TestMalformedSuccessBodyIsDecodeError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dhanClientId":`))
	}))

	_, err := client.GetProfile(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindDecode {
		t.Fatalf("want decode error, got %v", err)
	}
}

func TestNoRetryOnFailure(t *testing.T) {
	var calls int
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	if _, err := client.GetProfile(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want exactly 1", calls)
	}
}

func TestPlaceOrderInjectsClientID(t *testing.T) {
	var gotBody map[string]any
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decodeBody(t, r, &gotBody)
		w.Write([]byte(`{"orderId":"112111182198","orderStatus":"TRANSIT"}`))
	}))

	order := &models.OrderRequest{
		TransactionType: models.TransactionBuy,
		ExchangeSegment: models.SegmentNSEEquity,
		ProductType:     models.ProductCNC,
		OrderType:       models.OrderMarket,
		Validity:        models.ValidityDay,
		SecurityID:      "1333",
		Quantity:        10,
	}
	resp, err := client.PlaceOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if resp.OrderID != "112111182198" {
		t.Errorf("orderId = %q", resp.OrderID)
	}
	if gotBody["dhanClientId"] != "1000000001" {
		t.Errorf("dhanClientId on wire = %v, want 1000000001", gotBody["dhanClientId"])
	}
}

func TestPlaceOrderRejectsInvalidBeforeDialing(t *testing.T) {
	var calls int
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	order := &models.OrderRequest{
		TransactionType: models.TransactionBuy,
		ExchangeSegment: models.SegmentNSEEquity,
		ProductType:     models.ProductCNC,
		OrderType:       "BANANA",
		Validity:        models.ValidityDay,
		SecurityID:      "1333",
		Quantity:        10,
	}
	_, err := client.PlaceOrder(context.Background(), order)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want validation error, got %v", err)
	}
	if vErr.Field != "orderType" {
		t.Errorf("field = %q, want orderType", vErr.Field)
	}
	if calls != 0 {
		t.Errorf("upstream called %d times, want 0", calls)
	}
}

func TestGetLedgerSendsDateRangeQuery(t *testing.T) {
	var gotQuery string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	_, err := client.GetLedger(context.Background(), &models.DateRangeRequest{
		FromDate: "2025-01-01", ToDate: "2025-01-31",
	})
	if err != nil {
		t.Fatalf("GetLedger: %v", err)
	}
	if gotQuery != "from-date=2025-01-01&to-date=2025-01-31" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestCancelOrderUsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"orderId":"112111182198","orderStatus":"CANCELLED"}`))
	}))

	resp, err := client.CancelOrder(context.Background(), "112111182198")
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/orders/112111182198" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if resp.OrderStatus != models.StatusCancelled {
		t.Errorf("status = %q", resp.OrderStatus)
	}
}

func TestHistoricalChartsParallelArrays(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"open":[100,101],"high":[102,103],"low":[99,100],"close":[101,102],"volume":[5000,6000],"timestamp":[1735689600,1735776000]}`))
	}))

	resp, err := client.HistoricalCharts(context.Background(), &models.HistoricalDataRequest{
		SecurityID:      "1333",
		ExchangeSegment: models.SegmentNSEEquity,
		Instrument:      models.KindEquity,
		FromDate:        "2025-01-01",
		ToDate:          "2025-01-02",
	})
	if err != nil {
		t.Fatalf("HistoricalCharts: %v", err)
	}
	if resp.Len() != 2 {
		t.Errorf("candles = %d, want 2", resp.Len())
	}
	if resp.Close[1] != 102 {
		t.Errorf("close[1] = %v", resp.Close[1])
	}
}
