package scan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseQuantityString(t *testing.T) {
	tests := []struct {
		raw      string
		wantW    float64
		wantUnit string
	}{
		{"500 g", 500, "g"},
		{"500g", 500, "g"},
		{"1.5 L", 1.5, "L"},
		{"12 oz", 12, "oz"},
		{"", 0, "count"},
		{"six pack", 0, "count"},
		{"about a pound", 0, "count"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			gotW, gotUnit := ParseQuantityString(tt.raw)
			if gotW != tt.wantW || gotUnit != tt.wantUnit {
				t.Errorf("ParseQuantityString(%q) = %v, %q; want %v, %q", tt.raw, gotW, gotUnit, tt.wantW, tt.wantUnit)
			}
		})
	}
}

func newTestBarcodeClient(baseURL string) *openFoodFactsClient {
	return &openFoodFactsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestBarcodeLookup_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/product/0123456789.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":1,"product":{"product_name":"Heinz Ketchup","brands":"Heinz","quantity":"500 g"}}`))
	}))
	defer server.Close()

	client := newTestBarcodeClient(server.URL)
	product, err := client.Lookup(context.Background(), "0123456789")
	if err != nil {
		t.Fatalf("Lookup() unexpected error: %v", err)
	}
	if product == nil {
		t.Fatal("Lookup() returned nil product")
	}
	if product.ItemName != "Heinz Ketchup" || product.Notes != "Heinz" {
		t.Errorf("Lookup() product = %+v", product)
	}
	if product.Weight != 500 || product.WeightUnit != "g" {
		t.Errorf("Lookup() weight = %v %q, want 500 g", product.Weight, product.WeightUnit)
	}
}

func TestBarcodeLookup_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":0}`))
	}))
	defer server.Close()

	client := newTestBarcodeClient(server.URL)
	product, err := client.Lookup(context.Background(), "0000000000")
	if err != nil {
		t.Fatalf("Lookup() unexpected error: %v", err)
	}
	if product != nil {
		t.Errorf("Lookup() = %+v, want nil for not found", product)
	}
}

func TestBarcodeLookup_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestBarcodeClient(server.URL)
	if _, err := client.Lookup(context.Background(), "0123456789"); err == nil {
		t.Error("Lookup() expected error on server failure")
	}
}

func TestBarcodeLookup_UnparseableQuantityDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":1,"product":{"product_name":"Eggs","brands":"","quantity":"one dozen"}}`))
	}))
	defer server.Close()

	client := newTestBarcodeClient(server.URL)
	product, err := client.Lookup(context.Background(), "0123456789")
	if err != nil {
		t.Fatalf("Lookup() unexpected error: %v", err)
	}
	if product.Weight != 0 || product.WeightUnit != "count" {
		t.Errorf("Lookup() weight = %v %q, want 0 count", product.Weight, product.WeightUnit)
	}
}
