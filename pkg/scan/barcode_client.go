package scan

import (
	"KitchenMind-Backend/internal/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"
)

type (
	// BarcodeClient resolves a barcode against an external product
	// database. A nil product with a nil error means "not found"; callers
	// treat lookup errors the same way.
	BarcodeClient interface {
		Lookup(ctx context.Context, code string) (*BarcodeProduct, error)
	}

	openFoodFactsClient struct {
		baseURL    string
		httpClient *http.Client
	}
)

const defaultBarcodeAPIURL = "https://world.openfoodfacts.org"

func NewBarcodeClient() BarcodeClient {
	baseURL := utils.GetConfig("BARCODE_API_URL")
	if baseURL == "" {
		baseURL = defaultBarcodeAPIURL
	}
	return &openFoodFactsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *openFoodFactsClient) Lookup(ctx context.Context, code string) (*BarcodeProduct, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, code)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("barcode API error: %s", resp.Status)
	}

	var payload struct {
		Status  int `json:"status"`
		Product struct {
			ProductName string `json:"product_name"`
			Brands      string `json:"brands"`
			Quantity    string `json:"quantity"`
		} `json:"product"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.Status != 1 {
		return nil, nil
	}

	weight, unit := ParseQuantityString(payload.Product.Quantity)

	return &BarcodeProduct{
		ItemName:   payload.Product.ProductName,
		Notes:      payload.Product.Brands,
		Weight:     weight,
		WeightUnit: unit,
	}, nil
}

var quantityPattern = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*([A-Za-z]+)`)

// ParseQuantityString splits a raw net-content string like "500 g" or
// "1.5L" into a number and a unit token. Anything unparseable collapses to
// zero with the "count" sentinel unit.
func ParseQuantityString(raw string) (float64, string) {
	match := quantityPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0.0, "count"
	}

	weight, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0.0, "count"
	}

	return weight, match[2]
}
