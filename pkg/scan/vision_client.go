package scan

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

type (
	// VisionClient extracts item records from a set of pantry photos. Its
	// output is untrusted: any field may be missing, empty or zero.
	VisionClient interface {
		ExtractItems(ctx context.Context, images []ScanImage) ([]domain.ScanRecord, error)
	}

	ScanImage struct {
		Data     []byte
		MimeType string
	}

	geminiVisionClient struct {
		httpClient *http.Client
	}
)

func NewVisionClient() VisionClient {
	return &geminiVisionClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

const extractionPrompt = `Analyze these images of food and household products. Respond ONLY with a valid JSON list of the items found. For each item include exactly these fields: 'item_name' (string, be specific, e.g. 'Heinz Ketchup'), 'quantity' (number, default to 1), 'weight' (number, the net weight if visible), 'weight_unit' (g, kg, oz, lbs, ml, L), 'category' (one of Produce, Dairy, Meat, Pantry, Frozen, Snacks, Beverages, Household), 'estimated_expiry' (YYYY-MM-DD if visible, else null), 'barcode' (string, if visible), 'suggested_store' (Costco, Whole Foods, General). Do not include any explanations, markdown formatting, or extra text.`

func (g *geminiVisionClient) ExtractItems(ctx context.Context, images []ScanImage) ([]domain.ScanRecord, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	parts := []map[string]interface{}{
		{"text": extractionPrompt},
	}
	for _, image := range images {
		mimeType := image.MimeType
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		parts = append(parts, map[string]interface{}{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(image.Data),
			},
		})
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrVisionProcessingFailed
	}

	return ParseVisionPayload(geminiResp.Candidates[0].Content.Parts[0].Text)
}

var jsonListPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ParseVisionPayload turns the model's raw text into item records. The
// payload may arrive wrapped in markdown code fences or surrounded by
// commentary; only the JSON list inside is kept.
func ParseVisionPayload(text string) ([]domain.ScanRecord, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	text = strings.TrimSpace(text)

	if match := jsonListPattern.FindString(text); match != "" {
		text = match
	}

	var records []domain.ScanRecord
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, fmt.Errorf("failed to parse vision response: %v - Raw response: %s", err, text)
	}

	return records, nil
}
