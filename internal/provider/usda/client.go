package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.nal.usda.gov"

// Nutrient ids from the FoodData Central nutrient table.
const (
	nutrientIDEnergy  = 1008
	nutrientIDProtein = 1003
	nutrientIDSodium  = 1093
)

// FoodResult is the flat shape the rest of the app consumes. Nutrients
// absent from a payload stay zero; the caller never sees missing fields.
type FoodResult struct {
	FDCID       string  `json:"fdc_id"`
	Description string  `json:"description"`
	BrandOwner  string  `json:"brand_owner,omitempty"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	SodiumMg    float64 `json:"sodium_mg"`
	ServingSize float64 `json:"serving_size,omitempty"`
	ServingUnit string  `json:"serving_unit,omitempty"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// SearchFoods queries the FoodData Central search endpoint and maps each
// hit into a FoodResult, extracting calories, protein, and sodium by
// nutrient id.
func (c *Client) SearchFoods(ctx context.Context, query string, pageSize int) ([]FoodResult, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing USDA API key")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if pageSize <= 0 {
		pageSize = 25
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	reqBody := map[string]any{
		"query":    query,
		"pageSize": pageSize,
		"dataType": []string{"Foundation", "SR Legacy", "Branded"},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal USDA search payload: %w", err)
	}

	url := fmt.Sprintf("%s/fdc/v1/foods/search?api_key=%s", baseURL, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create USDA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute USDA request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read USDA response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("USDA request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode USDA response: %w", err)
	}

	results := make([]FoodResult, 0, len(parsed.Foods))
	for _, food := range parsed.Foods {
		r := FoodResult{
			FDCID:       fmt.Sprintf("%d", food.FDCID),
			Description: strings.TrimSpace(food.Description),
			BrandOwner:  strings.TrimSpace(food.BrandOwner),
			ServingSize: food.ServingSize,
			ServingUnit: strings.TrimSpace(food.ServingSizeUnit),
		}
		r.Calories, r.ProteinG, r.SodiumMg = extractNutrients(food.FoodNutrients)
		results = append(results, r)
	}
	return results, nil
}

// FoodDetails fetches a single food by FDC id.
func (c *Client) FoodDetails(ctx context.Context, fdcID string) (FoodResult, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return FoodResult{}, fmt.Errorf("missing USDA API key")
	}
	fdcID = strings.TrimSpace(fdcID)
	if fdcID == "" {
		return FoodResult{}, fmt.Errorf("fdc id is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	url := fmt.Sprintf("%s/fdc/v1/food/%s?api_key=%s", baseURL, fdcID, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return FoodResult{}, fmt.Errorf("create USDA request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return FoodResult{}, fmt.Errorf("execute USDA request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FoodResult{}, fmt.Errorf("read USDA response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return FoodResult{}, fmt.Errorf("USDA request failed with status %d", resp.StatusCode)
	}

	var food usdaFood
	if err := json.Unmarshal(body, &food); err != nil {
		return FoodResult{}, fmt.Errorf("decode USDA response: %w", err)
	}

	r := FoodResult{
		FDCID:       fmt.Sprintf("%d", food.FDCID),
		Description: strings.TrimSpace(food.Description),
		ServingSize: food.ServingSize,
		ServingUnit: strings.TrimSpace(food.ServingSizeUnit),
	}
	r.Calories, r.ProteinG, r.SodiumMg = extractNutrients(food.FoodNutrients)
	return r, nil
}

// extractNutrients reads the loose nutrient array. Search payloads carry
// nutrientId directly; detail payloads nest it under nutrient.id, and
// the value field is named value or amount depending on the endpoint.
func extractNutrients(nutrients []usdaNutrient) (calories, proteinG, sodiumMg float64) {
	for _, n := range nutrients {
		id := n.NutrientID
		if id == 0 && n.Nutrient != nil {
			id = n.Nutrient.ID
		}
		value := n.Value
		if value == 0 {
			value = n.Amount
		}
		switch id {
		case nutrientIDEnergy:
			calories = value
		case nutrientIDProtein:
			proteinG = value
		case nutrientIDSodium:
			sodiumMg = value
		}
	}
	return calories, proteinG, sodiumMg
}

type searchResponse struct {
	Foods []usdaFood `json:"foods"`
}

type usdaFood struct {
	FDCID           int64          `json:"fdcId"`
	Description     string         `json:"description"`
	BrandOwner      string         `json:"brandOwner"`
	ServingSize     float64        `json:"servingSize"`
	ServingSizeUnit string         `json:"servingSizeUnit"`
	FoodNutrients   []usdaNutrient `json:"foodNutrients"`
}

type usdaNutrient struct {
	NutrientID int64        `json:"nutrientId"`
	Nutrient   *nutrientRef `json:"nutrient"`
	Value      float64      `json:"value"`
	Amount     float64      `json:"amount"`
}

type nutrientRef struct {
	ID int64 `json:"id"`
}
