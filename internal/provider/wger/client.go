package wger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const defaultBaseURL = "https://wger.de/api/v2"

const maxSearchResults = 20

// englishLanguageID is wger's language id for English translations.
const englishLanguageID = 2

// categoryMap folds wger's muscle-group categories onto the app's four.
var categoryMap = map[string]string{
	"Abs":       "strength",
	"Arms":      "strength",
	"Back":      "strength",
	"Calves":    "strength",
	"Cardio":    "cardio",
	"Chest":     "strength",
	"Legs":      "strength",
	"Shoulders": "strength",
}

// ExerciseResult is the flat shape returned to the rest of the app.
// ExternalID is the wger base exercise id; results are already
// deduplicated on it.
type ExerciseResult struct {
	ExternalID int64  `json:"external_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	ImageURL   string `json:"image_url,omitempty"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// SearchExercises queries the wger exercise search. The same exercise
// can appear once per translation, so suggestions are deduplicated by
// base id before mapping.
func (c *Client) SearchExercises(ctx context.Context, term string) ([]ExerciseResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("search term is required")
	}

	endpoint := fmt.Sprintf("%s/exercise/search/?term=%s&language=english&format=json",
		c.baseURL(), url.QueryEscape(term))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode wger response: %w", err)
	}

	seen := make(map[int64]bool)
	results := make([]ExerciseResult, 0, maxSearchResults)
	for _, s := range parsed.Suggestions {
		if seen[s.Data.BaseID] {
			continue
		}
		seen[s.Data.BaseID] = true

		category, ok := categoryMap[s.Data.Category]
		if !ok {
			category = "strength"
		}
		imageURL := ""
		if s.Data.Image != "" {
			imageURL = "https://wger.de" + s.Data.Image
		}
		results = append(results, ExerciseResult{
			ExternalID: s.Data.BaseID,
			Name:       strings.TrimSpace(s.Data.Name),
			Category:   category,
			ImageURL:   imageURL,
		})
		if len(results) >= maxSearchResults {
			break
		}
	}
	return results, nil
}

// ExerciseDetail holds the English description and image URLs for one
// base exercise.
type ExerciseDetail struct {
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// ExerciseDetails fetches description and images for a base exercise id,
// picking the English translation and stripping HTML from it.
func (c *Client) ExerciseDetails(ctx context.Context, baseID int64) (ExerciseDetail, error) {
	if baseID <= 0 {
		return ExerciseDetail{}, fmt.Errorf("base exercise id must be > 0")
	}

	endpoint := fmt.Sprintf("%s/exerciseinfo/%d/?format=json", c.baseURL(), baseID)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return ExerciseDetail{}, err
	}

	var parsed infoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ExerciseDetail{}, fmt.Errorf("decode wger response: %w", err)
	}

	detail := ExerciseDetail{Images: make([]string, 0, len(parsed.Images))}
	for _, t := range parsed.Translations {
		if t.Language == englishLanguageID {
			detail.Description = strings.TrimSpace(htmlTagPattern.ReplaceAllString(t.Description, ""))
			break
		}
	}
	for _, img := range parsed.Images {
		if img.Image != "" {
			detail.Images = append(detail.Images, img.Image)
		}
	}
	return detail, nil
}

func (c *Client) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create wger request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute wger request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read wger response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("wger request failed with status %d", resp.StatusCode)
	}
	return body, nil
}

type searchResponse struct {
	Suggestions []suggestion `json:"suggestions"`
}

type suggestion struct {
	Value string         `json:"value"`
	Data  suggestionData `json:"data"`
}

type suggestionData struct {
	ID       int64  `json:"id"`
	BaseID   int64  `json:"base_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

type infoResponse struct {
	Translations []translation `json:"translations"`
	Images       []image       `json:"images"`
}

type translation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    int    `json:"language"`
}

type image struct {
	Image string `json:"image"`
}
