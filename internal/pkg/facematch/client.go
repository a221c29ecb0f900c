package facematch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// CompareClient calls an external face-comparison HTTP service. The service
// receives a reference image, a probe image and a similarity threshold, and
// answers with a match verdict and similarity score.
type CompareClient struct {
	baseURL    string
	apiKey     string
	store      ReferenceStore
	httpClient *http.Client
	timeout    time.Duration
}

func NewCompareClient(baseURL, apiKey string, store ReferenceStore, timeout time.Duration) *CompareClient {
	return &CompareClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		store:   store,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

type compareResponse struct {
	Matched    bool    `json:"matched"`
	Similarity float64 `json:"similarity"`
}

// Compare implements Comparer. The per-call timeout is enforced through the
// request context so a hung upstream cannot stall a whole validation.
func (c *CompareClient) Compare(ctx context.Context, refKey string, probe []byte, threshold float64) (bool, float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reference, err := c.store.FetchObject(ctx, refKey)
	if err != nil {
		return false, 0, fmt.Errorf("fetch reference %s: %w", refKey, err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for field, img := range map[string][]byte{"reference": reference, "probe": probe} {
		part, err := writer.CreateFormFile(field, field+".jpg")
		if err != nil {
			return false, 0, fmt.Errorf("build compare request: %w", err)
		}
		if _, err := part.Write(img); err != nil {
			return false, 0, fmt.Errorf("build compare request: %w", err)
		}
	}
	if err := writer.WriteField("threshold", strconv.FormatFloat(threshold, 'f', -1, 64)); err != nil {
		return false, 0, fmt.Errorf("build compare request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return false, 0, fmt.Errorf("build compare request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/compare", &body)
	if err != nil {
		return false, 0, fmt.Errorf("build compare request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return false, 0, ErrUpstreamTimeout
		}
		return false, 0, fmt.Errorf("compare request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, 0, fmt.Errorf("compare service returned status %d: %s", resp.StatusCode, string(payload))
	}

	var result compareResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, 0, fmt.Errorf("decode compare response: %w", err)
	}

	return result.Matched, result.Similarity, nil
}
