package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/phraselevel/internal/config"
)

// Provider translates single words to English through the MyMemory REST API.
// MyMemory is keyless at low volume, which fits the one-word-at-a-time
// lookups the analyzer makes.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from config.
func NewProvider(cfg config.TranslateConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "translate"),
	}
}

// NewProviderWithURL creates a Provider pinned to one endpoint (for testing).
func NewProviderWithURL(baseURL string, cfg config.TranslateConfig, logger *slog.Logger) *Provider {
	p := NewProvider(cfg, logger)
	p.baseURL = baseURL
	return p
}

// apiResponse is the MyMemory /get envelope. Only the translated text is
// read; match quality and alternative matches are ignored.
type apiResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate returns the English rendering of word, or "" when the service
// has no usable translation. Callers decide how an empty result degrades.
func (p *Provider) Translate(ctx context.Context, word, sourceLang string) (string, error) {
	q := url.Values{}
	q.Set("q", word)
	q.Set("langpair", sourceLang+"|en")
	reqURL := p.baseURL + "/get?" + q.Encode()

	p.log.DebugContext(ctx, "translate request", slog.String("lang", sourceLang), slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("translate: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "translate request failed", slog.String("word", word), slog.String("error", err.Error()))
		return "", fmt.Errorf("translate: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("translate: read body: %w", err)
	}

	var out apiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("translate: decode json: %w", err)
	}

	p.log.DebugContext(ctx, "translate response",
		slog.String("word", word),
		slog.String("translated", out.ResponseData.TranslatedText),
	)

	return out.ResponseData.TranslatedText, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "translate retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = p.httpClient.Do(req)
	return resp, err
}
