package wiktionary

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

// hostPattern is the per-language Wiktionary API endpoint. Each language
// edition holds entries for many languages, so e.g. de.wiktionary.org is the
// markup source for German surface forms.
const hostPattern = "https://%s.wiktionary.org/w/api.php"

// Provider fetches raw wikitext for exact page titles from Wiktionary.
type Provider struct {
	baseURL    string // when set, overrides hostPattern (tests)
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider using the per-language Wiktionary hosts.
func NewProvider(cfg config.LexicalConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "wiktionary"),
	}
}

// NewProviderWithURL creates a Provider pinned to one endpoint (for testing).
func NewProviderWithURL(baseURL string, cfg config.LexicalConfig, logger *slog.Logger) *Provider {
	p := NewProvider(cfg, logger)
	p.baseURL = baseURL
	return p
}

// apiResponse is the action=parse envelope. Missing pages come back as a
// 200 with an error object instead of a parse object.
type apiResponse struct {
	Parse *struct {
		Title    string `json:"title"`
		Wikitext struct {
			Text string `json:"*"`
		} `json:"wikitext"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// FetchWikitext fetches the full multi-language markup of the page whose
// title is exactly word (match is case- and diacritic-sensitive).
// Returns "", nil when the page does not exist.
func (p *Provider) FetchWikitext(ctx context.Context, lang, word string) (string, error) {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", word)
	q.Set("prop", "wikitext")
	q.Set("format", "json")
	reqURL := p.endpoint(lang) + "?" + q.Encode()

	p.log.DebugContext(ctx, "wiktionary request", slog.String("lang", lang), slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("wiktionary: create request: %w", err)
	}
	// Wiktionary rejects clients without a descriptive User-Agent.
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "wiktionary request failed", slog.String("word", word), slog.String("error", err.Error()))
		return "", fmt.Errorf("wiktionary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wiktionary: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("wiktionary: read body: %w", err)
	}

	var out apiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("wiktionary: decode json: %w", err)
	}

	if out.Error != nil {
		if out.Error.Code == "missingtitle" {
			return "", nil
		}
		return "", fmt.Errorf("wiktionary: api error %s: %s", out.Error.Code, out.Error.Info)
	}
	if out.Parse == nil {
		return "", nil
	}

	p.log.DebugContext(ctx, "wiktionary response",
		slog.String("word", word),
		slog.Int("bytes", len(out.Parse.Wikitext.Text)),
	)

	return out.Parse.Wikitext.Text, nil
}

func (p *Provider) endpoint(lang string) string {
	if p.baseURL != "" {
		return p.baseURL
	}
	return fmt.Sprintf(hostPattern, lang)
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
	p.log.WarnContext(ctx, "wiktionary retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = p.httpClient.Do(req)
	return resp, err
}
