// Package uniprot provides a client for the UniProtKB REST API, used to
// cross-validate normalized names against canonical protein and gene names.
package uniprot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned when an accession does not exist in UniProtKB.
var ErrNotFound = errors.New("uniprot: accession not found")

const (
	defaultBaseURL = "https://rest.uniprot.org"
	// UniProt asks API users to stay below a few requests per second.
	defaultRateLimit = 3
)

// Record is the subset of a UniProtKB entry needed for name validation.
type Record struct {
	ProteinDescription struct {
		RecommendedName struct {
			FullName struct {
				Value string `json:"value"`
			} `json:"fullName"`
		} `json:"recommendedName"`
	} `json:"proteinDescription"`
	Genes []struct {
		GeneName *struct {
			Value string `json:"value"`
		} `json:"geneName"`
		Synonyms []struct {
			Value string `json:"value"`
		} `json:"synonyms"`
	} `json:"genes"`
}

// Names returns the canonical protein name and all gene names including
// synonyms.
func (r *Record) Names() (protein string, genes []string) {
	protein = r.ProteinDescription.RecommendedName.FullName.Value
	for _, g := range r.Genes {
		if g.GeneName != nil && g.GeneName.Value != "" {
			genes = append(genes, g.GeneName.Value)
		}
		for _, syn := range g.Synonyms {
			if syn.Value != "" {
				genes = append(genes, syn.Value)
			}
		}
	}
	return protein, genes
}

// Client fetches UniProtKB entries with rate limiting and an in-memory
// record cache. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger

	mu    sync.Mutex
	cache map[string]*Record
}

// NewClient creates a client. An empty baseURL selects the public UniProt
// endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), 1),
		logger:  zap.NewNop(),
		cache:   make(map[string]*Record),
	}
}

// SetLogger sets the logger for debug messages.
func (c *Client) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Fetch retrieves the UniProtKB entry for an accession (e.g. "P68871").
// Responses are cached for the lifetime of the client.
func (c *Client) Fetch(ctx context.Context, accession string) (*Record, error) {
	c.mu.Lock()
	if rec, ok := c.cache[accession]; ok {
		c.mu.Unlock()
		return rec, nil
	}
	c.mu.Unlock()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/uniprotkb/%s.json", c.baseURL, accession)
	c.logger.Debug("fetching uniprot record", zap.String("accession", accession))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uniprot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("uniprot error %d: %s", resp.StatusCode, string(body))
	}

	var rec Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode uniprot response: %w", err)
	}

	c.mu.Lock()
	c.cache[accession] = &rec
	c.mu.Unlock()

	return &rec, nil
}

// Validate reports whether name matches the canonical protein name or any
// gene name/synonym of the accession, case-insensitively.
func (c *Client) Validate(ctx context.Context, accession, name string) (bool, error) {
	rec, err := c.Fetch(ctx, accession)
	if err != nil {
		return false, err
	}
	protein, genes := rec.Names()
	lower := strings.ToLower(name)
	if lower == strings.ToLower(protein) {
		return true, nil
	}
	for _, g := range genes {
		if lower == strings.ToLower(g) {
			return true, nil
		}
	}
	return false, nil
}
