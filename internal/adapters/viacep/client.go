package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

const defaultBaseURL = "https://viacep.com.br"

// Client resolves Brazilian postal codes (CEPs) against the ViaCEP service.
// A single failed lookup propagates immediately: no caching, no retries.
type Client struct {
	baseURL string
	session *http.Client
}

func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: &http.Client{Timeout: 10 * time.Second},
	}
}

type lookupResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       any    `json:"erro"`
}

// ViaCEP has flagged unknown codes both as a bool and as the string "true"
// across API revisions.
func (r lookupResponse) unknownCode() bool {
	switch v := r.Erro.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// Resolve normalizes the postal code (whitespace and hyphen stripped) and
// looks it up. Unknown codes yield domain.ErrInvalidPostalCode; transport
// failures and non-200 statuses yield domain.ErrUpstreamUnavailable.
func (c *Client) Resolve(ctx context.Context, postalCode string) (domain.Address, error) {
	cep := strings.ReplaceAll(strings.TrimSpace(postalCode), "-", "")
	endpoint := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, url.PathEscape(cep))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Address{}, fmt.Errorf("viacep: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return domain.Address{}, fmt.Errorf("viacep: %v: %w", err, domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Address{}, fmt.Errorf("viacep: HTTP %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Address{}, fmt.Errorf("viacep: decode response: %w", domain.ErrUpstreamUnavailable)
	}

	if decoded.unknownCode() {
		return domain.Address{}, fmt.Errorf("viacep: cep %q: %w", cep, domain.ErrInvalidPostalCode)
	}

	return domain.Address{
		Street:       decoded.Logradouro,
		Neighborhood: decoded.Bairro,
		City:         decoded.Localidade,
		State:        decoded.UF,
	}, nil
}
