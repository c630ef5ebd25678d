// Package cep looks up Brazilian postal codes (CEP) against a
// ViaCEP-compatible service. The interactive record-creation flows use it to
// prefill address fields; the batch import pipeline does not depend on it.
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotFound is returned when the service does not know the postal code.
var ErrNotFound = errors.New("postal code not found")

// Address is the result of a postal-code lookup.
type Address struct {
	PostalCode   string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	StateCode    string `json:"uf"`
}

// Client queries a ViaCEP-compatible endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a lookup client for the given base URL, e.g.
// https://viacep.com.br/ws.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup resolves an 8-digit postal code into its address parts. Unknown
// codes return ErrNotFound.
func (c *Client) Lookup(ctx context.Context, code string) (Address, error) {
	if len(code) != 8 {
		return Address{}, fmt.Errorf("postal code must have 8 digits, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return Address{}, fmt.Errorf("postal code must be numeric, got %q", code)
		}
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Address{}, fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("postal code lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("postal code lookup returned status %d", resp.StatusCode)
	}

	// ViaCEP reports unknown codes with {"erro": true} and status 200.
	var payload struct {
		Address
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Address{}, fmt.Errorf("failed to decode lookup response: %w", err)
	}
	if payload.Erro {
		return Address{}, ErrNotFound
	}

	return payload.Address, nil
}
