package cep

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/50050100/json/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "50050-100",
			"logradouro": "Rua da Aurora",
			"bairro": "Boa Vista",
			"localidade": "Recife",
			"uf": "PE"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	addr, err := client.Lookup(context.Background(), "50050100")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}

	if addr.Street != "Rua da Aurora" || addr.Neighborhood != "Boa Vista" {
		t.Fatalf("unexpected address: %+v", addr)
	}
	if addr.City != "Recife" || addr.StateCode != "PE" {
		t.Fatalf("unexpected address: %+v", addr)
	}
}

func TestLookupUnknownCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ViaCEP answers unknown codes with 200 and an error marker.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Lookup(context.Background(), "99999999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupRejectsMalformedCodes(t *testing.T) {
	client := NewClient("http://localhost:0")

	if _, err := client.Lookup(context.Background(), "1234"); err == nil {
		t.Fatalf("expected error for short code")
	}
	if _, err := client.Lookup(context.Background(), "50050-10"); err == nil {
		t.Fatalf("expected error for non-numeric code")
	}
}

func TestLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Lookup(context.Background(), "50050100"); err == nil {
		t.Fatalf("expected error for server failure")
	}
}

func TestLookupHandler(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "99999999") {
			_, _ = w.Write([]byte(`{"erro": true}`))
			return
		}
		_, _ = w.Write([]byte(`{"cep": "50050-100", "logradouro": "Rua da Aurora", "bairro": "Boa Vista", "localidade": "Recife", "uf": "PE"}`))
	}))
	defer server.Close()

	handler := NewHTTPHandler(NewClient(server.URL))

	req := httptest.NewRequest(http.MethodGet, "/addresses/lookup?code=50050-100", nil)
	rec := httptest.NewRecorder()
	handler.Lookup(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var addr Address
	if err := json.Unmarshal(rec.Body.Bytes(), &addr); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if addr.City != "Recife" || addr.StateCode != "PE" {
		t.Fatalf("unexpected address: %+v", addr)
	}

	req = httptest.NewRequest(http.MethodGet, "/addresses/lookup?code=99999999", nil)
	rec = httptest.NewRecorder()
	handler.Lookup(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/addresses/lookup?code=12", nil)
	rec = httptest.NewRecorder()
	handler.Lookup(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
