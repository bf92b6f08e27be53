package viacep

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

func TestResolveSuccess(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"logradouro": "Praça da Sé",
			"bairro": "Sé",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	// Whitespace and the hyphen separator must be stripped before submission.
	addr, err := client.Resolve(context.Background(), " 01001-000 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/ws/01001000/json/" {
		t.Errorf("request path = %q, want %q", gotPath, "/ws/01001000/json/")
	}
	if addr.Street != "Praça da Sé" || addr.Neighborhood != "Sé" ||
		addr.City != "São Paulo" || addr.State != "SP" {
		t.Errorf("unexpected address: %+v", addr)
	}
}

func TestResolveUnknownCode(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bool flag", `{"erro": true}`},
		{"string flag", `{"erro": "true"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(c.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)

			_, err := client.Resolve(context.Background(), "99999999")
			if !errors.Is(err, domain.ErrInvalidPostalCode) {
				t.Fatalf("error = %v, want ErrInvalidPostalCode", err)
			}
		})
	}
}

func TestResolveUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Resolve(context.Background(), "01001000")
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}
}
