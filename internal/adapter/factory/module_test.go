package factory

import (
	"testing"

	"github.com/suopuwu/jwt-pizza-service/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{FactoryURL: "http://example.com", FactoryAPIKey: "key"}
	client, err := newClient(clientParams{Config: cfg, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(*HTTPClient); !ok {
		t.Fatalf("expected http client, got %T", client)
	}
}

func TestNewClientDisabledWithoutURL(t *testing.T) {
	client, err := newClient(clientParams{Config: &config.Config{}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(Disabled); !ok {
		t.Fatalf("expected disabled client, got %T", client)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	if _, err := newClient(clientParams{Config: &config.Config{FactoryURL: "relative"}, Logger: testLogger()}); err == nil {
		t.Fatal("expected error")
	}
}
