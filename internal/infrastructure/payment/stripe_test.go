package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stripe/stripe-go/v76"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(server.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return newStripeGateway("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestCreatePaymentIntent_SendsAmountCurrencyAndCard(t *testing.T) {
	var form url.Values
	var path, auth string
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":1999,"currency":"usd","client_secret":"pi_123_secret_abc"}`))
	})

	intent, err := gateway.CreatePaymentIntent(context.Background(), 1999, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != "/v1/payment_intents" {
		t.Errorf("unexpected path %q", path)
	}
	if auth != "Bearer sk_test_123" {
		t.Errorf("unexpected authorization %q", auth)
	}
	tests := map[string]string{
		"amount":                  "1999",
		"currency":                "usd",
		"payment_method_types[0]": "card",
	}
	for key, want := range tests {
		if got := form.Get(key); got != want {
			t.Errorf("%s: expected %q, got %q", key, want, got)
		}
	}

	if intent.ID != "pi_123" || intent.ClientSecret != "pi_123_secret_abc" || intent.Amount != 1999 || intent.Currency != "usd" {
		t.Errorf("unexpected intent %+v", intent)
	}
}

func TestCreatePaymentIntent_ProcessorError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Amount must be at least 50 cents"}}`))
	})

	if _, err := gateway.CreatePaymentIntent(context.Background(), 10, "usd"); err == nil {
		t.Fatal("expected processor error")
	}
}

func TestCreatePaymentIntent_NotConfigured(t *testing.T) {
	_, err := NewStripeGateway("").CreatePaymentIntent(context.Background(), 1999, "usd")
	if !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}
