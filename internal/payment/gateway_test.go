package payment

import (
	"bytes"
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bundaravattey/ogani-shop-backend/internal/config"
)

func testPayWayConfig() config.PayWay {
	return config.PayWay{
		BaseURL:       "https://link.payway.com.kh/aba",
		MerchantID:    "52993998C8B8",
		AccountNumber: "002299917",
		MerchantName:  "BUN DARAVATTEY",
		ShortLink:     "6ic5my80",
		Code:          "549767",
		ReferrerUID:   "1700729895453-8638212",
		SiteID:        "968860649",
	}
}

func TestPaymentLink_CarriesAmountAndMerchant(t *testing.T) {
	g := NewPayWayGateway(testPayWayConfig())

	link, err := g.PaymentLink(decimal.RequireFromString("69.5"))
	if err != nil {
		t.Fatalf("PaymentLink failed: %v", err)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link is not a valid URL: %v", err)
	}
	if !strings.HasPrefix(link, "https://link.payway.com.kh/aba?") {
		t.Fatalf("unexpected link base: %s", link)
	}

	q := u.Query()
	// amount is always formatted with two decimals
	if got := q.Get("amount"); got != "69.50" {
		t.Fatalf("expected amount 69.50, got %q", got)
	}
	want := map[string]string{
		"id":               "52993998C8B8",
		"acc":              "002299917",
		"userid":           "52993998C8B8",
		"shortlink":        "6ic5my80",
		"code":             "549767",
		"af_referrer_uid":  "1700729895453-8638212",
		"af_siteid":        "968860649",
		"dynamic":          "true",
		"link_action":      "abaqr",
		"c":                "abaqr",
		"source_caller":    "sdk",
		"pid":              "af_app_invites",
		"created_from_app": "true",
	}
	for key, val := range want {
		if got := q.Get(key); got != val {
			t.Fatalf("expected %s=%q, got %q", key, val, got)
		}
	}
}

func TestPaymentLink_WholeAmounts(t *testing.T) {
	g := NewPayWayGateway(testPayWayConfig())

	link, err := g.PaymentLink(decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("PaymentLink failed: %v", err)
	}
	u, _ := url.Parse(link)
	if got := u.Query().Get("amount"); got != "200.00" {
		t.Fatalf("expected amount 200.00, got %q", got)
	}
}

func TestQRBase64_EncodesPNG(t *testing.T) {
	g := NewPayWayGateway(testPayWayConfig())
	link, err := g.PaymentLink(decimal.RequireFromString("12.00"))
	if err != nil {
		t.Fatalf("PaymentLink failed: %v", err)
	}

	encoded, err := QRBase64(link)
	if err != nil {
		t.Fatalf("QRBase64 failed: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("output is not valid base64: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("decoded payload is not a PNG")
	}
}

func TestMerchantIdentity(t *testing.T) {
	g := NewPayWayGateway(testPayWayConfig())
	if g.MerchantName() != "BUN DARAVATTEY" {
		t.Fatalf("unexpected merchant name %q", g.MerchantName())
	}
	if g.AccountNumber() != "002299917" {
		t.Fatalf("unexpected account number %q", g.AccountNumber())
	}
}
