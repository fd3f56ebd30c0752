package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	PayWay PayWay
}

// PayWay carries the ABA PayWay deep-link parameters. Merchant identifiers
// are configuration so a different account can be deployed without touching
// code; defaults match the reference store.
type PayWay struct {
	BaseURL       string
	MerchantID    string
	AccountNumber string
	MerchantName  string
	ShortLink     string
	Code          string
	ReferrerUID   string
	SiteID        string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:        getenv("OGANI_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		PayWay: PayWay{
			BaseURL:       getenv("PAYWAY_BASE_URL", "https://link.payway.com.kh/aba"),
			MerchantID:    getenv("PAYWAY_MERCHANT_ID", "52993998C8B8"),
			AccountNumber: getenv("PAYWAY_ACCOUNT_NUMBER", "002299917"),
			MerchantName:  getenv("PAYWAY_MERCHANT_NAME", "BUN DARAVATTEY"),
			ShortLink:     getenv("PAYWAY_SHORTLINK", "6ic5my80"),
			Code:          getenv("PAYWAY_CODE", "549767"),
			ReferrerUID:   getenv("PAYWAY_REFERRER_UID", "1700729895453-8638212"),
			SiteID:        getenv("PAYWAY_SITE_ID", "968860649"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
