package payment

import (
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/bundaravattey/ogani-shop-backend/internal/config"
)

// Gateway builds an out-of-band payment reference for an amount. The web
// layer depends on this interface, not on a concrete provider, so merchant
// identity stays configurable and a provider with a completion callback can
// slot in later.
type Gateway interface {
	PaymentLink(amount decimal.Decimal) (string, error)
	MerchantName() string
	AccountNumber() string
}

// PayWayGateway generates ABA PayWay deep links. Only the amount is
// dynamic; everything else identifies the merchant account and comes from
// configuration. The provider never calls back, so completing the payment
// is trusted to the customer.
type PayWayGateway struct {
	cfg config.PayWay
}

func NewPayWayGateway(cfg config.PayWay) *PayWayGateway {
	return &PayWayGateway{cfg: cfg}
}

func (g *PayWayGateway) PaymentLink(amount decimal.Decimal) (string, error) {
	base, err := url.Parse(g.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("id", g.cfg.MerchantID)
	params.Set("dynamic", "true")
	params.Set("source_caller", "sdk")
	params.Set("pid", "af_app_invites")
	params.Set("link_action", "abaqr")
	params.Set("shortlink", g.cfg.ShortLink)
	params.Set("created_from_app", "true")
	params.Set("acc", g.cfg.AccountNumber)
	params.Set("af_siteid", g.cfg.SiteID)
	params.Set("userid", g.cfg.MerchantID)
	params.Set("code", g.cfg.Code)
	params.Set("c", "abaqr")
	params.Set("af_referrer_uid", g.cfg.ReferrerUID)
	params.Set("amount", amount.StringFixed(2))

	base.RawQuery = params.Encode()
	return base.String(), nil
}

func (g *PayWayGateway) MerchantName() string {
	return g.cfg.MerchantName
}

func (g *PayWayGateway) AccountNumber() string {
	return g.cfg.AccountNumber
}
