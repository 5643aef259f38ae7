package xlapi

import (
	"context"
	"encoding/json"
	"fmt"

	"myxl/internal/payment"
	"myxl/internal/quota"
	"myxl/internal/session"
)

// Endpoint paths. The upstream routes settlement per payment method.
const (
	pathQuotaDetails  = "api/v8/packages/quota-details"
	pathPackageDetail = "api/v8/xl-stores/options/detail"
	pathFamilyList    = "api/v8/xl-stores/options/list"
	pathBalance       = "api/v8/accounts/balance"
	pathUnsubscribe   = "api/v8/packages/unsubscribe"

	pathSettleBalance = "payments/api/v8/settlement-balance"
	pathSettleWallet  = "payments/api/v8/settlement-multipayment"
	pathSettleQRIS    = "payments/api/v8/settlement-qris"
)

// Payment methods accepted by Settle.
const (
	MethodBalance = "BALANCE"
	MethodEWallet = "EWALLET"
	MethodQRIS    = "QRIS"
)

// Balance is the account's credit state.
type Balance struct {
	Remaining int64 `json:"remaining"`
	ExpiredAt int64 `json:"expired_at"`
}

// Family is a package family listing with its options flattened across
// variants in display order.
type Family struct {
	Code        string
	Name        string
	FamilyType  string
	RCBonusType string
	Options     []payment.PackageOption
}

// QuotaDetails fetches the active subscription quotas as raw documents.
func (c *Client) QuotaDetails(ctx context.Context, sess *session.Session) ([]quota.Document, error) {
	env, err := c.post(ctx, sess, pathQuotaDetails, map[string]any{
		"is_enterprise":    false,
		"lang":             "en",
		"family_member_id": "",
	})
	if err != nil {
		return nil, err
	}
	if env.Status != StatusSuccess {
		return nil, fmt.Errorf("quota details: %s", envError(env))
	}
	var data struct {
		Quotas []quota.Document `json:"quotas"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("quota details: decode data: %w", err)
	}
	return data.Quotas, nil
}

// PackageDetail fetches one package option's detail document, confirmation
// token included.
func (c *Client) PackageDetail(ctx context.Context, sess *session.Session, optionCode string) (quota.Document, error) {
	env, err := c.post(ctx, sess, pathPackageDetail, map[string]any{
		"package_option_code": optionCode,
		"is_enterprise":       false,
		"lang":                "en",
	})
	if err != nil {
		return nil, err
	}
	if env.Status != StatusSuccess {
		return nil, fmt.Errorf("package %s: %s", optionCode, envError(env))
	}
	var doc quota.Document
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		return nil, fmt.Errorf("package %s: decode data: %w", optionCode, err)
	}
	return doc, nil
}

// FamilyPackages lists a package family's purchasable options.
func (c *Client) FamilyPackages(ctx context.Context, sess *session.Session, familyCode string) (*Family, error) {
	env, err := c.post(ctx, sess, pathFamilyList, map[string]any{
		"package_family_code": familyCode,
		"is_enterprise":       false,
		"lang":                "en",
		"migration_type":      "",
	})
	if err != nil {
		return nil, err
	}
	if env.Status != StatusSuccess {
		return nil, fmt.Errorf("family %s: %s", familyCode, envError(env))
	}

	var data struct {
		PackageFamily struct {
			Name              string `json:"name"`
			PackageFamilyType string `json:"package_family_type"`
			RCBonusType       string `json:"rc_bonus_type"`
		} `json:"package_family"`
		PackageVariants []struct {
			Name           string `json:"name"`
			PackageOptions []struct {
				PackageOptionCode string  `json:"package_option_code"`
				Name              string  `json:"name"`
				Price             float64 `json:"price"`
				Order             int     `json:"order"`
			} `json:"package_options"`
		} `json:"package_variants"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("family %s: decode data: %w", familyCode, err)
	}

	fam := &Family{
		Code:        familyCode,
		Name:        data.PackageFamily.Name,
		FamilyType:  data.PackageFamily.PackageFamilyType,
		RCBonusType: data.PackageFamily.RCBonusType,
	}
	for _, variant := range data.PackageVariants {
		for _, opt := range variant.PackageOptions {
			fam.Options = append(fam.Options, payment.PackageOption{
				OptionCode:  opt.PackageOptionCode,
				Name:        opt.Name,
				VariantName: variant.Name,
				Price:       int64(opt.Price),
				Order:       opt.Order,
			})
		}
	}
	return fam, nil
}

// Balance fetches the account's credit and its expiry.
func (c *Client) Balance(ctx context.Context, sess *session.Session) (*Balance, error) {
	env, err := c.post(ctx, sess, pathBalance, map[string]any{
		"is_enterprise": false,
		"lang":          "en",
	})
	if err != nil {
		return nil, err
	}
	if env.Status != StatusSuccess {
		return nil, fmt.Errorf("balance: %s", envError(env))
	}
	var bal Balance
	if err := json.Unmarshal(env.Data, &bal); err != nil {
		return nil, fmt.Errorf("balance: decode data: %w", err)
	}
	return &bal, nil
}

// Settle submits a composed payment. A rejected settlement is a Result, not
// an error; only transport and decode failures error. The second return is
// the upstream payment reference (QRIS string or e-wallet deeplink) when the
// method produces one.
func (c *Client) Settle(ctx context.Context, sess *session.Session, req payment.Request, method string) (*payment.Result, string, error) {
	path := pathSettleBalance
	switch method {
	case MethodEWallet:
		path = pathSettleWallet
	case MethodQRIS:
		path = pathSettleQRIS
	}

	env, err := c.post(ctx, sess, path, map[string]any{
		"items":              req.Items,
		"payment_for":        req.PaymentFor,
		"payment_method":     method,
		"total_amount":       req.Amount,
		"token_confirmation": confirmationToken(req),
	})
	if err != nil {
		return nil, "", err
	}
	if env.Status == "" {
		return nil, "", fmt.Errorf("settlement: empty envelope status")
	}

	ref := ""
	if len(env.Data) > 0 {
		var data struct {
			PaymentRef string `json:"payment_ref"`
			Deeplink   string `json:"deeplink"`
		}
		if err := json.Unmarshal(env.Data, &data); err == nil {
			ref = data.PaymentRef
			if ref == "" {
				ref = data.Deeplink
			}
		}
	}
	return &payment.Result{Status: env.Status, Message: env.Message}, ref, nil
}

// Unsubscribe cancels a subscription quota group.
func (c *Client) Unsubscribe(ctx context.Context, sess *session.Session, quotaCode, subscriptionType, domain string) (bool, error) {
	env, err := c.post(ctx, sess, pathUnsubscribe, map[string]any{
		"quota_code":                quotaCode,
		"product_subscription_type": subscriptionType,
		"product_domain":            domain,
	})
	if err != nil {
		return false, err
	}
	return env.Status == StatusSuccess, nil
}

// confirmationToken picks which line item's token acknowledges the charge.
// An out-of-range or sentinel index falls back to the primary item.
func confirmationToken(req payment.Request) string {
	if len(req.Items) == 0 {
		return ""
	}
	idx := req.TokenIndex
	if idx < 0 || idx >= len(req.Items) {
		idx = 0
	}
	return req.Items[idx].ConfirmationToken
}

func envError(env *envelope) string {
	if env.Message != "" {
		return env.Message
	}
	if env.Status != "" {
		return env.Status
	}
	return "unknown upstream error"
}
