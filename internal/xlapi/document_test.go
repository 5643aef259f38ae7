package xlapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"myxl/internal/quota"
)

func detailDoc() quota.Document {
	return quota.Document{
		"token_confirmation": "tok-xyz",
		"package_option": map[string]any{
			"package_option_code": "OPT9",
			"name":                "Unlimited Turbo",
			"price":               float64(99000),
			"validity":            "30 days",
			"tnc":                 "<p>Berlaku untuk <b>semua</b> jaringan</p>",
		},
		"package_detail_variant": map[string]any{"name": "Premium"},
		"package_family":         map[string]any{"name": "XTRA", "payment_for": "BUY_PACKAGE"},
		"package_addon":          map[string]any{"parent_code": "PARENT1"},
	}
}

func TestOptionFromDocument(t *testing.T) {
	opt := OptionFromDocument(detailDoc())
	assert.Equal(t, "OPT9", opt.OptionCode)
	assert.Equal(t, "Unlimited Turbo", opt.Name)
	assert.Equal(t, int64(99000), opt.Price)
	assert.Equal(t, "30 days", opt.Validity)
	assert.Equal(t, "Premium", opt.VariantName)
	assert.Equal(t, "PARENT1", opt.ParentCode)
	assert.Equal(t, "BUY_PACKAGE", opt.PaymentFor)
	assert.Equal(t, "tok-xyz", opt.ConfirmationToken)
}

func TestOptionFromDocumentDefaults(t *testing.T) {
	opt := OptionFromDocument(quota.Document{})
	assert.Equal(t, "", opt.OptionCode)
	assert.Equal(t, int64(0), opt.Price)
	assert.Equal(t, "BUY_PACKAGE", opt.PaymentFor, "payment_for falls back to the common case")
}

func TestTitleFromDocument(t *testing.T) {
	assert.Equal(t, "XTRA - Premium - Unlimited Turbo", TitleFromDocument(detailDoc()))

	partial := quota.Document{
		"package_option": map[string]any{"name": "Solo"},
	}
	assert.Equal(t, "Solo", TitleFromDocument(partial))
}

func TestTermsFromDocument(t *testing.T) {
	assert.Equal(t, "<p>Berlaku untuk <b>semua</b> jaringan</p>", TermsFromDocument(detailDoc()))
}
