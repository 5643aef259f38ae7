package xlapi

import (
	"strconv"
	"strings"

	"myxl/internal/payment"
	"myxl/internal/quota"
)

// OptionFromDocument extracts the purchasable option from a package detail
// document. The interesting fields live under the package_option sub-object;
// the confirmation token and the payment_for hint sit elsewhere in the same
// document.
func OptionFromDocument(doc quota.Document) payment.PackageOption {
	opt := payment.PackageOption{
		OptionCode:        docString(doc, "package_option", "package_option_code"),
		Name:              docString(doc, "package_option", "name"),
		Price:             docInt(doc, "package_option", "price"),
		Validity:          docString(doc, "package_option", "validity"),
		VariantName:       docString(doc, "package_detail_variant", "name"),
		ParentCode:        docString(doc, "package_addon", "parent_code"),
		PaymentFor:        docString(doc, "package_family", "payment_for"),
		ConfirmationToken: docString(doc, "token_confirmation"),
	}
	if opt.PaymentFor == "" {
		opt.PaymentFor = "BUY_PACKAGE"
	}
	return opt
}

// FamilyNameFromDocument returns the package family display name.
func FamilyNameFromDocument(doc quota.Document) string {
	return docString(doc, "package_family", "name")
}

// FamilyCodeFromDocument returns the package family code.
func FamilyCodeFromDocument(doc quota.Document) string {
	return docString(doc, "package_family", "package_family_code")
}

// TitleFromDocument composes the full display title the way the mobile app
// does: family, variant and option name joined with dashes.
func TitleFromDocument(doc quota.Document) string {
	parts := []string{
		docString(doc, "package_family", "name"),
		docString(doc, "package_detail_variant", "name"),
		docString(doc, "package_option", "name"),
	}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " - ")
}

// TermsFromDocument returns the raw terms-and-conditions HTML.
func TermsFromDocument(doc quota.Document) string {
	return docString(doc, "package_option", "tnc")
}

// BenefitsFromDocument returns the option's benefit documents, if any.
func BenefitsFromDocument(doc quota.Document) []quota.Document {
	raw, _ := quota.Resolve(doc, "package_option.benefits").([]any)
	out := make([]quota.Document, 0, len(raw))
	for _, b := range raw {
		if m, ok := b.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// docString walks the key path and stringifies whatever sits at the end.
func docString(doc quota.Document, path ...string) string {
	var cur any = map[string]any(doc)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[key]
	}
	switch t := cur.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// docInt walks the key path and coerces the value to an integer, zero when
// absent or malformed.
func docInt(doc quota.Document, path ...string) int64 {
	var cur any = map[string]any(doc)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return 0
		}
		cur = m[key]
	}
	switch t := cur.(type) {
	case float64:
		return int64(t)
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
