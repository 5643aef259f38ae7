package payment

import "strings"

// Compose builds the ordered settlement line items for a primary package and
// its decoys. The primary is always index 0; decoys follow in the order
// given, each carrying its own confirmation token.
func Compose(primary PackageOption, decoys ...PackageOption) []LineItem {
	items := make([]LineItem, 0, 1+len(decoys))
	items = append(items, lineItem(primary))
	for _, d := range decoys {
		items = append(items, lineItem(d))
	}
	return items
}

func lineItem(opt PackageOption) LineItem {
	return LineItem{
		ItemCode:          opt.OptionCode,
		ItemName:          strings.TrimSpace(opt.VariantName + " " + opt.Name),
		ItemPrice:         opt.Price,
		ConfirmationToken: opt.ConfirmationToken,
	}
}

// TotalAmount is the declared payment amount for a composed item list: the
// plain sum of item prices. This is the quantity the settlement engine
// corrects when the upstream rejects the declared total.
func TotalAmount(items []LineItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.ItemPrice
	}
	return sum
}
