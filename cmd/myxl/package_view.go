package main

import (
	"context"
	"fmt"

	"myxl/cmd/myxl/ui"
	"myxl/internal/bookmark"
	"myxl/internal/htmltext"
	"myxl/internal/payment"
	"myxl/internal/quota"
	"myxl/internal/xlapi"
)

// showPackageDetail renders one package and loops its purchase actions.
func (a *app) showPackageDetail(ctx context.Context, optionCode string) error {
	sess, err := a.activeSession()
	if err != nil {
		return err
	}

	doc, err := a.client.PackageDetail(ctx, sess, optionCode)
	if err != nil {
		return err
	}
	opt := xlapi.OptionFromDocument(doc)
	a.println(a.renderPackageDetail(doc))

	for {
		a.println(a.styles.Title.Render("Actions"))
		a.println("  1. Pay with balance")
		a.println("  2. Pay with balance + decoy")
		a.println("  3. Pay with QRIS")
		a.println("  4. Pay with e-wallet")
		a.println("  5. Buy N times")
		a.println("  6. Bookmark this package")
		a.println("  00. Back")

		switch a.readLine("Choose:") {
		case "1":
			err = a.payWithBalance(ctx, sess, opt)
		case "2":
			err = a.payWithBalanceAndDecoy(ctx, sess, opt)
		case "3":
			err = a.payExternal(ctx, sess, opt, xlapi.MethodQRIS)
		case "4":
			err = a.payExternal(ctx, sess, opt, xlapi.MethodEWallet)
		case "5":
			err = a.buyRepeatedly(ctx, sess, opt)
		case "6":
			err = a.bookmarkPackage(doc, opt)
		case "00", "":
			return nil
		default:
			a.println(a.styles.Warning.Render("Unknown action."))
			continue
		}
		if err != nil {
			a.println(a.styles.Error.Render("Error: " + err.Error()))
			err = nil
		}
	}
}

// renderPackageDetail formats the detail panel, benefit bars and the
// stripped terms text.
func (a *app) renderPackageDetail(doc quota.Document) string {
	opt := xlapi.OptionFromDocument(doc)

	panel := ui.NewKeyValuePanel(xlapi.TitleFromDocument(doc))
	panel.Add("Price", fmt.Sprintf("Rp %d", opt.Price))
	if opt.Validity != "" {
		panel.Add("Validity", opt.Validity)
	}
	if v := quota.Resolve(doc, quota.ActivationCandidates...); v != nil {
		panel.Add("Active Since", quota.FormatTimestamp(v))
	}
	if v := quota.Resolve(doc, quota.ResetCandidates...); v != nil {
		panel.Add("Quota Reset", quota.FormatTimestamp(v))
		if days, ok := quota.DaysUntil(v); ok {
			panel.Add("Resets In", fmt.Sprintf("%d days", days))
		}
	}

	out := panel.View(a.styles)

	benefits := xlapi.BenefitsFromDocument(doc)
	if len(benefits) > 0 {
		table := ui.NewSimpleTable("Benefits", []string{"Name", "Quantity"})
		for _, b := range benefits {
			rec := quota.ParseQuotaRecord(quota.Document{"benefits": []any{map[string]any(b)}})
			for _, entry := range rec.Benefits {
				table.AddRow(entry.Name, quota.FormatQuantity(entry))
			}
		}
		out += "\n" + table.View(a.styles)
	}

	if tnc := htmltext.Extract(xlapi.TermsFromDocument(doc)); tnc != "" {
		out += "\n" + a.styles.Title.Render("Terms & Conditions") + "\n" +
			a.styles.Muted.Render(tnc) + "\n"
	}
	return out
}

// bookmarkPackage saves the package for later.
func (a *app) bookmarkPackage(doc quota.Document, opt payment.PackageOption) error {
	added, err := a.bookmarks.Add(bookmark.Bookmark{
		FamilyCode:  xlapi.FamilyCodeFromDocument(doc),
		FamilyName:  xlapi.FamilyNameFromDocument(doc),
		VariantName: opt.VariantName,
		OptionName:  opt.Name,
		Order:       opt.Order,
	})
	if err != nil {
		return err
	}
	if !added {
		a.println(a.styles.Muted.Render("Already bookmarked."))
		return nil
	}
	a.println(a.styles.Success.Render("Bookmarked."))
	return nil
}
