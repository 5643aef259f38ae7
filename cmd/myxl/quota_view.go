package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"myxl/cmd/myxl/ui"
	"myxl/internal/quota"
)

// showQuotas lists the active packages with their benefit bars, then loops
// on input: a number drills into that package's detail, `del N` cancels the
// N-th subscription, `00` returns.
func (a *app) showQuotas(ctx context.Context) error {
	sess, err := a.activeSession()
	if err != nil {
		return err
	}

	for {
		docs, err := a.client.QuotaDetails(ctx, sess)
		if err != nil {
			return err
		}
		records := quota.ParseQuotaRecords(docs)
		if len(records) == 0 {
			a.println(a.styles.Muted.Render("No active packages."))
			return nil
		}

		for i, rec := range records {
			a.println(a.renderQuotaRecord(rec, i+1))
		}

		input := a.readLine("Package number, `del N`, or 00 to go back:")
		switch {
		case input == "00" || input == "":
			return nil
		case strings.HasPrefix(strings.ToLower(input), "del"):
			n, ok := parseDelCommand(input)
			if !ok || n < 1 || n > len(records) {
				a.println(a.styles.Warning.Render("No such package."))
				continue
			}
			if err := a.unsubscribe(ctx, records[n-1]); err != nil {
				a.println(a.styles.Error.Render("Error: " + err.Error()))
			}
		default:
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(records) {
				a.println(a.styles.Warning.Render("No such package."))
				continue
			}
			if err := a.showPackageDetail(ctx, records[n-1].QuotaCode); err != nil {
				a.println(a.styles.Error.Render("Error: " + err.Error()))
			}
		}
	}
}

// renderQuotaRecord formats one package: header, resolved activation and
// reset rows, and a benefit table with quota bars.
func (a *app) renderQuotaRecord(rec quota.QuotaRecord, index int) string {
	var sb strings.Builder
	sb.WriteString(a.styles.Header.Render(fmt.Sprintf("%d. %s", index, rec.Name)))
	sb.WriteString("\n")

	panel := ui.NewKeyValuePanel("")
	if rec.GroupCode != "" {
		panel.Add("Group", rec.GroupCode)
	}
	if v := quota.Resolve(rec.Raw, quota.ActivationCandidates...); v != nil {
		panel.Add("Active Since", quota.FormatTimestamp(v))
	}
	if v := quota.Resolve(rec.Raw, quota.ResetCandidates...); v != nil {
		panel.Add("Quota Reset", quota.FormatTimestamp(v))
		if days, ok := quota.DaysUntil(v); ok {
			panel.Add("Resets In", fmt.Sprintf("%d days", days))
		}
	}
	sb.WriteString(panel.View(a.styles))

	geo := a.cfg.UI.PackageBar
	width := ui.BarWidth(ui.TerminalWidth(), geo.Min, geo.Max, geo.Reserved)
	for _, b := range rec.Benefits {
		bar := ui.RenderBar(a.styles, b.Remaining, b.Total, width)
		if b.IsUnlimited {
			bar = ui.RenderFullBar(a.styles, width)
		}
		sb.WriteString(fmt.Sprintf("  %-24s %s %s\n",
			b.Name, bar, quota.FormatQuantity(b)))
	}
	return sb.String()
}

// unsubscribe confirms and cancels one subscription.
func (a *app) unsubscribe(ctx context.Context, rec quota.QuotaRecord) error {
	if !a.confirm(fmt.Sprintf("Unsubscribe from %q?", rec.Name)) {
		return nil
	}
	sess, err := a.activeSession()
	if err != nil {
		return err
	}
	ok, err := a.client.Unsubscribe(ctx, sess, rec.QuotaCode, rec.SubscriptionType, rec.Domain)
	if err != nil {
		return err
	}
	if !ok {
		a.println(a.styles.Warning.Render("Unsubscribe was rejected upstream."))
		return nil
	}
	a.println(a.styles.Success.Render("Unsubscribed."))
	return nil
}
