package main

import (
	"context"
	"fmt"

	"myxl/cmd/myxl/ui"
	"myxl/internal/quota"
)

// showDashboard prints the account header, balance and the overall DATA
// usage bar.
func (a *app) showDashboard(ctx context.Context) error {
	sess, err := a.activeSession()
	if err != nil {
		return err
	}

	bal, err := a.client.Balance(ctx, sess)
	if err != nil {
		return err
	}

	panel := ui.NewKeyValuePanel("Account")
	panel.Add("Number", sess.Number)
	if sess.Name != "" {
		panel.Add("Name", sess.Name)
	}
	panel.Add("Type", sess.SubscriptionType)
	panel.Add("Balance", fmt.Sprintf("Rp %d", bal.Remaining))
	panel.Add("Balance Expiry", quota.FormatTimestamp(bal.ExpiredAt))
	a.println(panel.View(a.styles))

	docs, err := a.client.QuotaDetails(ctx, sess)
	if err != nil {
		return err
	}
	remaining, total := quota.AggregateData(docs)
	if total <= 0 {
		a.println(a.styles.Muted.Render("No metered data quota active."))
		return nil
	}

	geo := a.cfg.UI.ProfileBar
	width := ui.BarWidth(ui.TerminalWidth(), geo.Min, geo.Max, geo.Reserved)
	a.printf("%s %s / %s\n",
		a.styles.Key.Render("Data"),
		quota.FormatBytes(remaining),
		quota.FormatBytes(total))
	a.println(ui.RenderProfileBar(a.styles, remaining, total, width))
	return nil
}
