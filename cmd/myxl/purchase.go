package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"myxl/internal/payment"
	"myxl/internal/session"
	"myxl/internal/xlapi"
)

// payWithBalance settles a single package against the account balance.
func (a *app) payWithBalance(ctx context.Context, sess *session.Session, opt payment.PackageOption) error {
	if !a.confirm(fmt.Sprintf("Buy %q for Rp %d from balance?", opt.Name, opt.Price)) {
		return nil
	}

	engine := payment.NewEngine(a.settleFunc(sess, xlapi.MethodBalance, nil), a.logger)
	res, err := engine.Settle(ctx, payment.Request{
		Items:           payment.Compose(opt),
		PaymentFor:      opt.PaymentFor,
		TokenIndex:      payment.DefaultTokenIndex,
		RetryTokenIndex: payment.DefaultTokenIndex,
	})
	if err != nil {
		return err
	}
	a.printResult(res)
	return nil
}

// payWithBalanceAndDecoy bundles the configured low-cost decoy package into
// the same settlement. The first submission acknowledges with the decoy's
// token; the corrective resubmission falls back to the upstream default.
func (a *app) payWithBalanceAndDecoy(ctx context.Context, sess *session.Session, opt payment.PackageOption) error {
	decoyCode, ok := a.cfg.Decoys["balance"]
	if !ok || decoyCode == "" {
		return fmt.Errorf("no balance decoy configured; set decoys.balance in the config file")
	}

	decoyDoc, err := a.client.PackageDetail(ctx, sess, decoyCode)
	if err != nil {
		return fmt.Errorf("fetch decoy package: %w", err)
	}
	decoy := xlapi.OptionFromDocument(decoyDoc)

	if !a.confirm(fmt.Sprintf("Buy %q (+ decoy %q) for Rp %d from balance?",
		opt.Name, decoy.Name, opt.Price+decoy.Price)) {
		return nil
	}

	engine := payment.NewEngine(a.settleFunc(sess, xlapi.MethodBalance, nil), a.logger)
	res, err := engine.Settle(ctx, payment.Request{
		Items:           payment.Compose(opt, decoy),
		PaymentFor:      opt.PaymentFor,
		TokenIndex:      1,
		RetryTokenIndex: payment.DefaultTokenIndex,
	})
	if err != nil {
		return err
	}
	a.printResult(res)
	return nil
}

// payExternal settles over QRIS or an e-wallet and prints the upstream
// payment reference the user completes the purchase with.
func (a *app) payExternal(ctx context.Context, sess *session.Session, opt payment.PackageOption, method string) error {
	if !a.confirm(fmt.Sprintf("Buy %q for Rp %d via %s?", opt.Name, opt.Price, method)) {
		return nil
	}

	onRef := func(ref string) {
		a.println(a.styles.Key.Render("Payment reference:"), ref)
	}
	engine := payment.NewEngine(a.settleFunc(sess, method, onRef), a.logger)
	res, err := engine.Settle(ctx, payment.Request{
		Items:           payment.Compose(opt),
		PaymentFor:      opt.PaymentFor,
		TokenIndex:      payment.DefaultTokenIndex,
		RetryTokenIndex: payment.DefaultTokenIndex,
	})
	if err != nil {
		return err
	}
	a.printResult(res)
	return nil
}

// buyRepeatedly purchases the same package N times sequentially, sleeping
// between submissions. The upstream confirmation token is single-use, so
// every iteration refetches the detail document before composing.
func (a *app) buyRepeatedly(ctx context.Context, sess *session.Session, opt payment.PackageOption) error {
	count, err := strconv.Atoi(a.readLine("How many times?"))
	if err != nil || count < 1 {
		return fmt.Errorf("invalid count")
	}
	delaySec, err := strconv.Atoi(a.readLine("Delay between purchases (seconds)?"))
	if err != nil || delaySec < 0 {
		return fmt.Errorf("invalid delay")
	}
	stopOnSuccess := a.confirm("Stop as soon as one purchase succeeds?")

	for i := 1; i <= count; i++ {
		a.printf("%s\n", a.styles.Title.Render(fmt.Sprintf("Purchase %d/%d", i, count)))

		doc, err := a.client.PackageDetail(ctx, sess, opt.OptionCode)
		if err != nil {
			return err
		}
		fresh := xlapi.OptionFromDocument(doc)

		engine := payment.NewEngine(a.settleFunc(sess, xlapi.MethodBalance, nil), a.logger)
		res, err := engine.Settle(ctx, payment.Request{
			Items:           payment.Compose(fresh),
			PaymentFor:      fresh.PaymentFor,
			TokenIndex:      payment.DefaultTokenIndex,
			RetryTokenIndex: payment.DefaultTokenIndex,
		})
		if err != nil {
			return err
		}
		a.printResult(res)

		if res.Success() && stopOnSuccess {
			return nil
		}
		if i < count && delaySec > 0 {
			time.Sleep(time.Duration(delaySec) * time.Second)
		}
	}
	return nil
}

func (a *app) printResult(res *payment.Result) {
	if res.Success() {
		a.println(a.styles.Success.Render("Payment accepted."))
		return
	}
	a.println(a.styles.Error.Render("Payment rejected: " + res.Message))
}
