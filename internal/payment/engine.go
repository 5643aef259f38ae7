package payment

import (
	"context"

	"go.uber.org/zap"
)

// SubmitFunc performs one settlement round trip. Transport failures are
// returned as errors and are never retried; a rejected settlement is a
// Result, not an error.
type SubmitFunc func(ctx context.Context, req Request) (*Result, error)

// Engine submits composed payments and recovers from the upstream's
// amount-validation rejection by resubmitting exactly once with the
// corrected total. It holds no state between calls.
type Engine struct {
	submit SubmitFunc
	logger *zap.Logger
}

// NewEngine wires the engine to a settlement submitter.
func NewEngine(submit SubmitFunc, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{submit: submit, logger: logger}
}

// Settle submits the request and, when the upstream rejects the declared
// amount with a parsable correction, resubmits once with the corrected total
// and the request's retry token index. A second rejection is terminal
// regardless of its message.
func (e *Engine) Settle(ctx context.Context, req Request) (*Result, error) {
	if req.Amount == 0 {
		req.Amount = TotalAmount(req.Items)
	}

	res, err := e.submit(ctx, req)
	if err != nil {
		return nil, err
	}
	if res.Success() {
		return res, nil
	}

	corrected, ok := CorrectedAmount(res.Message)
	if !ok {
		e.logger.Debug("settlement rejected without parsable correction",
			zap.String("status", res.Status))
		return res, nil
	}

	e.logger.Info("adjusting declared settlement amount",
		zap.Int64("declared", req.Amount),
		zap.Int64("corrected", corrected))

	retry := req
	retry.Amount = corrected
	retry.TokenIndex = req.RetryTokenIndex
	return e.submit(ctx, retry)
}
