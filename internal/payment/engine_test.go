package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSubmit replays canned results and records every request it sees.
type scriptedSubmit struct {
	results  []*Result
	err      error
	requests []Request
}

func (s *scriptedSubmit) fn(_ context.Context, req Request) (*Result, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	i := len(s.requests) - 1
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	return s.results[i], nil
}

func testItems() []LineItem {
	return Compose(
		PackageOption{OptionCode: "OPT-MAIN", Price: 55000, ConfirmationToken: "tok-main"},
		PackageOption{OptionCode: "OPT-DECOY", Price: 1000, ConfirmationToken: "tok-decoy"},
	)
}

func TestEngineSettle(t *testing.T) {
	ctx := context.Background()

	t.Run("success on first submit", func(t *testing.T) {
		sub := &scriptedSubmit{results: []*Result{{Status: StatusSuccess}}}
		engine := NewEngine(sub.fn, nil)

		res, err := engine.Settle(ctx, Request{Items: testItems(), PaymentFor: "BUY_PACKAGE"})
		require.NoError(t, err)
		assert.True(t, res.Success())
		require.Len(t, sub.requests, 1)
		assert.Equal(t, int64(56000), sub.requests[0].Amount, "zero amount defaults to item total")
	})

	t.Run("explicit amount is not recomputed", func(t *testing.T) {
		sub := &scriptedSubmit{results: []*Result{{Status: StatusSuccess}}}
		engine := NewEngine(sub.fn, nil)

		_, err := engine.Settle(ctx, Request{Items: testItems(), Amount: 60000})
		require.NoError(t, err)
		assert.Equal(t, int64(60000), sub.requests[0].Amount)
	})

	t.Run("correctable rejection resubmits once with corrected amount", func(t *testing.T) {
		sub := &scriptedSubmit{results: []*Result{
			{Status: "FAILED", Message: "Invalid total Bizz-err.Amount.Total, accepted = 15000"},
			{Status: StatusSuccess},
		}}
		engine := NewEngine(sub.fn, nil)

		res, err := engine.Settle(ctx, Request{
			Items:           testItems(),
			TokenIndex:      1,
			RetryTokenIndex: DefaultTokenIndex,
		})
		require.NoError(t, err)
		assert.True(t, res.Success())
		require.Len(t, sub.requests, 2)
		assert.Equal(t, int64(15000), sub.requests[1].Amount)
		assert.Equal(t, DefaultTokenIndex, sub.requests[1].TokenIndex,
			"resubmission switches to the retry token index")
	})

	t.Run("second rejection is terminal even with a new correction", func(t *testing.T) {
		sub := &scriptedSubmit{results: []*Result{
			{Status: "FAILED", Message: "Bizz-err.Amount.Total = 15000"},
			{Status: "FAILED", Message: "Bizz-err.Amount.Total = 12000"},
		}}
		engine := NewEngine(sub.fn, nil)

		res, err := engine.Settle(ctx, Request{Items: testItems()})
		require.NoError(t, err)
		assert.Equal(t, "FAILED", res.Status)
		assert.Contains(t, res.Message, "12000")
		assert.Len(t, sub.requests, 2, "no third submission")
	})

	t.Run("rejection without marker is terminal", func(t *testing.T) {
		sub := &scriptedSubmit{results: []*Result{
			{Status: "FAILED", Message: "insufficient balance"},
		}}
		engine := NewEngine(sub.fn, nil)

		res, err := engine.Settle(ctx, Request{Items: testItems()})
		require.NoError(t, err)
		assert.Equal(t, "FAILED", res.Status)
		assert.Len(t, sub.requests, 1)
	})

	t.Run("unparsable correction is terminal", func(t *testing.T) {
		sub := &scriptedSubmit{results: []*Result{
			{Status: "FAILED", Message: "Bizz-err.Amount.Total = oops"},
		}}
		engine := NewEngine(sub.fn, nil)

		res, err := engine.Settle(ctx, Request{Items: testItems()})
		require.NoError(t, err)
		assert.Equal(t, "FAILED", res.Status)
		assert.Len(t, sub.requests, 1)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		sub := &scriptedSubmit{err: errors.New("connection reset")}
		engine := NewEngine(sub.fn, nil)

		_, err := engine.Settle(ctx, Request{Items: testItems()})
		assert.Error(t, err)
		assert.Len(t, sub.requests, 1)
	})
}
