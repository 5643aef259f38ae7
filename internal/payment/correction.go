package payment

import (
	"strconv"
	"strings"
)

// amountMarker is the literal the upstream embeds in amount-validation
// rejections. The server echoes the total it would accept after an "=" in
// the same message.
const amountMarker = "Bizz-err.Amount.Total"

// CorrectedAmount extracts the server-accepted total from an
// amount-validation rejection message. This is a brittle but observed
// contract: the message looks like "... Bizz-err.Amount.Total ... = 15000"
// and the segment after the first "=" is the accepted amount. Returns false
// when the marker is absent or the amount does not parse; callers must treat
// that as a terminal rejection.
func CorrectedAmount(message string) (int64, bool) {
	if !strings.Contains(message, amountMarker) {
		return 0, false
	}
	parts := strings.Split(message, "=")
	if len(parts) < 2 {
		return 0, false
	}
	amount, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
