package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"myxl/cmd/myxl/ui"
	"myxl/internal/config"
	"myxl/internal/quota"
)

func testApp(input string) (*app, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &app{
		cfg:    config.Default(),
		logger: zap.NewNop(),
		styles: ui.DefaultStyles(),
		in:     bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}, out
}

func TestParseDelCommand(t *testing.T) {
	n, ok := parseDelCommand("del 3")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = parseDelCommand("DEL  7 ")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = parseDelCommand("delete 3")
	assert.False(t, ok)

	_, ok = parseDelCommand("del three")
	assert.False(t, ok)

	_, ok = parseDelCommand("3")
	assert.False(t, ok)
}

func TestRenderQuotaRecord(t *testing.T) {
	a, _ := testApp("")
	rec := quota.ParseQuotaRecord(quota.Document{
		"quota_code": "Q1",
		"name":       "Internet Harian",
		"group_code": "combo",
		"activated_at": float64(1767139199),
		"benefits": []any{
			map[string]any{
				"name": "Kuota Utama", "data_type": "DATA",
				"total": float64(2000000), "remaining": float64(999999),
			},
			map[string]any{
				"name": "Nelpon", "data_type": "VOICE",
				"total": float64(600), "remaining": float64(300),
			},
		},
	})

	out := a.renderQuotaRecord(rec, 1)
	assert.Contains(t, out, "1. Internet Harian")
	assert.Contains(t, out, "combo")
	assert.Contains(t, out, "Active Since")
	assert.Contains(t, out, "Kuota Utama")
	assert.Contains(t, out, "976.56 KB / 1.91 MB")
	assert.Contains(t, out, "5.00m / 10.00m")
	assert.Contains(t, out, "%")
}

func TestRenderQuotaRecordUnlimitedBenefit(t *testing.T) {
	a, _ := testApp("")
	rec := quota.ParseQuotaRecord(quota.Document{
		"name": "Unlimited Apps",
		"benefits": []any{
			map[string]any{
				"name": "Streaming", "data_type": "DATA",
				"is_unlimited": true, "total": float64(0),
			},
		},
	})

	out := a.renderQuotaRecord(rec, 2)
	assert.Contains(t, out, "Unlimited")
	assert.NotContains(t, out, "N/A", "unlimited renders a full bar, not the empty one")
}

func TestRenderPackageDetail(t *testing.T) {
	a, _ := testApp("")
	doc := quota.Document{
		"token_confirmation": "tok",
		"package_option": map[string]any{
			"package_option_code": "OPT1",
			"name":                "Xtra Combo",
			"price":               float64(15000),
			"validity":            "30 days",
			"tnc":                 "<p>Berlaku di <b>semua</b> jaringan</p>",
			"benefits": []any{
				map[string]any{
					"name": "Kuota", "data_type": "DATA",
					"total": float64(5000000000),
				},
			},
		},
		"package_detail_variant": map[string]any{"name": "Harian"},
		"package_family":         map[string]any{"name": "XTRA", "payment_for": "BUY_PACKAGE"},
	}

	out := a.renderPackageDetail(doc)
	assert.Contains(t, out, "XTRA - Harian - Xtra Combo")
	assert.Contains(t, out, "Rp 15000")
	assert.Contains(t, out, "30 days")
	assert.Contains(t, out, "4.66 GB / 4.66 GB")
	assert.Contains(t, out, "Terms & Conditions")
	assert.Contains(t, out, "Berlaku di semua jaringan")
	assert.NotContains(t, out, "<p>")
}

func TestConfirm(t *testing.T) {
	a, _ := testApp("y\n")
	assert.True(t, a.confirm("Proceed?"))

	a, _ = testApp("\n")
	assert.False(t, a.confirm("Proceed?"))

	a, _ = testApp("no\n")
	assert.False(t, a.confirm("Proceed?"))
}
