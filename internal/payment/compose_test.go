package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	primary := PackageOption{
		OptionCode:        "OPT-MAIN",
		Name:              "Xtra Combo",
		VariantName:       "30 Hari",
		Price:             55000,
		ConfirmationToken: "tok-main",
	}
	decoy := PackageOption{
		OptionCode:        "OPT-DECOY",
		Name:              "Booster 1GB",
		Price:             1000,
		ConfirmationToken: "tok-decoy",
	}

	t.Run("primary alone", func(t *testing.T) {
		items := Compose(primary)
		require.Len(t, items, 1)
		assert.Equal(t, "OPT-MAIN", items[0].ItemCode)
		assert.Equal(t, "30 Hari Xtra Combo", items[0].ItemName)
		assert.Equal(t, "tok-main", items[0].ConfirmationToken)
	})

	t.Run("primary is index zero, decoys follow", func(t *testing.T) {
		items := Compose(primary, decoy)
		require.Len(t, items, 2)
		assert.Equal(t, "OPT-MAIN", items[0].ItemCode)
		assert.Equal(t, "OPT-DECOY", items[1].ItemCode)
		assert.Equal(t, "tok-decoy", items[1].ConfirmationToken)
	})

	t.Run("total amount sums every item", func(t *testing.T) {
		items := Compose(primary, decoy)
		assert.Equal(t, int64(56000), TotalAmount(items))
	})

	t.Run("empty item list totals zero", func(t *testing.T) {
		assert.Zero(t, TotalAmount(nil))
	})
}
