package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(number string) Account {
	return Account{
		Number:           number,
		SubscriberID:     "sub-" + number,
		SubscriptionType: "PREPAID",
		Tokens:           Tokens{IDToken: "id-" + number},
	}
}

func TestStore(t *testing.T) {
	t.Run("empty store has no active session", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.NoError(t, err)
		_, ok := s.Active()
		assert.False(t, ok)
	})

	t.Run("first added account becomes active", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, s.Add(testAccount("628111")))

		sess, ok := s.Active()
		require.True(t, ok)
		assert.Equal(t, "628111", sess.Number)
		assert.Equal(t, "id-628111", sess.Tokens.IDToken)
	})

	t.Run("accounts survive reopen", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		require.NoError(t, err)
		require.NoError(t, s.Add(testAccount("628111")))
		require.NoError(t, s.Add(testAccount("628222")))
		require.NoError(t, s.SetActive("628222"))

		reopened, err := Open(dir)
		require.NoError(t, err)
		assert.Len(t, reopened.List(), 2)
		sess, ok := reopened.Active()
		require.True(t, ok)
		assert.Equal(t, "628222", sess.Number)
	})

	t.Run("add with same number updates in place", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, s.Add(testAccount("628111")))

		updated := testAccount("628111")
		updated.Name = "Budi"
		require.NoError(t, s.Add(updated))

		accounts := s.List()
		require.Len(t, accounts, 1)
		assert.Equal(t, "Budi", accounts[0].Name)
	})

	t.Run("set active rejects unknown numbers", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.NoError(t, err)
		assert.Error(t, s.SetActive("628999"))
	})

	t.Run("removing the active account clears selection", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, s.Add(testAccount("628111")))
		require.NoError(t, s.Remove("628111"))

		_, ok := s.Active()
		assert.False(t, ok)
		assert.Empty(t, s.List())
	})
}
