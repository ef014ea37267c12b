package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactToken(t *testing.T) {
	t.Parallel()

	t.Run("returns placeholder for empty token", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "<none>", RedactToken(""))
	})

	t.Run("produces stable 8 char fingerprint", func(t *testing.T) {
		t.Parallel()
		first := RedactToken("secret-token-abc")
		second := RedactToken("secret-token-abc")
		require.Len(t, first, 8)
		require.Equal(t, first, second)
	})

	t.Run("never contains the raw token", func(t *testing.T) {
		t.Parallel()
		require.NotContains(t, RedactToken("tok"), "tok")
	})

	t.Run("different tokens produce different fingerprints", func(t *testing.T) {
		t.Parallel()
		require.NotEqual(t, RedactToken("token-a"), RedactToken("token-b"))
	})
}

func TestSanitizeQuery(t *testing.T) {
	t.Parallel()

	t.Run("handles empty query", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "<empty>", SanitizeQuery(""))
	})

	t.Run("reports word and char counts only", func(t *testing.T) {
		t.Parallel()
		got := SanitizeQuery("how much did I spend on groceries")
		require.Equal(t, "<redacted: 7 words, 33 chars>", got)
		require.NotContains(t, got, "groceries")
	})
}

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	t.Run("handles empty text", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "<empty>", SanitizeText(""))
	})

	t.Run("short text shows only length", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "<5 chars>", SanitizeText("hello"))
	})

	t.Run("long text shows prefix and length", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Din...<13 chars>", SanitizeText("Dining budget"))
	})
}
