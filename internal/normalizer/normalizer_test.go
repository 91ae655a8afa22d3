package normalizer

import (
	"testing"

	"efipay-shopify-bridge/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StatusDetection(t *testing.T) {
	n := New(nil)

	t.Run("no status key anywhere yields unknown", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"payment":{"state":"done","total":100}}`))
		assert.Equal(t, entities.StatusUnknown, ev.Status)
		assert.Empty(t, ev.RawStatus)
	})

	t.Run("approved vocabulary matches case-insensitively", func(t *testing.T) {
		for _, raw := range []string{"approved", "APPROVED", "Aprobado", "paid", "Pagado", "success", "Succeeded"} {
			ev := n.Normalize([]byte(`{"status":"` + raw + `"}`))
			assert.Equal(t, entities.StatusApproved, ev.Status, "status %q", raw)
			assert.Equal(t, raw, ev.RawStatus)
		}
	})

	t.Run("anything outside the vocabulary is not approved", func(t *testing.T) {
		for _, raw := range []string{"rejected", "pending", "cancelled", "failure"} {
			ev := n.Normalize([]byte(`{"status":"` + raw + `"}`))
			assert.Equal(t, entities.StatusNotApproved, ev.Status, "status %q", raw)
		}
	})

	t.Run("status key is found at any depth", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"data":{"transaction":{"details":{"status":"Aprobado"}}}}`))
		assert.Equal(t, entities.StatusApproved, ev.Status)
	})

	t.Run("non-string status values are skipped", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"status":200,"payment":{"status":"approved"}}`))
		assert.Equal(t, entities.StatusApproved, ev.Status)
		assert.Equal(t, "approved", ev.RawStatus)
	})

	t.Run("key match is case-sensitive", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"Status":"approved"}`))
		assert.Equal(t, entities.StatusUnknown, ev.Status)
	})
}

func TestNormalize_CustomVocabulary(t *testing.T) {
	n := New([]string{"completado", " OK "})

	assert.Equal(t, entities.StatusApproved, n.Normalize([]byte(`{"status":"Completado"}`)).Status)
	assert.Equal(t, entities.StatusApproved, n.Normalize([]byte(`{"status":"ok"}`)).Status)
	assert.Equal(t, entities.StatusNotApproved, n.Normalize([]byte(`{"status":"approved"}`)).Status)
}

func TestNormalize_AmountDetection(t *testing.T) {
	n := New(nil)

	t.Run("first positive number under an amount key wins", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"payment":{"amount":150000.5},"summary":{"total":999}}`))
		require.NotNil(t, ev.Amount)
		assert.True(t, ev.Amount.Equal(decimal.NewFromFloat(150000.5)))
	})

	t.Run("amount keys match case-insensitively", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"Total":42}`))
		require.NotNil(t, ev.Amount)
		assert.True(t, ev.Amount.Equal(decimal.NewFromInt(42)))
	})

	t.Run("non-numeric and non-positive candidates are skipped, not matched", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"amount":"150000","value":0,"total":-3,"payment":{"amount":77}}`))
		require.NotNil(t, ev.Amount)
		assert.True(t, ev.Amount.Equal(decimal.NewFromInt(77)))
	})

	t.Run("absent amount stays nil", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"status":"approved"}`))
		assert.Nil(t, ev.Amount)
	})
}

func TestNormalize_ReferenceExtraction(t *testing.T) {
	n := New(nil)

	t.Run("advanced_options references container", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"advanced_options":{"references":["1007"]}}`))
		assert.Equal(t, "1007", ev.OrderReference)
		assert.Equal(t, "structured_reference", ev.ReferenceSource)
	})

	t.Run("top-level references container", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"references":["2044"]}`))
		assert.Equal(t, "2044", ev.OrderReference)
	})

	t.Run("payment sub-object references container", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"payment":{"references":[1007]}}`))
		assert.Equal(t, "1007", ev.OrderReference)
	})

	t.Run("singular reference field", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"reference":"1033"}`))
		assert.Equal(t, "1033", ev.OrderReference)
	})

	t.Run("structured reference beats pedido description", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"description":"Pedido 9999 - Paytton Tires","advanced_options":{"references":["1007"]}}`))
		assert.Equal(t, "1007", ev.OrderReference)
		assert.Equal(t, "structured_reference", ev.ReferenceSource)
	})

	t.Run("pedido description fallback takes the first digit run", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"payment":{"description":"Pedido 1007 - Paytton Tires"}}`))
		assert.Equal(t, "1007", ev.OrderReference)
		assert.Equal(t, "description_digits", ev.ReferenceSource)
	})

	t.Run("pedido match is case-insensitive", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"note":"PEDIDO 1021"}`))
		assert.Equal(t, "1021", ev.OrderReference)
	})

	t.Run("pedido description beats bare digit strings", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"code":"555123","note":"Pedido 1007"}`))
		assert.Equal(t, "1007", ev.OrderReference)
	})

	t.Run("bare digits last resort requires 3 to 10 digits", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"a":"12","b":"12345678901","c":"1007"}`))
		assert.Equal(t, "1007", ev.OrderReference)
		assert.Equal(t, "bare_digits", ev.ReferenceSource)
	})

	t.Run("no reference anywhere stays empty", func(t *testing.T) {
		ev := n.Normalize([]byte(`{"status":"approved","amount":10}`))
		assert.Empty(t, ev.OrderReference)
		assert.Empty(t, ev.ReferenceSource)
	})
}

func TestNormalize_BodyHandling(t *testing.T) {
	n := New(nil)

	t.Run("double-encoded string body is unwrapped", func(t *testing.T) {
		ev := n.Normalize([]byte(`"{\"status\":\"approved\",\"reference\":\"1007\"}"`))
		assert.Equal(t, entities.StatusApproved, ev.Status)
		assert.Equal(t, "1007", ev.OrderReference)
		assert.False(t, ev.Malformed)
	})

	t.Run("unparseable body degrades to an empty malformed event", func(t *testing.T) {
		ev := n.Normalize([]byte(`{not json`))
		assert.True(t, ev.Malformed)
		assert.Equal(t, entities.StatusUnknown, ev.Status)
		assert.Empty(t, ev.OrderReference)
	})

	t.Run("string body wrapping non-json degrades the same way", func(t *testing.T) {
		ev := n.Normalize([]byte(`"hello there"`))
		assert.True(t, ev.Malformed)
		assert.Equal(t, entities.StatusUnknown, ev.Status)
	})

	t.Run("empty body degrades the same way", func(t *testing.T) {
		ev := n.Normalize(nil)
		assert.True(t, ev.Malformed)
		assert.Equal(t, entities.StatusUnknown, ev.Status)
	})

	t.Run("raw payload is retained for diagnostics", func(t *testing.T) {
		body := []byte(`{"status":"rejected"}`)
		ev := n.Normalize(body)
		assert.JSONEq(t, string(body), string(ev.RawPayload))
	})
}

func TestNormalize_DocumentOrderDeterminism(t *testing.T) {
	n := New(nil)

	// Two status keys at the same depth: the first in document order wins,
	// every time.
	body := []byte(`{"a":{"status":"rejected"},"b":{"status":"approved"}}`)
	for i := 0; i < 50; i++ {
		ev := n.Normalize(body)
		require.Equal(t, "rejected", ev.RawStatus)
	}
}
