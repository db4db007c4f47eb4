package stub

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchange_GeneratedResponse(t *testing.T) {
	generated := map[string]any{"id": "ch_123"}
	ex := NewExchange(generated)

	assert.Equal(t, generated, ex.GeneratedResponse())
	assert.False(t, ex.Suppressed())
}

func TestExchange_NilResponse(t *testing.T) {
	ex := NewExchange(nil)
	assert.Nil(t, ex.GeneratedResponse())
}

func TestExchange_ModifyCommitsOnSuccess(t *testing.T) {
	ex := NewExchange(map[string]any{
		"id":   "ch_123",
		"card": map[string]any{"brand": "visa"},
	})

	err := ex.ModifyGeneratedResponse(func(v *Restricted) error {
		if err := v.Set("id", "ch_override", false); err != nil {
			return err
		}
		return v.DeepMerge(map[string]any{
			"card": map[string]any{"brand": "amex"},
		}, false)
	})
	require.NoError(t, err)

	got := ex.GeneratedResponse()
	assert.Equal(t, "ch_override", got["id"])
	assert.Equal(t, "amex", got["card"].(map[string]any)["brand"])
}

func TestExchange_ModifyDoesNotCommitOnFailure(t *testing.T) {
	ex := NewExchange(map[string]any{"id": "ch_123"})

	err := ex.ModifyGeneratedResponse(func(v *Restricted) error {
		if err := v.Set("id", "partial", false); err != nil {
			return err
		}
		// A guard violation after a successful edit: nothing may persist.
		return v.Set("bogus", true, false)
	})

	var undefined *UndefinedKeyError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "ch_123", ex.GeneratedResponse()["id"])
}

func TestExchange_ModifyPropagatesMutatorError(t *testing.T) {
	ex := NewExchange(map[string]any{"id": "ch_123"})
	boom := errors.New("override gave up")

	err := ex.ModifyGeneratedResponse(func(*Restricted) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestExchange_ModifyNilResponse(t *testing.T) {
	ex := NewExchange(nil)

	err := ex.ModifyGeneratedResponse(func(v *Restricted) error {
		return v.Set("id", "new", true)
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "new"}, ex.GeneratedResponse())
}

func TestExchange_SuppressIsIdempotent(t *testing.T) {
	ex := NewExchange(map[string]any{"id": "ch_123"})

	ex.SuppressGeneratedResponse()
	assert.True(t, ex.Suppressed())

	ex.SuppressGeneratedResponse()
	ex.SuppressGeneratedResponse()
	assert.True(t, ex.Suppressed())
}
