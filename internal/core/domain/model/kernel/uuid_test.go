package kernel_test

import (
	"encoding/json"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestUUID_ZeroValueIsRejected(t *testing.T) {
	var chef kernel.UUID

	err := chef.Validate()

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.NoError(t, kernel.NewUUID().Validate())
}

func TestUUIDFromString_NilUUIDParsesButIsInvalid(t *testing.T) {
	id, err := kernel.UUIDFromString(uuid.Nil.String())

	require.NoError(t, err)
	assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUIDFromString_RejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "order-42", "550e8400-e29b-41d4-a716"} {
		_, err := kernel.UUIDFromString(raw)
		assert.Error(t, err, raw)
	}
}

// Repository rows carry uuid.UUID columns; mapping goes through Bytes and UUIDFromBytes.
func TestUUIDFromBytes_MapsDatabaseColumns(t *testing.T) {
	t.Run("restores the id a row was written with", func(t *testing.T) {
		orderID := kernel.NewUUID()
		column := orderID.Bytes()

		restored, err := kernel.UUIDFromBytes(column[:])

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(orderID))
	})

	t.Run("rejects an unset column", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(uuid.Nil[:])

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("rejects a truncated value", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		require.Error(t, err)
		assert.NotErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_JSON(t *testing.T) {
	type line struct {
		MenuItemID kernel.UUID  `json:"menuItemId"`
		ChefID     *kernel.UUID `json:"chefId,omitempty"`
	}

	t.Run("encodes as the hyphenated string", func(t *testing.T) {
		id := kernel.NewUUID()

		data, err := json.Marshal(line{MenuItemID: id})

		require.NoError(t, err)
		assert.JSONEq(t, `{"menuItemId":"`+id.String()+`"}`, string(data))
	})

	t.Run("decodes request bodies", func(t *testing.T) {
		var got line
		err := json.Unmarshal([]byte(`{"menuItemId":"550e8400-e29b-41d4-a716-446655440000","chefId":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`), &got)

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", got.MenuItemID.String())
		require.NotNil(t, got.ChefID)
		assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", got.ChefID.String())
	})

	t.Run("fails on a malformed id", func(t *testing.T) {
		var got line
		err := json.Unmarshal([]byte(`{"menuItemId":"pizza"}`), &got)

		require.Error(t, err)
	})
}

func TestUUID_TextRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, "bytes")
		id, err := kernel.UUIDFromBytes(raw)
		if err != nil {
			t.Skip("nil uuid")
		}

		text, err := id.MarshalText()
		require.NoError(t, err)
		var back kernel.UUID
		require.NoError(t, back.UnmarshalText(text))
		assert.True(t, back.IsEqual(id))
	})
}
