package codec

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedDurationCBOR(t *testing.T) {
	saved := &entity.SavedDuration{
		ID:        uuid.MustParse("3f1c5a52-8f0e-4a51-9b7c-2d7f3c1e9a10"),
		Name:      "billing-cycle",
		Duration:  entity.Must(entity.Months(1)),
		CreatedAt: time.Date(2024, 7, 1, 10, 30, 0, 0, time.UTC),
	}

	data, err := EncodeSavedDuration(saved)
	require.NoError(t, err)

	again, err := EncodeSavedDuration(saved)
	require.NoError(t, err)
	assert.Equal(t, data, again, "encoding is deterministic")

	decoded, err := DecodeSavedDuration(data)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, decoded.ID)
	assert.Equal(t, saved.Name, decoded.Name)
	assert.Equal(t, saved.Duration, decoded.Duration)
	assert.True(t, saved.CreatedAt.Equal(decoded.CreatedAt))
}

func TestDecodeSavedDurationRejectsInvalidRecords(t *testing.T) {
	encode := func(t *testing.T, record savedDurationRecord) []byte {
		t.Helper()
		data, err := cbor.Marshal(record)
		require.NoError(t, err)
		return data
	}

	t.Run("Unknown unit", func(t *testing.T) {
		_, err := DecodeSavedDuration(encode(t, savedDurationRecord{ID: uuid.NewString(), Name: "x", Quantity: 1, Unit: "fortnight"}))
		assert.ErrorIs(t, err, errs.ErrUnknownUnit)
	})

	t.Run("Negative quantity", func(t *testing.T) {
		_, err := DecodeSavedDuration(encode(t, savedDurationRecord{ID: uuid.NewString(), Name: "x", Quantity: -3, Unit: "day"}))
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("Bad id", func(t *testing.T) {
		_, err := DecodeSavedDuration(encode(t, savedDurationRecord{ID: "nope", Name: "x", Quantity: 1, Unit: "day"}))
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := DecodeSavedDuration([]byte{0xff, 0x00})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
