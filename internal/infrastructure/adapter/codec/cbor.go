package codec

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// ContentTypeCBOR is the media type served for CBOR encoded saved durations
const ContentTypeCBOR = "application/cbor"

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.CanonicalEncOptions()
	encOpts.Time = cbor.TimeRFC3339Nano
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// savedDurationRecord is the wire form of a saved duration, keyed by small integers
type savedDurationRecord struct {
	ID        string    `cbor:"1,keyasint"`
	Name      string    `cbor:"2,keyasint"`
	Quantity  int64     `cbor:"3,keyasint"`
	Unit      string    `cbor:"4,keyasint"`
	CreatedAt time.Time `cbor:"5,keyasint"`
}

// EncodeSavedDuration encodes saved in deterministic CBOR
func EncodeSavedDuration(saved *entity.SavedDuration) ([]byte, error) {
	return encMode.Marshal(savedDurationRecord{
		ID:        saved.ID.String(),
		Name:      saved.Name,
		Quantity:  saved.Duration.Quantity(),
		Unit:      saved.Duration.Unit().String(),
		CreatedAt: saved.CreatedAt.UTC(),
	})
}

// DecodeSavedDuration decodes and revalidates a saved duration
func DecodeSavedDuration(data []byte) (*entity.SavedDuration, error) {
	var record savedDurationRecord
	if err := decMode.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}

	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad id %q", errs.ErrInvalidRequest, record.ID)
	}
	unit, err := entity.ParseTimeUnit(record.Unit)
	if err != nil {
		return nil, err
	}
	d, err := entity.NewDuration(record.Quantity, unit)
	if err != nil {
		return nil, err
	}

	return &entity.SavedDuration{
		ID:        id,
		Name:      record.Name,
		Duration:  d,
		CreatedAt: record.CreatedAt.UTC(),
	}, nil
}
