package churchstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gracegate/churchhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NestedField names an ordered sequence inside a church document that
// supports single-element removal by index. The set is a closed
// enumeration: anything outside it is rejected at the boundary instead of
// relying on a runtime shape check.
type NestedField string

const (
	FieldGallery      NestedField = "gallery"
	FieldBanner       NestedField = "banner"
	FieldSongs        NestedField = "songs"
	FieldOldServices  NestedField = "old_services"
	FieldLiveServices NestedField = "live_services"
	FieldDeacons      NestedField = "securities.deacons"
	FieldTrustees     NestedField = "securities.trustees"
)

var (
	// ErrUnknownField is returned for a field name outside the enumeration.
	ErrUnknownField = errors.New("field does not support element removal")

	// ErrIndexOutOfRange is returned when the index does not address an
	// element of the target sequence.
	ErrIndexOutOfRange = errors.New("index is outside the sequence bounds")
)

// spliced returns items with the element at index removed, preserving the
// order of the remaining elements. The original slice is not modified.
func spliced[T any](items []T, index int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}

// RemoveAt removes exactly one element, by position, from the named
// sequence of the church with the given id, and persists the result with
// a single write.
//
// This operation is deliberately NOT idempotent: repeating it with the
// same index removes whichever element now occupies that position, or
// fails with ErrIndexOutOfRange if the sequence shrank below it.
//
// The caller is responsible for checking that index >= 0; a missing
// church surfaces as mongo.ErrNoDocuments.
func (s *Store) RemoveAt(ctx context.Context, id primitive.ObjectID, field NestedField, index int) error {
	ch, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var value any
	switch field {
	case FieldGallery:
		if index >= len(ch.Gallery) {
			return ErrIndexOutOfRange
		}
		value = spliced(ch.Gallery, index)
	case FieldBanner:
		if index >= len(ch.Banner) {
			return ErrIndexOutOfRange
		}
		value = spliced(ch.Banner, index)
	case FieldSongs:
		if index >= len(ch.Songs) {
			return ErrIndexOutOfRange
		}
		value = spliced(ch.Songs, index)
	case FieldOldServices:
		if index >= len(ch.OldServices) {
			return ErrIndexOutOfRange
		}
		value = spliced(ch.OldServices, index)
	case FieldLiveServices:
		if index >= len(ch.LiveServices) {
			return ErrIndexOutOfRange
		}
		value = spliced(ch.LiveServices, index)
	case FieldDeacons:
		if index >= len(ch.Securities.Deacons) {
			return ErrIndexOutOfRange
		}
		value = spliced(ch.Securities.Deacons, index)
	case FieldTrustees:
		if index >= len(ch.Securities.Trustees) {
			return ErrIndexOutOfRange
		}
		value = spliced(ch.Securities.Trustees, index)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	_, err = s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{string(field): value, "updated_at": time.Now()}},
	)
	return err
}

// SequenceLen reports the current length of the named sequence. Used by
// handlers that want to report bounds in error messages.
func SequenceLen(ch *models.Church, field NestedField) (int, error) {
	switch field {
	case FieldGallery:
		return len(ch.Gallery), nil
	case FieldBanner:
		return len(ch.Banner), nil
	case FieldSongs:
		return len(ch.Songs), nil
	case FieldOldServices:
		return len(ch.OldServices), nil
	case FieldLiveServices:
		return len(ch.LiveServices), nil
	case FieldDeacons:
		return len(ch.Securities.Deacons), nil
	case FieldTrustees:
		return len(ch.Securities.Trustees), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}
