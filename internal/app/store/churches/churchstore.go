package churchstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/gracegate/churchhub/internal/app/system/normalize"
	"github.com/gracegate/churchhub/internal/app/system/validate"
	"github.com/gracegate/churchhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("churches")}
}

var (
	// ErrDuplicateName is returned when a church with the same name already exists.
	ErrDuplicateName = errors.New("a church with this name already exists")

	// ErrInvariantViolated is returned when an update would leave the
	// document in a state that breaks the creation invariants.
	ErrInvariantViolated = errors.New("update violates church document invariants")
)

// Create inserts a new church document owned by ownerID.
func (s *Store) Create(ctx context.Context, ch models.Church, ownerID primitive.ObjectID) (models.Church, error) {
	ch.ID = primitive.NewObjectID()
	ch.Name = normalize.Name(ch.Name)
	ch.NameCI = text.Fold(ch.Name)
	ch.OwnerID = ownerID

	now := time.Now()
	ch.CreatedAt = now
	ch.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, ch); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Church{}, ErrDuplicateName
		}
		return models.Church{}, err
	}
	return ch, nil
}

// GetByID loads a church by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Church, error) {
	var ch models.Church
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// ListByOwner returns all churches created by the given user, newest first.
func (s *Store) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Church, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var churches []models.Church
	if err := cur.All(ctx, &churches); err != nil {
		return nil, err
	}
	return churches, nil
}

// ListPublic returns the restricted {id, name} projection for the public
// listing, sorted by folded name. limit fetches one extra row so callers
// can detect whether another page exists.
func (s *Store) ListPublic(ctx context.Context, skip, limit int64) ([]models.ChurchSummary, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().
		SetProjection(bson.M{"_id": 1, "name": 1}).
		SetSort(bson.D{{Key: "name_ci", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.ChurchSummary
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Update applies a partial overlay: each supplied field replaces the stored
// field wholesale. The overlay is applied to the loaded document in memory
// and re-checked against the creation invariants BEFORE anything is
// written; a violation surfaces as ErrInvariantViolated and the stored
// document is left untouched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Church, error) {
	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}
	if name, ok := set["name"].(string); ok {
		set["name"] = normalize.Name(name)
		set["name_ci"] = text.Fold(normalize.Name(name))
	}
	set["updated_at"] = time.Now()

	ch, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The overlay keys are the document's own bson keys, so decoding the
	// overlay onto the loaded struct replaces exactly the supplied fields.
	raw, err := bson.Marshal(set)
	if err != nil {
		return nil, err
	}
	if err := bson.Unmarshal(raw, ch); err != nil {
		return nil, err
	}
	if vs := CheckInvariants(ch); !vs.OK() {
		return nil, ErrInvariantViolated
	}

	if _, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return ch, nil
}

// Delete removes a church by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CheckInvariants verifies the document-level rules every stored church
// must satisfy: the required array fields are non-empty and the name is
// present. Used on create payload validation and after updates.
func CheckInvariants(ch *models.Church) validate.Violations {
	var vs validate.Violations
	vs.Required("name", ch.Name)
	validate.NonEmpty(&vs, "banner", ch.Banner)
	validate.NonEmpty(&vs, "gallery", ch.Gallery)
	validate.NonEmpty(&vs, "securities.deacons", ch.Securities.Deacons)
	validate.NonEmpty(&vs, "securities.trustees", ch.Securities.Trustees)
	validate.NonEmpty(&vs, "oldServices", ch.OldServices)
	validate.NonEmpty(&vs, "liveServices", ch.LiveServices)
	validate.NonEmpty(&vs, "songs", ch.Songs)
	return vs
}
