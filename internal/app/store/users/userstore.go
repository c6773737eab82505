package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/gracegate/churchhub/internal/app/system/normalize"
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
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")

	// ErrBadRole is returned when the role is outside the enumeration.
	ErrBadRole = errors.New(`role must be "standard"|"pastor"|"IT"`)

	// ErrChurchNeeded is returned when a pastor or IT account is created
	// without a church selection.
	ErrChurchNeeded = errors.New("pastor/IT accounts must name a church selection")
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing & validating fields.
// The caller supplies PasswordHash already hashed; IsAdmin always starts false.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.FirstName = normalize.Name(u.FirstName)
	u.LastName = normalize.Name(u.LastName)
	u.Email = normalize.Email(u.Email)
	if u.Role == "" {
		u.Role = models.RoleStandard
	}

	switch u.Role {
	case models.RoleStandard, models.RolePastor, models.RoleIT:
		// ok
	default:
		return models.User{}, ErrBadRole
	}

	// Pastor and IT accounts must be tied to a church at creation.
	if (u.Role == models.RolePastor || u.Role == models.RoleIT) && normalize.Name(u.ChurchSelection) == "" {
		return models.User{}, ErrChurchNeeded
	}

	// Elevation is granted only by the approval workflow.
	u.IsAdmin = false

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// ProfileUpdate holds the profile fields a user may change about themselves.
// Nil pointers leave the corresponding field untouched.
type ProfileUpdate struct {
	FirstName       *string
	LastName        *string
	Email           *string
	ChurchSelection *string
}

// UpdateProfile applies a partial profile overlay and returns the post-update
// document. Returns ErrDuplicateEmail if the new email belongs to another user.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.FirstName != nil {
		set["first_name"] = normalize.Name(*upd.FirstName)
	}
	if upd.LastName != nil {
		set["last_name"] = normalize.Name(*upd.LastName)
	}
	if upd.Email != nil {
		set["email"] = normalize.Email(*upd.Email)
	}
	if upd.ChurchSelection != nil {
		set["church_selection"] = normalize.Name(*upd.ChurchSelection)
	}

	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}

// UpdatePassword replaces the stored credential hash.
func (s *Store) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password_hash": hash,
		"updated_at":    time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateAvatar replaces the stored avatar descriptor and returns the
// post-update document.
func (s *Store) UpdateAvatar(ctx context.Context, id primitive.ObjectID, av models.Avatar) (*models.User, error) {
	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"avatar": av, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListPending returns users still awaiting administrator approval,
// oldest first.
func (s *Store) ListPending(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"is_admin": false},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Approve flips the elevation flag and returns the post-update document.
// Returns mongo.ErrNoDocuments if the user does not exist.
func (s *Store) Approve(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_admin": true, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// PromoteByEmail flips the elevation flag for the account with the given
// email, if it exists. Used by the startup admin bootstrap. Returns the
// number of documents modified (0 or 1).
func (s *Store) PromoteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email), "is_admin": false},
		bson.M{"$set": bson.M{"is_admin": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// EmailExistsForOther checks if an email already exists for a user other than the given ID.
func (s *Store) EmailExistsForOther(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"email": normalize.Email(email),
		"_id":   bson.M{"$ne": excludeID},
	}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}
