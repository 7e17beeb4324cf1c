package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/passaqui/passaqui-api/internal/core/domain"
)

// Collection name mirrors the lowercased schema name the product launched with.
const userCollection = "user"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Phone     string             `bson:"phone"`
	Email     string             `bson:"email"`
	Location  string             `bson:"location"`
	Status    string             `bson:"status"`
	Reason    string             `bson:"reason"`
	Password  string             `bson:"password"`
	IsActive  bool               `bson:"is_active"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	doc := mongoUser{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Email:     user.Email,
		Location:  user.Location,
		Status:    string(user.Status),
		Reason:    user.Reason,
		Password:  user.Password,
		IsActive:  user.IsActive,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailTaken
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	// Exact-equality match on both fields in one round-trip. The caller gets
	// the same not-found error whether the email is unknown or the password
	// is wrong.
	return r.findOne(ctx, bson.M{"email": email, "password": password})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:        mu.ID.Hex(),
		FirstName: mu.FirstName,
		LastName:  mu.LastName,
		Phone:     mu.Phone,
		Email:     mu.Email,
		Location:  mu.Location,
		Status:    domain.Status(mu.Status),
		Reason:    mu.Reason,
		Password:  mu.Password,
		IsActive:  mu.IsActive,
	}, nil
}
