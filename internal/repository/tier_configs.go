package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

// ErrVersionConflict is returned when another writer stored the same revision first.
var ErrVersionConflict = errors.New("tier configuration was modified concurrently")

// TierConfig is one stored revision of a product's bulk-pricing ladder.
type TierConfig struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RevisionID       string             `bson:"revision_id" json:"revision_id"`
	ProductID        string             `bson:"product_id" json:"product_id"`
	BasePricePerUnit int64              `bson:"base_price_per_unit" json:"base_price_per_unit"`
	Tiers            []model.PriceTier  `bson:"tiers" json:"tiers"`
	Active           bool               `bson:"active" json:"active"`
	Version          int                `bson:"version" json:"version"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy        string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// TierConfigRepository stores tier configuration revisions.
type TierConfigRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewTierConfigRepository creates a new tier configuration repository.
func NewTierConfigRepository(db *MongoDB) *TierConfigRepository {
	return &TierConfigRepository{
		collection: db.TierConfigs,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GetActive returns the active configuration of a product, or nil when none exists.
func (r *TierConfigRepository) GetActive(ctx context.Context, productID string) (*TierConfig, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})

	var config TierConfig
	err := r.collection.FindOne(ctx, bson.M{"product_id": productID, "active": true}, opts).Decode(&config)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active tier config for %q: %w", productID, err)
	}
	return &config, nil
}

// Create stores a new active revision and deactivates older ones. The new
// document is inserted first so a product never loses its active ladder.
func (r *TierConfigRepository) Create(ctx context.Context, productID string, basePricePerUnit int64, tiers []model.PriceTier, createdBy string) (*TierConfig, error) {
	latest, err := r.latestVersion(ctx, productID)
	if err != nil {
		return nil, err
	}

	now := r.now()
	config := TierConfig{
		ID:               primitive.NewObjectID(),
		RevisionID:       uuid.NewString(),
		ProductID:        productID,
		BasePricePerUnit: basePricePerUnit,
		Tiers:            tiers,
		Active:           true,
		Version:          latest + 1,
		CreatedAt:        now,
		UpdatedAt:        now,
		CreatedBy:        createdBy,
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: product %q version %d", ErrVersionConflict, productID, config.Version)
		}
		return nil, fmt.Errorf("insert tier config: %w", err)
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"product_id": productID, "active": true, "version": bson.M{"$lt": config.Version}},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return nil, fmt.Errorf("deactivate previous tier configs: %w", err)
	}

	return &config, nil
}

// List returns a product's revisions, newest first.
func (r *TierConfigRepository) List(ctx context.Context, productID string, limit int) ([]TierConfig, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list tier configs: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	configs := make([]TierConfig, 0)
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, fmt.Errorf("decode tier configs: %w", err)
	}
	return configs, nil
}

func (r *TierConfigRepository) latestVersion(ctx context.Context, productID string) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "version", Value: -1}}).
		SetProjection(bson.M{"version": 1})

	var doc struct {
		Version int `bson:"version"`
	}
	err := r.collection.FindOne(ctx, bson.M{"product_id": productID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find latest tier config version: %w", err)
	}
	return doc.Version, nil
}
