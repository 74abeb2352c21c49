package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eduplay/platform-api/internal/core/domain"
)

// Shares the collection name the frontend's existing data already lives in.
const collectionGames = "physicalgameregs"

// GameRepository implements ports.GameRepository.
type GameRepository struct {
	col *mongo.Collection
}

func NewGameRepository(db *mongo.Database) *GameRepository {
	return &GameRepository{col: db.Collection(collectionGames)}
}

type mongoGame struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	GameTitle         string             `bson:"gametitle"`
	Age               string             `bson:"age"`
	Gender            string             `bson:"gender"`
	Category          string             `bson:"category"`
	Subcategory       string             `bson:"subcategory"`
	HowToPlay         string             `bson:"howtoplay"`
	BenefitsOfPlaying string             `bson:"benefitsofplaying"`
	ItemsRequired     string             `bson:"itemsrequied"`
	URL               string             `bson:"url"`
	Score             string             `bson:"score"`
	Level             string             `bson:"level"`
	CreatedAt         time.Time          `bson:"createdAt"`
}

// ExistsByTitle reports whether a game with exactly this title is stored.
func (r *GameRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"gametitle": title}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count games: %w", err)
	}
	return n > 0, nil
}

// Create inserts a new game document.
func (r *GameRepository) Create(ctx context.Context, g *domain.GameRegistration) (*domain.GameRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoGame{
		GameTitle:         g.GameTitle,
		Age:               g.Age,
		Gender:            g.Gender,
		Category:          g.Category,
		Subcategory:       g.Subcategory,
		HowToPlay:         g.HowToPlay,
		BenefitsOfPlaying: g.BenefitsOfPlaying,
		ItemsRequired:     g.ItemsRequired,
		URL:               g.URL,
		Score:             g.Score,
		Level:             g.Level,
		CreatedAt:         g.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrGameExists
		}
		return nil, fmt.Errorf("insert game: %w", err)
	}

	created := *g
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// EnsureIndexes creates necessary indexes on the games collection.
func (r *GameRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "gametitle", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
