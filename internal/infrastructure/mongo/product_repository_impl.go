package mongo

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
	"github.com/oksasatya/storefront-api/internal/domain/repository"
)

type productDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Price     float64            `bson:"price"`
	Category  string             `bson:"category"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d productDoc) toEntity() entity.Product {
	return entity.Product{ID: d.ID.Hex(), Name: d.Name, Price: d.Price, Category: d.Category, CreatedAt: d.CreatedAt}
}

type ProductRepository struct {
	coll *mongo.Collection
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	doc := productDoc{ID: primitive.NewObjectID(), Name: p.Name, Price: p.Price, Category: p.Category, CreatedAt: time.Now().UTC()}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return classify("create product", err)
	}
	p.ID = doc.ID.Hex()
	p.CreatedAt = doc.CreatedAt
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return r.find(ctx, bson.M{}, options.Find())
}

func (r *ProductRepository) Search(ctx context.Context, q string, limit int) ([]entity.Product, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{"$or": bson.A{bson.M{"name": re}, bson.M{"category": re}}}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, filter, opts)
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]entity.Product, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, classify("list products", err)
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, classify("decode products", err)
	}
	out := make([]entity.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
