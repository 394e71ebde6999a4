package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/storefront-api/internal/domain/entity"
	"github.com/oksasatya/storefront-api/internal/domain/repository"
	"github.com/oksasatya/storefront-api/pkg/apperror"
)

type orderDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	User      primitive.ObjectID   `bson:"user"`
	Products  []primitive.ObjectID `bson:"products"`
	Total     float64              `bson:"total"`
	CreatedAt time.Time            `bson:"createdAt"`
}

func (d orderDoc) toEntity() entity.Order {
	products := make([]string, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, p.Hex())
	}
	return entity.Order{ID: d.ID.Hex(), User: d.User.Hex(), Products: products, Total: d.Total, CreatedAt: d.CreatedAt}
}

func toObjectIDs(field string, hexes []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		oid, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, apperror.Validation(map[string]string{field: "must be a valid identifier"})
		}
		out = append(out, oid)
	}
	return out, nil
}

type OrderRepository struct {
	coll *mongo.Collection
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	user, err := primitive.ObjectIDFromHex(o.User)
	if err != nil {
		return apperror.Validation(map[string]string{"user": "must be a valid identifier"})
	}
	products, err := toObjectIDs("products", o.Products)
	if err != nil {
		return err
	}
	doc := orderDoc{ID: primitive.NewObjectID(), User: user, Products: products, Total: o.Total, CreatedAt: time.Now().UTC()}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return classify("create order", err)
	}
	o.ID = doc.ID.Hex()
	o.CreatedAt = doc.CreatedAt
	return nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []entity.Order{}, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"user": user}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, classify("list orders", err)
	}
	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, classify("decode orders", err)
	}
	out := make([]entity.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
