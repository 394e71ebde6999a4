package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/storefront-api/pkg/apperror"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, classify("op", nil))
	assert.Equal(t, apperror.NotFound, apperror.KindOf(classify("op", mongo.ErrNoDocuments)))
	assert.Equal(t, apperror.StoreUnavailable, apperror.KindOf(classify("op", context.DeadlineExceeded)))
	assert.Equal(t, apperror.StoreUnavailable, apperror.KindOf(classify("op", mongo.ErrClientDisconnected)))

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.Equal(t, apperror.Conflict, apperror.KindOf(classify("create user", dup)))

	other := errors.New("boom")
	err := classify("op", other)
	assert.Equal(t, apperror.Internal, apperror.KindOf(err))
	assert.ErrorIs(t, err, other)
}

func TestOrderDocToEntityPreservesProductOrder(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	doc := orderDoc{ID: primitive.NewObjectID(), User: primitive.NewObjectID(), Products: []primitive.ObjectID{b, a}, Total: 3, CreatedAt: time.Now()}

	o := doc.toEntity()
	assert.Equal(t, []string{b.Hex(), a.Hex()}, o.Products)
	assert.Equal(t, doc.User.Hex(), o.User)
}

func TestToObjectIDsRejectsMalformed(t *testing.T) {
	_, err := toObjectIDs("products", []string{primitive.NewObjectID().Hex(), "nope"})
	assert.Equal(t, apperror.ValidationFailed, apperror.KindOf(err))
	assert.Equal(t, "must be a valid identifier", apperror.FieldsOf(err)["products"])
}
