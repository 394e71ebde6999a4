package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/storefront-api/pkg/apperror"
)

// classify turns a driver error into the application taxonomy.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperror.Wrap(apperror.NotFound, "not found", err)
	case mongo.IsDuplicateKeyError(err):
		return apperror.Wrap(apperror.Conflict, op+": duplicate key", err)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, mongo.ErrClientDisconnected):
		return apperror.Wrap(apperror.StoreUnavailable, "store unavailable", err)
	default:
		return apperror.Wrap(apperror.Internal, op+" failed", err)
	}
}
