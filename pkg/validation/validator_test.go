package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/storefront-api/pkg/apperror"
)

type sample struct {
	Email    string   `json:"email" validate:"required,email"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Products []string `json:"products" validate:"required,min=1,dive,objectid"`
}

func TestStruct(t *testing.T) {
	zero := 0.0

	t.Run("valid value", func(t *testing.T) {
		err := Struct(sample{Email: "a@b.test", Price: &zero, Products: []string{"64b7f0c2a1b2c3d4e5f60718"}})
		assert.NoError(t, err)
	})

	t.Run("lists every failing field by json name", func(t *testing.T) {
		err := Struct(sample{Email: "nope", Products: []string{"64b7f0c2a1b2c3d4e5f60718", "bad"}})
		require.Error(t, err)
		assert.Equal(t, apperror.ValidationFailed, apperror.KindOf(err))
		assert.Equal(t, map[string]string{
			"email":       "must be a valid email",
			"price":       "is required",
			"products[1]": "must be a valid identifier",
		}, apperror.FieldsOf(err))
	})

	t.Run("object ids in either case", func(t *testing.T) {
		err := Struct(sample{Email: "a@b.test", Price: &zero, Products: []string{"64B7F0C2A1B2C3D4E5F60718", "64b7f0c2a1b2c3d4e5f60718"}})
		assert.NoError(t, err)

		err = Struct(sample{Email: "a@b.test", Price: &zero, Products: []string{"64b7f0c2a1b2c3d4e5f6071"}})
		assert.Equal(t, "must be a valid identifier", apperror.FieldsOf(err)["products[0]"])
	})

	t.Run("empty slice", func(t *testing.T) {
		err := Struct(sample{Email: "a@b.test", Price: &zero, Products: []string{}})
		require.Error(t, err)
		assert.Equal(t, "must contain at least 1 item(s)", apperror.FieldsOf(err)["products"])
	})
}

func TestToDetails(t *testing.T) {
	assert.Nil(t, ToDetails(nil))

	var v struct {
		Price float64 `json:"price"`
	}
	err := json.Unmarshal([]byte(`{"price":"cheap"}`), &v)
	assert.Equal(t, map[string]string{"price": "must be float64"}, ToDetails(err))

	err = json.Unmarshal([]byte(`{"price":`), &v)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	assert.Equal(t, apperror.ValidationFailed, apperror.KindOf(BindError(err)))
}
