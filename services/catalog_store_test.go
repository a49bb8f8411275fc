package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// These run against the driver's mock deployment, so they pin the exact
// commands the service sends to the store.

func TestListByCategorySendsExactEqualityFilter(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("plain equality, no collation", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Rose Accord"},
			{Key: "category", Value: "floral"},
		}))

		svc := NewCatalogService(mt.Coll)
		products, err := svc.ListByCategory(context.Background(), "floral")
		require.NoError(mt, err)
		require.Len(mt, products, 1)
		assert.Equal(mt, "floral", products[0].Category)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)

		// The category must go over the wire as a bare string equality:
		// a regex or collation would change the case-sensitivity contract.
		filter := started.Command.Lookup("filter").Document()
		category, err := filter.LookupErr("category")
		require.NoError(mt, err)
		assert.Equal(mt, bson.TypeString, category.Type)
		assert.Equal(mt, "floral", category.StringValue())

		_, err = started.Command.LookupErr("collation")
		assert.Error(mt, err, "find must not carry a collation")
	})
}

func TestGetByIDNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty cursor maps to ErrNotFound", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		svc := NewCatalogService(mt.Coll)
		_, err := svc.GetByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
