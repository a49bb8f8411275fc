package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Stats struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// StatsService answers the dashboard totals.
type StatsService struct {
	products *mongo.Collection
	orders   *mongo.Collection
}

func NewStatsService(products, orders *mongo.Collection) *StatsService {
	return &StatsService{products: products, orders: orders}
}

// Totals counts both collections and sums revenue across all orders,
// whatever their status.
func (s *StatsService) Totals(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error

	stats.TotalProducts, err = s.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Stats{}, storeErr("count products", err)
	}

	stats.TotalOrders, err = s.orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Stats{}, storeErr("count orders", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$totalAmount"}}},
		}}},
	}
	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return Stats{}, storeErr("sum revenue", err)
	}

	var sums []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &sums); err != nil {
		return Stats{}, storeErr("decode revenue", err)
	}
	if len(sums) > 0 {
		stats.TotalRevenue = sums[0].Total
	}
	return stats, nil
}
