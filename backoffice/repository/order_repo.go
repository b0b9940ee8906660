package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/procargo/backoffice/backoffice/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func (r *repo) CreateOrder(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	return insertOne(ctx, r.db.Collection(orderCollection), &order.BaseEntity, order)
}

func (r *repo) UpdateOrder(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	return replaceOne(ctx, r.db.Collection(orderCollection), &order.BaseEntity, order)
}

func (r *repo) QueryOrders(ctx context.Context, opt *domain.QueryOrderOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	inFilter(filter, "_id", opt.IDs)
	inFilter(filter, "orderNumber", opt.OrderNumbers)
	inFilter(filter, "customer", opt.CustomerIDs)
	inFilter(filter, "supplier", opt.SupplierIDs)
	inFilter(filter, "status", opt.Statuses)
	inFilter(filter, "serviceType", opt.ServiceTypes)
	notDeleted(filter, opt.IncludeDeleted)

	result, err := findPage[domain.Order](ctx, r.db.Collection(orderCollection), filter, opt.Pagination)
	if err != nil {
		return err
	}
	opt.Result = result
	return nil
}

func scopeFilter(scope domain.OrderScope) bson.M {
	filter := notDeleted(bson.M{}, false)
	if scope.All {
		return filter
	}
	if !scope.CustomerID.IsZero() {
		filter["customer"] = scope.CustomerID
	}
	if !scope.SupplierID.IsZero() {
		filter["supplier"] = scope.SupplierID
	}
	return filter
}

type statusCount struct {
	Status domain.OrderStatus `bson:"_id"`
	Count  int64              `bson:"count"`
}

func (r *repo) CountOrdersByStatus(ctx context.Context, scope domain.OrderScope) (map[domain.OrderStatus]int64, error) {
	counts := map[domain.OrderStatus]int64{}
	if scope.Empty() {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: scopeFilter(scope)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.db.Collection(orderCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders by status, err: %w", err)
	}
	var rows []statusCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode order status counts, err: %w", err)
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
