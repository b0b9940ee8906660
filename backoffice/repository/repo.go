package repository

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"time"

	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/config"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const (
	userCollection     = "users"
	customerCollection = "customers"
	supplierCollection = "suppliers"
	orderCollection    = "orders"
	vehicleCollection  = "vehicles"
	invoiceCollection  = "invoices"
	counterCollection  = "counters"
	auditLogCollection = "audit_logs"

	defaultTimestampField = "timestamp"
	createdTimeField      = "createdTime"
	deletedTimeField      = "deletedTime"
)

type Params struct {
	fx.In
	MongoConfig config.MongoDBConfig
	Lifecycle   fx.Lifecycle `optional:"true"`
}

func NewRepository(params Params) (domain.Repository, error) {
	cfg := params.MongoConfig
	clientOpts := options.Client().ApplyURI(cfg.URI())
	if cfg.CAPem != "" {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM([]byte(cfg.CAPem)) {
			return nil, errors.New("parse mongodb ca pem")
		}
		clientOpts.SetTLSConfig(&tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12})
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb, err: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb, err: %w", err)
	}

	r := &repo{
		client: client,
		db:     client.Database(cfg.Database),
	}
	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{OnStop: r.Close})
	}
	return r, nil
}

type repo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Close disconnects the underlying client.
func (r *repo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// notDeleted matches documents whose deletedTime was never set.
func notDeleted(filter bson.M, includeDeleted bool) bson.M {
	if !includeDeleted {
		filter[deletedTimeField] = bson.M{"$in": bson.A{nil, 0}}
	}
	return filter
}

func inFilter[T any](filter bson.M, field string, values []T) {
	if len(values) > 0 {
		filter[field] = bson.M{"$in": values}
	}
}

// findPage runs filter against coll, newest first. A non-nil page limits the result and
// receives the total count.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, page *domain.Pagination) ([]*T, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: createdTimeField, Value: -1}})
	if page != nil {
		page.Normalize()
		total, err := coll.CountDocuments(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("count %s, err: %w", coll.Name(), err)
		}
		page.Total = total
		findOpts.SetSkip(page.Skip()).SetLimit(page.Limit)
	}

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find %s, err: %w", coll.Name(), err)
	}
	result := []*T{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode %s, err: %w", coll.Name(), err)
	}
	return result, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, base *domain.BaseEntity, doc any) error {
	now := time.Now().UnixMilli()
	if base.ID.IsZero() {
		base.ID = bson.NewObjectID()
	}
	if base.CreatedTime == 0 {
		base.CreatedTime = now
	}
	base.UpdatedTime = now

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create %s, err: %w", coll.Name(), domain.ErrDuplicate)
		}
		return fmt.Errorf("create %s, err: %w", coll.Name(), err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		base.ID = oid
	}
	return nil
}

func replaceOne(ctx context.Context, coll *mongo.Collection, base *domain.BaseEntity, doc any) error {
	if base.ID.IsZero() {
		return fmt.Errorf("%s id is required", coll.Name())
	}
	if base.UpdatedTime == 0 {
		base.UpdatedTime = time.Now().UnixMilli()
	}
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": base.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("update %s, err: %w", coll.Name(), domain.ErrDuplicate)
		}
		return fmt.Errorf("update %s, err: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
