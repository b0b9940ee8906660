package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/procargo/backoffice/backoffice/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (r *repo) CreateAuditLog(ctx context.Context, log *domain.AuditLog) error {
	if log == nil {
		return errors.New("nil audit log")
	}
	if log.ID.IsZero() {
		log.ID = bson.NewObjectID()
	}
	if log.Timestamp == 0 {
		log.Timestamp = time.Now().UnixMilli()
	}

	res, err := r.db.Collection(auditLogCollection).InsertOne(ctx, log)
	if err != nil {
		return fmt.Errorf("create audit log, err: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		log.ID = oid
	}
	return nil
}

func (r *repo) QueryAuditLogs(ctx context.Context, opt *domain.QueryAuditLogOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	inFilter(filter, "user_id", opt.UserIDs)
	inFilter(filter, "action", opt.Actions)
	if opt.TimestampGTE > 0 || opt.TimestampLTE > 0 {
		timeFilter := bson.M{}
		if opt.TimestampGTE > 0 {
			timeFilter["$gte"] = opt.TimestampGTE
		}
		if opt.TimestampLTE > 0 {
			timeFilter["$lte"] = opt.TimestampLTE
		}
		filter[defaultTimestampField] = timeFilter
	}

	coll := r.db.Collection(auditLogCollection)
	findOpts := options.Find().SetSort(bson.D{{Key: defaultTimestampField, Value: -1}})
	if opt.Pagination != nil {
		opt.Pagination.Normalize()
		total, err := coll.CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("count audit logs, err: %w", err)
		}
		opt.Pagination.Total = total
		findOpts.SetSkip(opt.Pagination.Skip()).SetLimit(opt.Pagination.Limit)
	}

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return fmt.Errorf("find audit logs, err: %w", err)
	}

	result := []*domain.AuditLog{}
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode audit logs, err: %w", err)
	}
	opt.Result = result
	return nil
}
