package repository

import (
	"context"
	"errors"

	"github.com/procargo/backoffice/backoffice/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (r *repo) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return insertOne(ctx, r.db.Collection(userCollection), &user.BaseEntity, user)
}

func (r *repo) UpdateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return replaceOne(ctx, r.db.Collection(userCollection), &user.BaseEntity, user)
}

func (r *repo) QueryUsers(ctx context.Context, opt *domain.QueryUserOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	inFilter(filter, "_id", opt.IDs)
	inFilter(filter, "email", opt.Emails)
	inFilter(filter, "role", opt.Roles)
	inFilter(filter, "entity", opt.Entities)
	inFilter(filter, "entityId", opt.EntityIDs)
	inFilter(filter, "status", opt.Statuses)
	notDeleted(filter, opt.IncludeDeleted)

	result, err := findPage[domain.User](ctx, r.db.Collection(userCollection), filter, opt.Pagination)
	if err != nil {
		return err
	}
	opt.Result = result
	return nil
}
