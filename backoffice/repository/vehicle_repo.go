package repository

import (
	"context"
	"errors"

	"github.com/procargo/backoffice/backoffice/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (r *repo) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle == nil {
		return errors.New("nil vehicle")
	}
	return insertOne(ctx, r.db.Collection(vehicleCollection), &vehicle.BaseEntity, vehicle)
}

func (r *repo) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle == nil {
		return errors.New("nil vehicle")
	}
	return replaceOne(ctx, r.db.Collection(vehicleCollection), &vehicle.BaseEntity, vehicle)
}

func (r *repo) QueryVehicles(ctx context.Context, opt *domain.QueryVehicleOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}

	filter := bson.M{}
	inFilter(filter, "_id", opt.IDs)
	inFilter(filter, "plateNumber", opt.PlateNumbers)
	inFilter(filter, "type", opt.Types)
	inFilter(filter, "status", opt.Statuses)
	if opt.ActiveOnly {
		filter["isActive"] = true
	}
	notDeleted(filter, opt.IncludeDeleted)

	result, err := findPage[domain.Vehicle](ctx, r.db.Collection(vehicleCollection), filter, nil)
	if err != nil {
		return err
	}
	opt.Result = result
	return nil
}
