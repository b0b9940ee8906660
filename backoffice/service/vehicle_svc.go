package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/pkg/util"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func validateVehicle(vehicle *domain.Vehicle) error {
	vehicle.PlateNumber = strings.ToUpper(strings.TrimSpace(vehicle.PlateNumber))
	if vehicle.PlateNumber == "" {
		return errs.BadRequest("plate number is required", errors.New("empty plate number"))
	}
	if !vehicle.Type.Valid() {
		return errs.BadRequest("invalid vehicle type", fmt.Errorf("vehicle type %q", vehicle.Type))
	}
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleAvailable
	}
	if !vehicle.Status.Valid() {
		return errs.BadRequest("invalid vehicle status", errors.Wrapf(domain.ErrInvalidStatus, "status %s", vehicle.Status))
	}
	return nil
}

func (svc *Service) CreateVehicle(ctx context.Context, operator *domain.Principal, vehicle *domain.Vehicle) error {
	if err := svc.authorize(operator, domain.ActionVehicleCreate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return errs.BadRequest("vehicle is required", errors.New("nil vehicle"))
	}
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	vehicle.BaseEntity = domain.NewBaseEntity(util.Ptr(operatorID), util.Ptr(operatorID))
	vehicle.IsActive = true
	if err := svc.Repo.CreateVehicle(ctx, vehicle); err != nil {
		return repoError(err, "vehicle")
	}
	svc.audit(ctx, operator, domain.ActionVehicleCreate, vehicle.ID.Hex())
	return nil
}

func (svc *Service) UpdateVehicle(ctx context.Context, operator *domain.Principal, vehicle *domain.Vehicle) error {
	if err := svc.authorize(operator, domain.ActionVehicleUpdate); err != nil {
		return err
	}
	operatorID, err := operatorObjectID(operator)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return errs.BadRequest("vehicle is required", errors.New("nil vehicle"))
	}
	existing, err := svc.loadVehicle(ctx, vehicle.ID.Hex())
	if err != nil {
		return err
	}
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	vehicle.BaseEntity = existing.BaseEntity
	vehicle.Touch(operatorID)
	if err := svc.Repo.UpdateVehicle(ctx, vehicle); err != nil {
		return repoError(err, "vehicle")
	}
	svc.audit(ctx, operator, domain.ActionVehicleUpdate, vehicle.ID.Hex())
	return nil
}

func (svc *Service) GetVehicle(ctx context.Context, operator *domain.Principal, id string) (*domain.Vehicle, error) {
	if err := svc.authorize(operator, domain.ActionVehicleList); err != nil {
		return nil, err
	}
	return svc.loadVehicle(ctx, id)
}

func (svc *Service) QueryVehicles(ctx context.Context, operator *domain.Principal, opt *domain.QueryVehicleOptions) error {
	if err := svc.authorize(operator, domain.ActionVehicleList); err != nil {
		return err
	}
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	return svc.Repo.QueryVehicles(ctx, opt)
}

func (svc *Service) loadVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	oid, err := parseObjectID(id, "vehicle")
	if err != nil {
		return nil, err
	}
	opts := &domain.QueryVehicleOptions{IDs: []bson.ObjectID{oid}}
	if err := svc.Repo.QueryVehicles(ctx, opts); err != nil {
		return nil, err
	}
	if len(opts.Result) == 0 {
		return nil, notFound("vehicle", id)
	}
	return opts.Result[0], nil
}
