package domain

import "slices"

type VehicleType string

const (
	VehicleTruck      VehicleType = "truck"
	VehicleVan        VehicleType = "van"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleShip       VehicleType = "ship"
	VehiclePlane      VehicleType = "plane"
)

var VehicleTypes = []VehicleType{VehicleTruck, VehicleVan, VehicleMotorcycle, VehicleShip, VehiclePlane}

func (t VehicleType) Valid() bool { return slices.Contains(VehicleTypes, t) }

type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "available"
	VehicleInTransit    VehicleStatus = "in_transit"
	VehicleMaintenance  VehicleStatus = "maintenance"
	VehicleOutOfService VehicleStatus = "out_of_service"
)

var VehicleStatuses = []VehicleStatus{VehicleAvailable, VehicleInTransit, VehicleMaintenance, VehicleOutOfService}

func (s VehicleStatus) Valid() bool { return slices.Contains(VehicleStatuses, s) }

type VehicleModel struct {
	Brand string `bson:"brand,omitempty" json:"brand,omitempty"`
	Model string `bson:"model,omitempty" json:"model,omitempty"`
	Year  int    `bson:"year,omitempty" json:"year,omitempty"`
}

type Capacity struct {
	Weight float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Volume float64 `bson:"volume,omitempty" json:"volume,omitempty"`
}

type Driver struct {
	Name          string `bson:"name,omitempty" json:"name" validate:"required"`
	Phone         string `bson:"phone,omitempty" json:"phone" validate:"required"`
	LicenseNumber string `bson:"licenseNumber,omitempty" json:"licenseNumber,omitempty"`
	LicenseExpiry int64  `bson:"licenseExpiry,omitempty" json:"licenseExpiry,omitempty"`
}

type Vehicle struct {
	BaseEntity      `bson:",inline"`
	PlateNumber     string        `bson:"plateNumber,omitempty"`
	Type            VehicleType   `bson:"type,omitempty"`
	Model           VehicleModel  `bson:"model,omitempty"`
	Capacity        Capacity      `bson:"capacity,omitempty"`
	Driver          Driver        `bson:"driver"`
	Status          VehicleStatus `bson:"status,omitempty"`
	CurrentLocation string        `bson:"currentLocation,omitempty"`
	IsActive        bool          `bson:"isActive"`
}
