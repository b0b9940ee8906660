package domain

import (
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ServiceType string

const (
	ServiceAirFreight      ServiceType = "air_freight"
	ServiceSeaFreight      ServiceType = "sea_freight"
	ServiceLandTransport   ServiceType = "land_transport"
	ServiceExpressDelivery ServiceType = "express_delivery"
	ServiceWarehousing     ServiceType = "warehousing"
)

var ServiceTypes = []ServiceType{ServiceAirFreight, ServiceSeaFreight, ServiceLandTransport, ServiceExpressDelivery, ServiceWarehousing}

func (s ServiceType) Valid() bool { return slices.Contains(ServiceTypes, s) }

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusOnHold    OrderStatus = "on_hold"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending, OrderStatusConfirmed, OrderStatusInTransit,
	OrderStatusDelivered, OrderStatusCancelled, OrderStatusOnHold,
}

func (s OrderStatus) Valid() bool { return slices.Contains(OrderStatuses, s) }

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type ClearanceStatus string

const (
	ClearancePending  ClearanceStatus = "pending"
	ClearanceCleared  ClearanceStatus = "cleared"
	ClearanceHeld     ClearanceStatus = "held"
	ClearanceRejected ClearanceStatus = "rejected"
)

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Location struct {
	Address       string         `bson:"address,omitempty" json:"address" validate:"required"`
	City          string         `bson:"city,omitempty" json:"city"`
	Country       string         `bson:"country,omitempty" json:"country"`
	Coordinates   *Coordinates   `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	ContactPerson *ContactPerson `bson:"contactPerson,omitempty" json:"contactPerson,omitempty"`
}

type Dimensions struct {
	Length float64 `bson:"length" json:"length"`
	Width  float64 `bson:"width" json:"width"`
	Height float64 `bson:"height" json:"height"`
}

type Cargo struct {
	Description         string      `bson:"description,omitempty" json:"description" validate:"required"`
	Weight              float64     `bson:"weight" json:"weight" validate:"gte=0"`
	Dimensions          *Dimensions `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Value               Money       `bson:"value" json:"value"`
	Quantity            int64       `bson:"quantity,omitempty" json:"quantity,omitempty"`
	PackageType         string      `bson:"packageType,omitempty" json:"packageType,omitempty"`
	SpecialInstructions string      `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	Hazardous           bool        `bson:"hazardous" json:"hazardous"`
}

type Charge struct {
	Description string `bson:"description,omitempty" json:"description"`
	Amount      Money  `bson:"amount" json:"amount"`
}

type Pricing struct {
	BasePrice         Money    `bson:"basePrice" json:"basePrice"`
	AdditionalCharges []Charge `bson:"additionalCharges,omitempty" json:"additionalCharges,omitempty"`
	Discount          Money    `bson:"discount" json:"discount"`
	Tax               Money    `bson:"tax" json:"tax"`
	TotalAmount       Money    `bson:"totalAmount" json:"totalAmount"`
}

// Recalculate sets TotalAmount = base + additional charges - discount + tax.
func (p *Pricing) Recalculate() {
	total := p.BasePrice.Decimal
	for _, c := range p.AdditionalCharges {
		total = total.Add(c.Amount.Decimal)
	}
	total = total.Sub(p.Discount.Decimal).Add(p.Tax.Decimal)
	p.TotalAmount = NewMoney(total)
}

type Timeline struct {
	EstimatedPickup   int64 `bson:"estimatedPickup,omitempty" json:"estimatedPickup,omitempty"`
	ActualPickup      int64 `bson:"actualPickup,omitempty" json:"actualPickup,omitempty"`
	EstimatedDelivery int64 `bson:"estimatedDelivery,omitempty" json:"estimatedDelivery,omitempty"`
	ActualDelivery    int64 `bson:"actualDelivery,omitempty" json:"actualDelivery,omitempty"`
}

type DocumentType string

const (
	DocumentInvoice            DocumentType = "invoice"
	DocumentPackingList        DocumentType = "packing_list"
	DocumentCustomsDeclaration DocumentType = "customs_declaration"
	DocumentInsurance          DocumentType = "insurance"
	DocumentOther              DocumentType = "other"
)

type OrderDocument struct {
	Name       string        `bson:"name,omitempty"`
	Type       DocumentType  `bson:"type,omitempty"`
	URL        string        `bson:"url,omitempty"`
	Language   string        `bson:"language,omitempty"`
	Translated bool          `bson:"translated,omitempty"`
	UploadedAt int64         `bson:"uploadedAt,omitempty"`
	UploadedBy bson.ObjectID `bson:"uploadedBy,omitempty"`
}

type CustomsInfo struct {
	DeclarationNumber string          `bson:"declarationNumber,omitempty" json:"declarationNumber,omitempty"`
	HSCode            string          `bson:"hsCode,omitempty" json:"hsCode,omitempty"`
	DutyAmount        Money           `bson:"dutyAmount" json:"dutyAmount"`
	ClearanceStatus   ClearanceStatus `bson:"clearanceStatus,omitempty" json:"clearanceStatus"`
}

type TrackingUpdate struct {
	Status    OrderStatus   `bson:"status,omitempty"`
	Location  string        `bson:"location,omitempty"`
	Notes     string        `bson:"notes,omitempty"`
	Timestamp int64         `bson:"timestamp,omitempty"`
	UpdatedBy bson.ObjectID `bson:"updatedBy,omitempty"`
}

type Tracking struct {
	TrackingNumber  string           `bson:"trackingNumber,omitempty"`
	CurrentLocation string           `bson:"currentLocation,omitempty"`
	Updates         []TrackingUpdate `bson:"updates,omitempty"`
}

type Order struct {
	BaseEntity    `bson:",inline"`
	OrderNumber   string          `bson:"orderNumber,omitempty"`
	CustomerID    bson.ObjectID   `bson:"customer,omitempty"`
	SupplierID    bson.ObjectID   `bson:"supplier,omitempty"`
	ServiceType   ServiceType     `bson:"serviceType,omitempty"`
	Status        OrderStatus     `bson:"status,omitempty"`
	Priority      Priority        `bson:"priority,omitempty"`
	Origin        Location        `bson:"origin"`
	Destination   Location        `bson:"destination"`
	Cargo         Cargo           `bson:"cargo"`
	Pricing       Pricing         `bson:"pricing"`
	Timeline      Timeline        `bson:"timeline,omitempty"`
	Documents     []OrderDocument `bson:"documents,omitempty"`
	CustomsInfo   CustomsInfo     `bson:"customsInfo"`
	AssignedTo    bson.ObjectID   `bson:"assignedTo,omitempty"`
	VehicleID     bson.ObjectID   `bson:"vehicle,omitempty"`
	Tracking      Tracking        `bson:"tracking,omitempty"`
	Notes         string          `bson:"notes,omitempty"`
	InternalNotes string          `bson:"internalNotes,omitempty"`
}

func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.Priority == "" {
		o.Priority = PriorityMedium
	}
	if o.Cargo.Quantity == 0 {
		o.Cargo.Quantity = 1
	}
	if o.Cargo.PackageType == "" {
		o.Cargo.PackageType = "box"
	}
	if o.CustomsInfo.ClearanceStatus == "" {
		o.CustomsInfo.ClearanceStatus = ClearancePending
	}
	o.Pricing.Recalculate()
}

// FormatOrderNumber renders the ORD-<year>-<seq> order number.
func FormatOrderNumber(year int, seq int64) string {
	return fmt.Sprintf("ORD-%d-%06d", year, seq)
}

// AddTrackingUpdate appends a tracking entry at the current location.
func (o *Order) AddTrackingUpdate(status OrderStatus, location, notes string, by bson.ObjectID) {
	if location == "" {
		location = o.Tracking.CurrentLocation
	}
	if location == "" {
		location = "Unknown"
	}
	o.Tracking.Updates = append(o.Tracking.Updates, TrackingUpdate{
		Status:    status,
		Location:  location,
		Notes:     notes,
		Timestamp: time.Now().UnixMilli(),
		UpdatedBy: by,
	})
}

// Decidable reports whether the order is pending or on hold with its customs decision still open.
func (o *Order) Decidable() bool {
	if o.Status != OrderStatusPending && o.Status != OrderStatusOnHold {
		return false
	}
	return o.CustomsInfo.ClearanceStatus == ClearancePending || o.CustomsInfo.ClearanceStatus == ClearanceHeld
}

// TrackingStatus reports whether s may be set through a tracking update.
// Other transitions go through the status, approve and reject operations.
func TrackingStatus(s OrderStatus) bool {
	return s == OrderStatusInTransit || s == OrderStatusDelivered
}

// IsOwnedBy reports whether the order belongs to the customer or supplier p is bound to.
func (o *Order) IsOwnedBy(p *Principal) bool {
	if o == nil {
		return false
	}
	switch p.Entity() {
	case EntityClient:
		return p.OwnsCustomer(o.CustomerID.Hex())
	case EntitySupplier:
		return !o.SupplierID.IsZero() && p.OwnsSupplier(o.SupplierID.Hex())
	}
	return false
}

func CanViewOrder(p *Principal, o *Order) bool {
	if p.HasPermission(ViewAllOrders) {
		return true
	}
	return p.HasPermission(ViewOwnOrders) && o.IsOwnedBy(p)
}

func CanEditOrder(p *Principal, o *Order) bool {
	if p.HasPermission(EditOrder) {
		return true
	}
	return p.HasPermission(EditOwnOrders) && o.IsOwnedBy(p)
}

// CanDecideOrder checks an approve or reject permission. PRO principals decide any
// order; partner principals only their own.
func CanDecideOrder(p *Principal, o *Order, perm Permission) bool {
	if !p.HasPermission(perm) {
		return false
	}
	if p.IsEntity(EntityPro) {
		return true
	}
	return o.IsOwnedBy(p)
}

// OrderScope restricts an order listing to what a principal may see.
type OrderScope struct {
	All        bool
	CustomerID bson.ObjectID
	SupplierID bson.ObjectID
}

// Empty reports a scope that matches no order.
func (s OrderScope) Empty() bool {
	return !s.All && s.CustomerID.IsZero() && s.SupplierID.IsZero()
}

// OrderScopeFor derives the listing scope of p. A partner principal without a valid
// entityId gets an empty scope.
func OrderScopeFor(p *Principal) OrderScope {
	if p.HasPermission(ViewAllOrders) {
		return OrderScope{All: true}
	}
	if !p.HasPermission(ViewOwnOrders) {
		return OrderScope{}
	}
	id, err := bson.ObjectIDFromHex(p.EntityID())
	if err != nil {
		return OrderScope{}
	}
	switch p.Entity() {
	case EntityClient:
		return OrderScope{CustomerID: id}
	case EntitySupplier:
		return OrderScope{SupplierID: id}
	}
	return OrderScope{}
}
