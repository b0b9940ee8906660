package domain

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// User is the stored identity. Only the entity and role are persisted; permissions
// are derived when a Principal is built.
type User struct {
	BaseEntity `bson:",inline"`
	Name       string            `bson:"name,omitempty"`
	Email      string            `bson:"email,omitempty"`
	Password   EncryptedPassword `bson:"password,omitempty"`
	Phone      string            `bson:"phone,omitempty"`
	Entity     EntityType        `bson:"entity,omitempty"`
	Role       Role              `bson:"role,omitempty"`
	EntityID   bson.ObjectID     `bson:"entityId,omitempty"`
	Status     UserStatus        `bson:"status,omitempty"`
	LastLogin  int64             `bson:"lastLogin,omitempty"`
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive && u.DeletedTime == 0
}

// Membership validates the stored entity/role pair.
func (u *User) Membership() (Membership, error) {
	role, err := ParseRole(string(u.Role))
	if err != nil {
		return Membership{}, err
	}
	return NewMembership(u.Entity, role)
}

// ValidateEntityBinding checks that entityId is set exactly for CLIENT and SUPPLIER users.
func (u *User) ValidateEntityBinding() error {
	switch u.Entity {
	case EntityClient, EntitySupplier:
		if u.EntityID.IsZero() {
			return ErrMissingEntityID
		}
	default:
		if !u.EntityID.IsZero() {
			return ErrUnexpectedEntityID
		}
	}
	return nil
}

// Principal builds the authenticated view of the user.
func (u *User) Principal() (*Principal, error) {
	m, err := u.Membership()
	if err != nil {
		return nil, err
	}
	opts := PrincipalOptions{
		UserID: u.ID.Hex(),
		Name:   u.Name,
		Email:  u.Email,
	}
	if !u.EntityID.IsZero() {
		opts.EntityID = u.EntityID.Hex()
	}
	return NewPrincipal(m, opts)
}
