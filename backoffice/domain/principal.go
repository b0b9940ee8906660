package domain

import (
	"encoding/json"
	"slices"

	"github.com/pkg/errors"
)

// Membership pairs an entity type with a role of that entity's family. The zero value
// is not a valid membership; use NewMembership or MembershipForRole.
type Membership struct {
	entity EntityType
	role   Role
}

// NewMembership rejects roles that do not belong to entity.
func NewMembership(entity EntityType, role Role) (Membership, error) {
	if !entity.Valid() {
		return Membership{}, errors.Wrapf(ErrUnknownEntity, "entity %q", entity)
	}
	owner, ok := role.Entity()
	if !ok {
		return Membership{}, errors.Wrapf(ErrUnknownRole, "role %q", role)
	}
	if owner != entity {
		return Membership{}, errors.Wrapf(ErrRoleEntityMismatch, "role %s belongs to %s, not %s", role, owner, entity)
	}
	return Membership{entity: entity, role: role}, nil
}

// MembershipForRole infers the entity from the role.
func MembershipForRole(role Role) (Membership, error) {
	owner, ok := role.Entity()
	if !ok {
		return Membership{}, errors.Wrapf(ErrUnknownRole, "role %q", role)
	}
	return Membership{entity: owner, role: role}, nil
}

func (m Membership) Entity() EntityType { return m.entity }
func (m Membership) Role() Role         { return m.role }
func (m Membership) Valid() bool        { return m.entity != "" && m.role != "" }

// Principal is the authenticated caller. It is immutable once built and its
// permissions are always derived from the membership role.
type Principal struct {
	userID      string
	name        string
	email       string
	membership  Membership
	entityID    string
	permissions PermissionSet
}

type PrincipalOptions struct {
	UserID   string
	Name     string
	Email    string
	EntityID string
}

func NewPrincipal(m Membership, opts PrincipalOptions) (*Principal, error) {
	if !m.Valid() {
		return nil, errors.WithStack(ErrInvalidMembership)
	}
	return &Principal{
		userID:      opts.UserID,
		name:        opts.Name,
		email:       opts.Email,
		membership:  m,
		entityID:    opts.EntityID,
		permissions: DerivePermissions(m.role),
	}, nil
}

func (p *Principal) UserID() string {
	if p == nil {
		return ""
	}
	return p.userID
}

func (p *Principal) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

func (p *Principal) Email() string {
	if p == nil {
		return ""
	}
	return p.email
}

func (p *Principal) Role() Role {
	if p == nil {
		return ""
	}
	return p.membership.role
}

func (p *Principal) Entity() EntityType {
	if p == nil {
		return ""
	}
	return p.membership.entity
}

// EntityID references the Customer or Supplier record of a CLIENT or SUPPLIER principal.
func (p *Principal) EntityID() string {
	if p == nil {
		return ""
	}
	return p.entityID
}

// Permissions returns a copy of the derived permission list.
func (p *Principal) Permissions() []Permission {
	if p == nil {
		return []Permission{}
	}
	return p.permissions.List()
}

func (p *Principal) HasPermission(perm Permission) bool {
	if p == nil {
		return false
	}
	return p.permissions.Has(perm)
}

func (p *Principal) IsRole(role Role) bool {
	if p == nil {
		return false
	}
	return p.membership.role == role
}

func (p *Principal) IsEntity(entity EntityType) bool {
	if p == nil {
		return false
	}
	return p.membership.entity == entity
}

// OwnsCustomer reports whether p is a CLIENT principal bound to customerID.
func (p *Principal) OwnsCustomer(customerID string) bool {
	return p.IsEntity(EntityClient) && p.entityID != "" && p.entityID == customerID
}

// OwnsSupplier reports whether p is a SUPPLIER principal bound to supplierID.
func (p *Principal) OwnsSupplier(supplierID string) bool {
	return p.IsEntity(EntitySupplier) && p.entityID != "" && p.entityID == supplierID
}

type principalJSON struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        string       `json:"role"`
	Entity      string       `json:"entity,omitempty"`
	EntityID    string       `json:"entityId,omitempty"`
	Permissions []Permission `json:"permissions"`
}

func (p *Principal) MarshalJSON() ([]byte, error) {
	return json.Marshal(principalJSON{
		ID:          p.userID,
		Name:        p.name,
		Email:       p.email,
		Role:        string(p.membership.role),
		Entity:      string(p.membership.entity),
		EntityID:    p.entityID,
		Permissions: p.Permissions(),
	})
}

// UnmarshalJSON restores a principal and re-derives its permissions from the role.
// Any permission list present in the payload is ignored.
func (p *Principal) UnmarshalJSON(data []byte) error {
	var raw principalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	role, err := ParseRole(raw.Role)
	if err != nil {
		return err
	}
	var m Membership
	if raw.Entity == "" {
		m, err = MembershipForRole(role)
	} else {
		m, err = NewMembership(EntityType(raw.Entity), role)
	}
	if err != nil {
		return err
	}
	restored, err := NewPrincipal(m, PrincipalOptions{
		UserID:   raw.ID,
		Name:     raw.Name,
		Email:    raw.Email,
		EntityID: raw.EntityID,
	})
	if err != nil {
		return err
	}
	*p = *restored
	return nil
}

// Requirement is a declarative guard. Within a dimension any match passes; every
// non-empty dimension must pass.
type Requirement struct {
	Permissions []Permission `json:"permissions,omitempty"`
	Roles       []Role       `json:"roles,omitempty"`
	Entities    []EntityType `json:"entities,omitempty"`
}

func RequirePermissions(perms ...Permission) Requirement {
	return Requirement{Permissions: perms}
}

func RequireRoles(roles ...Role) Requirement {
	return Requirement{Roles: roles}
}

func RequireEntities(entities ...EntityType) Requirement {
	return Requirement{Entities: entities}
}

// Authenticated is the empty requirement: any principal passes.
var Authenticated = Requirement{}

func (r Requirement) IsEmpty() bool {
	return len(r.Permissions) == 0 && len(r.Roles) == 0 && len(r.Entities) == 0
}

// Authorize decides whether p satisfies req. A nil principal is always denied.
func Authorize(p *Principal, req Requirement) bool {
	if p == nil {
		return false
	}
	if len(req.Permissions) > 0 && !p.permissions.HasAny(req.Permissions...) {
		return false
	}
	if len(req.Roles) > 0 && !slices.Contains(req.Roles, p.membership.role) {
		return false
	}
	if len(req.Entities) > 0 && !slices.Contains(req.Entities, p.membership.entity) {
		return false
	}
	return true
}
