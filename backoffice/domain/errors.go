package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("duplicate key")
	ErrNilQueryInput = errors.New("query options is nil")

	ErrUnknownRole        = errors.New("unknown role")
	ErrLegacyRole         = errors.New("legacy role name is not accepted, use the canonical uppercase role")
	ErrUnknownEntity      = errors.New("unknown entity type")
	ErrRoleEntityMismatch = errors.New("role does not belong to entity")
	ErrInvalidMembership  = errors.New("invalid membership")
	ErrMissingEntityID    = errors.New("entityId is required for client and supplier users")
	ErrUnexpectedEntityID = errors.New("entityId is only allowed for client and supplier users")

	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvoiceNotPayable = errors.New("invoice does not accept payments")
	ErrOverpayment       = errors.New("payment exceeds outstanding amount")
)
