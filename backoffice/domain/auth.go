package domain

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Claims represents JWT token claims. Permissions are never carried in the token.
type Claims struct {
	UID    string     `json:"uid"`
	Role   Role       `json:"role"`
	Entity EntityType `json:"entity"`
	jwt.RegisteredClaims
}

func (c Claims) GetBsonObjectUID() (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(c.UID)
}

// Session is the persisted {user, token} blob handed to clients after login.
type Session struct {
	User      *Principal `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expiresAt,omitempty"`
}

// RestoreSession decodes a persisted session. The principal permissions are
// re-derived from its role while decoding.
func RestoreSession(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "restore session")
	}
	if s.User == nil {
		return nil, errors.New("restore session: user is missing")
	}
	return &s, nil
}
