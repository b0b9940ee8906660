package domain

import (
	"fmt"
	"time"

	"github.com/procargo/backoffice/pkg/util"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"
)

type EncryptedPassword string

func (value EncryptedPassword) MarshalBSONValue() (typ byte, data []byte, err error) {
	valStr := string(value)
	if util.IsArgon2Hash(valStr) {
		return byte(bson.TypeString), bsoncore.AppendString(nil, valStr), nil
	}
	pwdHash, err := util.CreateArgon2Hash(valStr)
	return byte(bson.TypeString), bsoncore.AppendString(nil, pwdHash), err
}

func (value *EncryptedPassword) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ != byte(bson.TypeString) {
		return fmt.Errorf("invalid type %v for EncryptedPassword", bson.Type(typ))
	}

	str, _, ok := bsoncore.ReadString(data)
	if !ok {
		return fmt.Errorf("failed to read bson string")
	}

	*value = EncryptedPassword(str)
	return nil
}

func (value EncryptedPassword) String() string {
	return "*******"
}

func (value EncryptedPassword) Cmp(plainText string) (bool, error) {
	return util.ComparePasswordAndHash(plainText, string(value))
}

// Money is a decimal amount persisted as a BSON string so no precision is lost.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func MoneyFromFloat(f float64) Money {
	return Money{Decimal: decimal.NewFromFloat(f)}
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

func (m Money) Plus(o Money) Money  { return Money{Decimal: m.Decimal.Add(o.Decimal)} }
func (m Money) Minus(o Money) Money { return Money{Decimal: m.Decimal.Sub(o.Decimal)} }

func (m Money) MarshalBSONValue() (typ byte, data []byte, err error) {
	return byte(bson.TypeString), bsoncore.AppendString(nil, m.Decimal.String()), nil
}

func (m *Money) UnmarshalBSONValue(typ byte, data []byte) error {
	switch bson.Type(typ) {
	case bson.TypeString:
		str, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("failed to read bson string")
		}
		d, err := decimal.NewFromString(str)
		if err != nil {
			return err
		}
		m.Decimal = d
	case bson.TypeDouble:
		f, _, ok := bsoncore.ReadDouble(data)
		if !ok {
			return fmt.Errorf("failed to read bson double")
		}
		m.Decimal = decimal.NewFromFloat(f)
	case bson.TypeInt32:
		i, _, ok := bsoncore.ReadInt32(data)
		if !ok {
			return fmt.Errorf("failed to read bson int32")
		}
		m.Decimal = decimal.NewFromInt32(i)
	case bson.TypeInt64:
		i, _, ok := bsoncore.ReadInt64(data)
		if !ok {
			return fmt.Errorf("failed to read bson int64")
		}
		m.Decimal = decimal.NewFromInt(i)
	case bson.TypeNull:
		m.Decimal = decimal.Zero
	default:
		return fmt.Errorf("invalid type %v for Money", bson.Type(typ))
	}
	return nil
}

type BaseEntity struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	CreatedTime int64         `bson:"createdTime,omitempty"`
	UpdatedTime int64         `bson:"updatedTime,omitempty"`
	DeletedTime int64         `bson:"deletedTime,omitempty"`
	CreatorID   bson.ObjectID `bson:"creatorID,omitempty"`
	UpdaterID   bson.ObjectID `bson:"updaterID,omitempty"`
}

func NewBaseEntity(creatorID, updaterID *bson.ObjectID) BaseEntity {
	nowInmsec := time.Now().UnixMilli()
	entity := BaseEntity{
		CreatedTime: nowInmsec,
		UpdatedTime: nowInmsec,
		DeletedTime: 0,
	}
	if creatorID != nil {
		entity.CreatorID = *creatorID
	}
	if updaterID != nil {
		entity.UpdaterID = *updaterID
	}
	return entity
}

// Touch records an update by updaterID.
func (e *BaseEntity) Touch(updaterID bson.ObjectID) {
	e.UpdaterID = updaterID
	e.UpdatedTime = time.Now().UnixMilli()
}

func (e BaseEntity) IsDeleted() bool {
	return e.DeletedTime != 0
}

// Pagination mirrors the page/limit query parameters of list endpoints.
type Pagination struct {
	Page  int64
	Limit int64
	// Total is filled by the repository.
	Total int64
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	MaxPage          = 1_000_000
)

// Normalize clamps page and limit to usable values.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
}

func (p Pagination) Skip() int64 {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	page := min(p.Page, MaxPage)
	return (page - 1) * min(p.Limit, MaxPageLimit)
}

func (p Pagination) Pages() int64 {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
