package domain

type PartyType string

const (
	PartyTypeIndividual PartyType = "individual"
	PartyTypeBusiness   PartyType = "business"
)

type PartyStatus string

const (
	PartyStatusActive    PartyStatus = "active"
	PartyStatusInactive  PartyStatus = "inactive"
	PartyStatusSuspended PartyStatus = "suspended"
)

type PaymentTerms string

const (
	PaymentTermsCash  PaymentTerms = "cash"
	PaymentTermsNet15 PaymentTerms = "net15"
	PaymentTermsNet30 PaymentTerms = "net30"
	PaymentTermsNet60 PaymentTerms = "net60"
)

const DefaultCountry = "Saudi Arabia"

type Address struct {
	Street     string `bson:"street,omitempty" json:"street"`
	City       string `bson:"city,omitempty" json:"city"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

type Company struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	TaxID    string `bson:"taxId,omitempty" json:"taxId,omitempty"`
	Industry string `bson:"industry,omitempty" json:"industry,omitempty"`
}

type ContactPerson struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Position string `bson:"position,omitempty" json:"position,omitempty"`
}

// Customer is a client company or individual. CLIENT users reference it through entityId.
type Customer struct {
	BaseEntity     `bson:",inline"`
	Name           string        `bson:"name,omitempty"`
	Email          string        `bson:"email,omitempty"`
	Phone          string        `bson:"phone,omitempty"`
	Company        Company       `bson:"company,omitempty"`
	Address        Address       `bson:"address,omitempty"`
	BillingAddress *Address      `bson:"billingAddress,omitempty"`
	ContactPerson  ContactPerson `bson:"contactPerson,omitempty"`
	CustomerType   PartyType     `bson:"customerType,omitempty"`
	CreditLimit    Money         `bson:"creditLimit"`
	CurrentBalance Money         `bson:"currentBalance"`
	PaymentTerms   PaymentTerms  `bson:"paymentTerms,omitempty"`
	Status         PartyStatus   `bson:"status,omitempty"`
	Notes          string        `bson:"notes,omitempty"`
	Tags           []string      `bson:"tags,omitempty"`
}

// ApplyDefaults fills the values the collection expects when a field is omitted.
func (c *Customer) ApplyDefaults() {
	if c.CustomerType == "" {
		c.CustomerType = PartyTypeIndividual
	}
	if c.PaymentTerms == "" {
		c.PaymentTerms = PaymentTermsCash
	}
	if c.Status == "" {
		c.Status = PartyStatusActive
	}
	if c.Address.Country == "" {
		c.Address.Country = DefaultCountry
	}
}

var SupplierIndustries = []string{"Logistics", "Manufacturing", "Trading", "Services", "Other"}

// Supplier is a partner company. SUPPLIER users reference it through entityId.
type Supplier struct {
	BaseEntity    `bson:",inline"`
	Name          string        `bson:"name,omitempty"`
	Email         string        `bson:"email,omitempty"`
	Phone         string        `bson:"phone,omitempty"`
	Company       Company       `bson:"company,omitempty"`
	Address       Address       `bson:"address,omitempty"`
	ContactPerson ContactPerson `bson:"contactPerson,omitempty"`
	SupplierType  PartyType     `bson:"supplierType,omitempty"`
	Status        PartyStatus   `bson:"status,omitempty"`
	CreditLimit   Money         `bson:"creditLimit"`
	PaymentTerms  string        `bson:"paymentTerms,omitempty"`
	Rating        float64       `bson:"rating,omitempty"`
	Notes         string        `bson:"notes,omitempty"`
}

func (s *Supplier) ApplyDefaults() {
	if s.SupplierType == "" {
		s.SupplierType = PartyTypeBusiness
	}
	if s.PaymentTerms == "" {
		s.PaymentTerms = "Net 30"
	}
	if s.Status == "" {
		s.Status = PartyStatusActive
	}
	if s.Address.Country == "" {
		s.Address.Country = DefaultCountry
	}
}
