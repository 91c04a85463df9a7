package model

import "time"

// CustomerStatus is the lifecycle status of a customer account.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusDisabled CustomerStatus = "disabled"
)

// Tier is an informal label derived from status; it is not stored.
type Tier string

const (
	TierPremium  Tier = "premium"
	TierStandard Tier = "standard"
)

// Customer represents a row of the customers table.
type Customer struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Status    CustomerStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Tier treats every active customer as premium.
func (c Customer) Tier() Tier {
	if c.Status == CustomerStatusActive {
		return TierPremium
	}
	return TierStandard
}

// CustomerFields are the columns a partial update may touch.
var CustomerFields = []string{"name", "email", "phone", "status"}

// IsCustomerField reports whether name is an updatable customer column.
func IsCustomerField(name string) bool {
	for _, f := range CustomerFields {
		if f == name {
			return true
		}
	}
	return false
}
