package domain

import (
	"github.com/google/uuid"
)

type SubscriptionType string

const (
	SubscriptionFree         SubscriptionType = "free"
	SubscriptionIntermediate SubscriptionType = "intermediate"
	SubscriptionPremium      SubscriptionType = "premium"
)

// Scopes returns the capability tags granted to a session for a tier.
// Each higher tier is a superset of the lower ones.
func (s SubscriptionType) Scopes() []string {
	scopes := []string{"free"}
	switch s {
	case SubscriptionIntermediate:
		scopes = append(scopes, "intermediate")
	case SubscriptionPremium:
		scopes = append(scopes, "intermediate", "premium")
	}
	return scopes
}

// User keeps the hashed password in its JSON form so cached copies stay
// complete; handlers expose users through DTOs that drop it.
//
// swagger:model domain.User
type User struct {
	ID             uuid.UUID        `json:"user_id"`
	FirstName      string           `json:"first_name" validate:"required"`
	LastName       string           `json:"last_name" validate:"required"`
	Email          string           `json:"email" validate:"required,email"`
	HashedPassword string           `json:"hashed_password,omitempty"`
	Subscription   SubscriptionType `json:"subscription_type"`
}

// RegisterInput is the typed, shape-validated registration payload.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput selects one of two mutually exclusive login modes: email+password
// when RefreshToken is empty, refresh-token exchange otherwise.
type LoginInput struct {
	Email        string
	Password     string
	RefreshToken string
}
