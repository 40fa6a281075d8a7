package domain

// Card is a stored credit card. Number is the identity key and never changes
// after creation; Balance is mutated only through the balance and payment
// services and must stay non-negative.
//
// swagger:model domain.Card
type Card struct {
	Number         string  `json:"cardNumber" validate:"required,len=16"`
	Holder         string  `json:"cardHolder" validate:"required"`
	ExpirationDate string  `json:"cardExpirationDate" validate:"required"`
	Cvv            string  `json:"cardCvv" validate:"required,len=3,number"`
	Balance        float64 `json:"cardBalance" validate:"gte=0"`
}

// PaymentRequest carries the card credentials and amount for a payment.
type PaymentRequest struct {
	CardNumber     string
	CardHolder     string
	ExpirationDate string
	Cvv            string
	Amount         float64
}
