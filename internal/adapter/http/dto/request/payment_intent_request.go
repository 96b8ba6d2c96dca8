package request

import "webstore_payments/internal/usecase"

// PayerRequest is the payer block of a payment intent creation request.
type PayerRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email" binding:"required"`
}

// PaymentIntentCreateRequest is the payload for opening a payment intent
// before checkout begins.
type PaymentIntentCreateRequest struct {
	Amount      float64      `json:"amount" binding:"required,gt=0"`
	Description string       `json:"description"`
	Payer       PayerRequest `json:"payer" binding:"required"`
}

// ToCommand translates the payload into the domain command.
func (r PaymentIntentCreateRequest) ToCommand() usecase.PaymentIntentCommand {
	return usecase.PaymentIntentCommand{
		Amount:       r.Amount,
		Description:  r.Description,
		PayerName:    r.Payer.Name,
		PayerSurname: r.Payer.Surname,
		PayerEmail:   r.Payer.Email,
	}
}
