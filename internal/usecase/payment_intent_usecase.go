package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"webstore_payments/internal/domain/entities"
	"webstore_payments/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidPayerEmail    = errors.New("invalid payer email")
)

// PaymentIntentCommand is the domain command for opening a payment intent.
type PaymentIntentCommand struct {
	Amount       float64
	Description  string
	PayerName    string
	PayerSurname string
	PayerEmail   string
}

// IPaymentIntentUseCase exposes payment intent operations to the store core.

type IPaymentIntentUseCase interface {
	Create(ctx context.Context, cmd PaymentIntentCommand) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
}

type PaymentIntentUseCase struct {
	repo interfaces.IPaymentIntentRepository
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(repo interfaces.IPaymentIntentRepository) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{repo: repo}
}

func (u *PaymentIntentUseCase) Create(ctx context.Context, cmd PaymentIntentCommand) (entities.PaymentIntent, error) {
	if cmd.Amount <= 0 {
		return entities.PaymentIntent{}, ErrInvalidPaymentAmount
	}
	if strings.TrimSpace(cmd.PayerEmail) == "" {
		return entities.PaymentIntent{}, ErrInvalidPayerEmail
	}

	p := entities.PaymentIntent{
		ID:           uuid.NewString(),
		Amount:       cmd.Amount,
		Description:  strings.TrimSpace(cmd.Description),
		PayerName:    strings.TrimSpace(cmd.PayerName),
		PayerSurname: strings.TrimSpace(cmd.PayerSurname),
		PayerEmail:   strings.TrimSpace(cmd.PayerEmail),
		Status:       entities.PaymentIntentStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentIntentUseCase) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentIntent{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if p.ID == "" {
		return entities.PaymentIntent{}, ErrPaymentNotFound
	}
	return p, nil
}
