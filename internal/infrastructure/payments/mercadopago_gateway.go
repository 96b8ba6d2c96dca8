package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"webstore_payments/internal/usecase/interfaces"
)

var (
	ErrMissingAccessToken = errors.New("missing mercado pago access token")
	ErrInvalidDataID      = errors.New("invalid mercado pago payment id")
)

// lookupTimeout bounds the synchronous payment-lookup call; a timeout is
// treated by the caller like any other transport error.
const lookupTimeout = 10 * time.Second

// MercadoPagoGateway implements interfaces.IPaymentGateway with the official
// SDK.
//
// The access token is per-call: it comes from the admin-editable gateway
// configuration, so the SDK client is built on each request rather than held
// on the struct.

type MercadoPagoGateway struct{}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway() *MercadoPagoGateway {
	return &MercadoPagoGateway{}
}

// CreatePreference creates a Checkout Pro preference for one payment intent.
func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req interfaces.PreferenceRequest) (interfaces.PreferenceResponse, error) {
	cfg, err := g.sdkConfig(req.Config.AccessToken)
	if err != nil {
		return interfaces.PreferenceResponse{}, err
	}
	client := preference.NewClient(cfg)

	prefReq := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          req.Intent.ID,
				Title:       req.Title,
				Description: req.Intent.Description,
				CurrencyID:  req.Config.Currency,
				Quantity:    1,
				UnitPrice:   req.UnitPrice,
			},
		},
		Payer: &preference.PayerRequest{
			Name:    req.Intent.PayerName,
			Surname: req.Intent.PayerSurname,
			Email:   req.Intent.PayerEmail,
		},
		PaymentMethods: &preference.PaymentMethodsRequest{
			ExcludedPaymentMethods: []preference.ExcludedPaymentMethodRequest{},
			ExcludedPaymentTypes:   []preference.ExcludedPaymentTypeRequest{},
			Installments:           1,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Failure: req.FailureURL,
		},
		StatementDescriptor: req.Title,
		ExternalReference:   req.Intent.ID,
		NotificationURL:     req.NotificationURL,
		AutoReturn:          "approved",
		Expires:             false,
	}

	log.Printf("[payment][gateway] preference create start payment_id=%s", req.Intent.ID)
	resp, err := client.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed payment_id=%s err=%v", req.Intent.ID, err)
		return interfaces.PreferenceResponse{}, err
	}
	log.Printf("[payment][gateway] preference create success payment_id=%s preference_id=%s", req.Intent.ID, resp.ID)

	return interfaces.PreferenceResponse{
		PreferenceID:     resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

// GetPaymentStatus fetches the processor-side payment by Mercado Pago's own
// transaction id and returns its status field.
func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, accessToken, dataID string) (string, error) {
	cfg, err := g.sdkConfig(accessToken)
	if err != nil {
		return "", err
	}

	id, err := strconv.Atoi(dataID)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDataID, dataID)
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	resp, err := payment.NewClient(cfg).Get(ctx, id)
	if err != nil {
		return "", err
	}
	log.Printf("[payment][gateway] lookup success data_id=%s status=%s", dataID, resp.Status)
	return resp.Status, nil
}

func (g *MercadoPagoGateway) sdkConfig(accessToken string) (*mpconfig.Config, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	return cfg, nil
}
