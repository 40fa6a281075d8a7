package services_test

import (
	"context"
	"testing"

	"github.com/sperez-mk/miso-backend/internal/adapter/logger"
	"github.com/sperez-mk/miso-backend/internal/adapter/memory"
	"github.com/sperez-mk/miso-backend/internal/core/domain"
	"github.com/sperez-mk/miso-backend/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentFixture(t *testing.T, balance float64) (*services.PaymentService, *memory.CardRepository, domain.PaymentRequest) {
	t.Helper()
	repo := memory.NewCardRepository()
	seedCard(t, repo, balance)
	svc := services.NewPaymentService(repo, logger.NewLoggerAdapter("local"))

	req := domain.PaymentRequest{
		CardNumber:     testCardNumber,
		CardHolder:     "John Doe",
		ExpirationDate: futureExpiration(),
		Cvv:            "123",
		Amount:         50,
	}
	return svc, repo, req
}

func TestProcessPayment_Success(t *testing.T) {
	svc, repo, req := paymentFixture(t, 100)

	message, err := svc.ProcessPayment(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Payment processed successfully", message)
	assert.Equal(t, float64(50), cardBalance(t, repo, testCardNumber))
}

func TestProcessPayment_CardNotFound(t *testing.T) {
	svc, _, req := paymentFixture(t, 100)
	req.CardNumber = "4000000000000002"

	_, err := svc.ProcessPayment(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestProcessPayment_HolderReportedFirst(t *testing.T) {
	svc, _, req := paymentFixture(t, 100)
	req.CardHolder = "Jane Roe"
	req.ExpirationDate = "01/20"
	req.Cvv = "999"

	_, err := svc.ProcessPayment(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidCardHolder,
		"the first failing check in order must be the one reported")
}

func TestProcessPayment_ExpirationBeforeCvv(t *testing.T) {
	svc, _, req := paymentFixture(t, 100)
	req.ExpirationDate = "01/20"
	req.Cvv = "999"

	_, err := svc.ProcessPayment(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
}

func TestProcessPayment_InvalidCvv(t *testing.T) {
	svc, _, req := paymentFixture(t, 100)
	req.Cvv = "999"

	_, err := svc.ProcessPayment(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidCvv)
}

func TestProcessPayment_InsufficientFunds(t *testing.T) {
	svc, repo, req := paymentFixture(t, 20)

	_, err := svc.ProcessPayment(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, float64(20), cardBalance(t, repo, testCardNumber), "failed payment must not touch the balance")
}

func TestProcessPayment_HolderMatchIsCaseInsensitiveAndTrimmed(t *testing.T) {
	svc, _, req := paymentFixture(t, 100)
	req.CardHolder = "  JOHN doe  "

	_, err := svc.ProcessPayment(context.Background(), req)

	assert.NoError(t, err)
}
