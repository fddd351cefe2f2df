package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Supported payment methods.
const (
	MethodCard       = "card"
	MethodUPI        = "upi"
	MethodNetBanking = "netbanking"
)

// ErrPaymentDeclined is the user-facing settlement failure. The caller may
// retry or switch method; the simulator never retries on its own.
var ErrPaymentDeclined = errors.New("payment failed, please try again or use a different payment method")

// Receipt is the result of a successful settlement.
type Receipt struct {
	PaymentID string    `json:"paymentId"`
	Method    string    `json:"method"`
	Amount    float64   `json:"amount"`
	SettledAt time.Time `json:"settledAt"`
}

// PaymentService simulates settlement of a pending booking, succeeding or
// failing probabilistically the way a real payment webhook would report.
type PaymentService interface {
	Settle(ctx context.Context, total float64, method string) (*Receipt, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Logger *zap.Logger

	// Decider and SuccessRate drive the simulated outcome, independent of
	// method and amount; Delay models the gateway round trip.
	Decider     utils.Decider
	SuccessRate float64
	Delay       time.Duration
}

// Settle runs the simulated settlement. The delay is not cancellable once
// started; a caller that went away must tolerate the late result.
func (s *DefaultPaymentService) Settle(_ context.Context, total float64, method string) (*Receipt, error) {
	if total <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %v", total)
	}
	switch method {
	case MethodCard, MethodUPI, MethodNetBanking:
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", method)
	}

	time.Sleep(s.Delay)

	if !s.Decider.Decide(s.SuccessRate) {
		s.Logger.Info("payment declined", zap.String("method", method), zap.Float64("amount", total))
		return nil, ErrPaymentDeclined
	}

	receipt := &Receipt{
		PaymentID: "PAY" + uuid.New().String(),
		Method:    method,
		Amount:    total,
		SettledAt: time.Now(),
	}
	s.Logger.Info("payment settled",
		zap.String("paymentId", receipt.PaymentID), zap.String("method", method), zap.Float64("amount", total))
	return receipt, nil
}
