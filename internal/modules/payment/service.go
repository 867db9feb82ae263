package payment

import (
	"context"
	"errors"
	"time"

	"beautystudio/internal/domain"
	"beautystudio/internal/repository"
)

type Outcome string

const (
	OutcomeApplied        Outcome = "applied"
	OutcomeAlreadyApplied Outcome = "already_applied"
	OutcomeRecordNotFound Outcome = "record_not_found"
	OutcomeProviderFailed Outcome = "provider_failed"
)

// Service reconciles provider payment callbacks against the registered
// record families. Scan order is fixed: shop orders, course orders, booking
// deposits.
type Service struct {
	families []Reconcilable
	loggerf  func(format string, args ...interface{})
}

func NewService(families []Reconcilable, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{families: families, loggerf: loggerf}
}

// ApplyCallback applies one provider notification exactly once. The returned
// error is non-nil only for persistence failures, the sole retryable class;
// every other outcome is resolved and must still be acknowledged to the
// provider.
func (s *Service) ApplyCallback(ctx context.Context, correlationID string, amount float64, receiptID string, resultCode int) (Outcome, error) {
	if resultCode != 0 {
		s.loggerf("level=info msg=provider reported failed payment, acknowledging without changes correlation_id=%s result_code=%d",
			correlationID, resultCode)
		return OutcomeProviderFailed, nil
	}
	if correlationID == "" {
		s.loggerf("level=error msg=callback missing correlation id receipt_id=%s", receiptID)
		return OutcomeRecordNotFound, nil
	}

	type match struct {
		family Reconcilable
		id     int64
	}
	var matches []match
	for _, fam := range s.families {
		id, found, err := fam.Locate(ctx, correlationID)
		if err != nil {
			return "", err
		}
		if found {
			matches = append(matches, match{family: fam, id: id})
		}
	}

	if len(matches) == 0 {
		// Funds moved but nothing claims them; manual reconciliation case.
		s.loggerf("level=error msg=no record matches payment callback correlation_id=%s amount=%.2f receipt_id=%s",
			correlationID, amount, receiptID)
		return OutcomeRecordNotFound, nil
	}
	if len(matches) > 1 {
		// Data-integrity bug: one correlation id must reference one record.
		for _, m := range matches {
			s.loggerf("level=error msg=multiple records share one correlation id correlation_id=%s family=%s record_id=%d",
				correlationID, m.family.Family(), m.id)
		}
	}
	target := matches[0]

	applied, err := target.family.HasPayment(ctx, target.id, correlationID)
	if err != nil {
		return "", err
	}
	if applied {
		s.loggerf("level=info msg=duplicate callback ignored correlation_id=%s family=%s record_id=%d",
			correlationID, target.family.Family(), target.id)
		return OutcomeAlreadyApplied, nil
	}

	p := &domain.Payment{
		Amount:                amount,
		Method:                "mpesa",
		ProviderCorrelationID: correlationID,
		ProviderReceiptID:     receiptID,
		AppliedAt:             time.Now().UTC(),
	}
	if err := target.family.Apply(ctx, target.id, p); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			// Lost the race against a concurrent duplicate delivery.
			s.loggerf("level=info msg=concurrent duplicate callback ignored correlation_id=%s family=%s record_id=%d",
				correlationID, target.family.Family(), target.id)
			return OutcomeAlreadyApplied, nil
		}
		return "", err
	}

	// Side effects run once, after the ledger write; their failure never
	// rolls the payment back.
	target.family.NotifyApplied(ctx, target.id, p)

	s.loggerf("level=info msg=payment applied correlation_id=%s family=%s record_id=%d amount=%.2f",
		correlationID, target.family.Family(), target.id, amount)
	return OutcomeApplied, nil
}

// RegisterCheckout records the provider correlation id issued for a pending
// checkout against its record, so the later callback can be matched.
func (s *Service) RegisterCheckout(ctx context.Context, targetType string, recordID int64, correlationID string) error {
	if correlationID == "" || recordID == 0 {
		return ErrValidation
	}
	for _, fam := range s.families {
		if fam.Family() == targetType {
			return fam.RegisterCheckout(ctx, recordID, correlationID)
		}
	}
	return ErrUnknownFamily
}
