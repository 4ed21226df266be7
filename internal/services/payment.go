package services

import (
	"strings"

	"posbackend/internal/domain"
)

// ResolvePayment collapses the tendered payments into the transaction's
// recorded method label. A single payment keeps its own method; anything
// more is "split". The confirmation id comes from the first card payment,
// which may legitimately sit alongside a cash payment in a split.
func ResolvePayment(payments []domain.TenderedPayment) (label string, externalConfirmationID string, err error) {
	if len(payments) == 0 {
		return "", "", domain.ValidationError{Field: "payments", Msg: "at least one payment is required"}
	}

	for i, p := range payments {
		method := strings.ToLower(strings.TrimSpace(p.Method))
		switch method {
		case domain.PaymentCash:
		case domain.PaymentCard:
			if strings.TrimSpace(p.ExternalConfirmationID) == "" {
				return "", "", domain.ValidationError{Field: "external_confirmation_id", Msg: "card payment is missing its confirmation id"}
			}
			if externalConfirmationID == "" {
				externalConfirmationID = strings.TrimSpace(p.ExternalConfirmationID)
			}
		default:
			return "", "", domain.ValidationError{Field: "payments", Msg: "unknown payment method"}
		}
		payments[i].Method = method
	}

	if len(payments) == 1 {
		return payments[0].Method, externalConfirmationID, nil
	}
	return domain.PaymentSplit, externalConfirmationID, nil
}
