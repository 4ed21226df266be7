package services

import (
	"testing"

	"posbackend/internal/domain"
)

func TestResolvePaymentSingleCash(t *testing.T) {
	label, conf, err := ResolvePayment([]domain.TenderedPayment{
		{Method: "cash", Amount: 110.00},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != domain.PaymentCash || conf != "" {
		t.Fatalf("got label=%q conf=%q", label, conf)
	}
}

func TestResolvePaymentSingleCard(t *testing.T) {
	label, conf, err := ResolvePayment([]domain.TenderedPayment{
		{Method: "Card", Amount: 55.00, ExternalConfirmationID: "ch_abc123"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != domain.PaymentCard {
		t.Fatalf("label = %q, want card", label)
	}
	if conf != "ch_abc123" {
		t.Fatalf("confirmation id = %q", conf)
	}
}

func TestResolvePaymentSplitKeepsFirstCardConfirmation(t *testing.T) {
	label, conf, err := ResolvePayment([]domain.TenderedPayment{
		{Method: "cash", Amount: 20.00},
		{Method: "card", Amount: 35.00, ExternalConfirmationID: "ch_first"},
		{Method: "card", Amount: 10.00, ExternalConfirmationID: "ch_second"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != domain.PaymentSplit {
		t.Fatalf("label = %q, want split", label)
	}
	if conf != "ch_first" {
		t.Fatalf("confirmation id = %q, want ch_first", conf)
	}
}

func TestResolvePaymentCardWithoutConfirmation(t *testing.T) {
	_, _, err := ResolvePayment([]domain.TenderedPayment{
		{Method: "card", Amount: 10.00},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolvePaymentUnknownMethod(t *testing.T) {
	_, _, err := ResolvePayment([]domain.TenderedPayment{
		{Method: "cheque", Amount: 10.00},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolvePaymentEmpty(t *testing.T) {
	_, _, err := ResolvePayment(nil)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
