package services

import (
	"context"
	"fmt"
	"time"

	"posbackend/internal/domain"
	"posbackend/internal/domain/models"
	"posbackend/internal/utils"
)

// CatalogLookup is the slice of the catalog the repricer needs. Satisfied by
// repositories.CatalogRepository.
type CatalogLookup interface {
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	GetEquipment(ctx context.Context, id int64) (models.Equipment, error)
	GetTrip(ctx context.Context, id int64) (models.Trip, error)
}

// Payment amounts must reconcile against the recomputed total to the cent;
// amounts are already integer cents here, so even a one-cent gap rejects.
const paymentEpsilonCents = 0

// PricingService rederives the authoritative price of every cart line from
// the catalog and reconciles tendered payments against the recomputed total.
// Client-submitted prices and totals never survive validation.
type PricingService struct {
	Catalog   CatalogLookup
	TaxRate   float64
	RequestID string
	Now       func() time.Time
}

func (s PricingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Validate reprices the cart and checks the tendered payments. On success
// the returned cart carries only server-derived amounts.
func (s PricingService) Validate(ctx context.Context, items []domain.CartLine, payments []domain.TenderedPayment) (domain.ValidatedCart, error) {
	if len(items) == 0 {
		return domain.ValidatedCart{}, domain.ValidationError{Field: "items", Msg: "cart is empty"}
	}
	if len(payments) == 0 {
		return domain.ValidatedCart{}, domain.ValidationError{Field: "payments", Msg: "at least one payment is required"}
	}

	now := s.now()
	lines := make([]domain.PricedLine, 0, len(items))
	var subtotal utils.Cents

	for _, item := range items {
		priced, err := s.priceLine(ctx, item, now)
		if err != nil {
			return domain.ValidatedCart{}, err
		}
		subtotal += priced.Total
		lines = append(lines, priced)
	}

	tax := utils.RoundedTax(subtotal, s.TaxRate)
	total := subtotal + tax

	label, confirmationID, err := ResolvePayment(payments)
	if err != nil {
		return domain.ValidatedCart{}, err
	}

	var tendered utils.Cents
	for _, p := range payments {
		amount := utils.ToCents(p.Amount)
		if amount <= 0 {
			return domain.ValidatedCart{}, domain.ValidationError{Field: "payments", Msg: "payment amount must be positive"}
		}
		tendered += amount
	}
	if diff := tendered - total; diff > paymentEpsilonCents || diff < -paymentEpsilonCents {
		return domain.ValidatedCart{}, domain.ValidationError{
			Field: "payments",
			Msg:   fmt.Sprintf("payment amounts do not match total: tendered %s, due %s", utils.FormatMoney(tendered), utils.FormatMoney(total)),
		}
	}

	utils.LogEvent(s.RequestID, "pricing", "validate",
		fmt.Sprintf("lines=%d subtotal=%s tax=%s total=%s method=%s", len(lines),
			utils.FormatMoney(subtotal), utils.FormatMoney(tax), utils.FormatMoney(total), label))

	return domain.ValidatedCart{
		Lines:                  lines,
		Subtotal:               subtotal,
		Tax:                    tax,
		Total:                  total,
		PaymentMethod:          label,
		ExternalConfirmationID: confirmationID,
		Payments:               payments,
	}, nil
}

func (s PricingService) priceLine(ctx context.Context, item domain.CartLine, now time.Time) (domain.PricedLine, error) {
	switch item.Type {
	case domain.LineProduct:
		if item.Quantity < 1 {
			return domain.PricedLine{}, domain.ValidationError{Field: "quantity", Msg: "must be a positive integer"}
		}
		p, err := s.Catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			return domain.PricedLine{}, err
		}
		if !p.Active {
			return domain.PricedLine{}, domain.NotFoundError{Resource: "product"}
		}
		if item.Quantity > p.StockQuantity {
			return domain.PricedLine{}, domain.ConflictError{Resource: "stock", Msg: "insufficient stock"}
		}
		unit := p.EffectivePrice(now)
		return domain.PricedLine{
			Type:        domain.LineProduct,
			ProductID:   p.ID,
			Description: p.Name,
			Units:       item.Quantity,
			UnitPrice:   unit,
			Total:       unit * utils.Cents(item.Quantity),
		}, nil

	case domain.LineRental:
		if item.Days < 1 {
			return domain.PricedLine{}, domain.ValidationError{Field: "days", Msg: "must be a positive integer"}
		}
		e, err := s.Catalog.GetEquipment(ctx, item.EquipmentID)
		if err != nil {
			return domain.PricedLine{}, err
		}
		if e.Status != models.EquipmentStatusAvailable {
			return domain.PricedLine{}, domain.ConflictError{Resource: "equipment", Msg: "equipment is not available"}
		}
		return domain.PricedLine{
			Type:        domain.LineRental,
			EquipmentID: e.ID,
			Description: e.Name,
			Units:       item.Days,
			UnitPrice:   e.DailyRate,
			Total:       e.DailyRate * utils.Cents(item.Days),
		}, nil

	case domain.LineBooking:
		if item.Participants < 1 {
			return domain.PricedLine{}, domain.ValidationError{Field: "participants", Msg: "must be a positive integer"}
		}
		t, err := s.Catalog.GetTrip(ctx, item.TripID)
		if err != nil {
			return domain.PricedLine{}, err
		}
		if !t.Active {
			return domain.PricedLine{}, domain.NotFoundError{Resource: "trip"}
		}
		return domain.PricedLine{
			Type:        domain.LineBooking,
			TripID:      t.ID,
			Description: t.Name,
			TourName:    t.Name,
			Units:       item.Participants,
			UnitPrice:   t.Price,
			Total:       t.Price * utils.Cents(item.Participants),
		}, nil

	default:
		return domain.PricedLine{}, domain.ValidationError{Field: "type", Msg: fmt.Sprintf("unknown line type %q", item.Type)}
	}
}
