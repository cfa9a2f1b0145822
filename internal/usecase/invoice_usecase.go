package usecase

import (
	"context"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/infrastructure/metrics"
)

// Invoice is a display-ready invoice: reconciled financials plus the
// resolved company header and formatted amounts.
type Invoice struct {
	OrderID   string
	Company   domain.CompanyProfile
	Breakdown domain.InvoiceBreakdown

	// Formatted copies of the breakdown for direct rendering.
	SubtotalDisplay string
	DiscountDisplay string
	VATDisplay      string
	TotalDisplay    string
	PaidDisplay     string
	DueDisplay      string
}

// InvoiceUseCase builds display-ready invoices from persisted orders.
type InvoiceUseCase struct {
	orderRepo OrderRepository
	profiles  *ProfileResolver
	formatter CurrencyFormatter
	metrics   *metrics.Metrics
}

// NewInvoiceUseCase creates a new InvoiceUseCase.
func NewInvoiceUseCase(orderRepo OrderRepository, profiles *ProfileResolver, formatter CurrencyFormatter, metrics *metrics.Metrics) *InvoiceUseCase {
	return &InvoiceUseCase{
		orderRepo: orderRepo,
		profiles:  profiles,
		formatter: formatter,
		metrics:   metrics,
	}
}

// GetInvoice loads an order in its tolerant form, reconciles the
// financial breakdown and resolves the company header. A partial
// record produces a zeroed breakdown, never an error; only a missing
// order or a storage failure is reported.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, orderID string) (*Invoice, error) {
	rec, err := uc.orderRepo.GetRecord(ctx, orderID)
	if err != nil {
		return nil, err
	}

	breakdown := domain.ReconcileOrderRecord(rec)
	company := uc.profiles.Resolve(ctx)

	if uc.metrics != nil {
		uc.metrics.InvoicesRendered.Inc()
	}

	return &Invoice{
		OrderID:   orderID,
		Company:   company,
		Breakdown: breakdown,

		SubtotalDisplay: uc.formatter.Format(breakdown.Subtotal),
		DiscountDisplay: uc.formatter.Format(breakdown.DiscountAmount),
		VATDisplay:      uc.formatter.Format(breakdown.VATAmount),
		TotalDisplay:    uc.formatter.Format(breakdown.Total),
		PaidDisplay:     uc.formatter.Format(breakdown.PaidAmount),
		DueDisplay:      uc.formatter.Format(breakdown.DueAmount),
	}, nil
}
