package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopdesk/shopdesk/internal/adapter/http/dto"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// InvoiceService defines the behavior needed by InvoiceHandler.
type InvoiceService interface {
	GetInvoice(ctx context.Context, orderID string) (*usecase.Invoice, error)
}

// InvoiceHandler serves reconciled invoices for orders.
type InvoiceHandler struct {
	invoiceUC InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceUC InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC}
}

// Get renders the invoice for an order.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing order ID", "")
		return
	}

	invoice, err := h.invoiceUC.GetInvoice(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build invoice", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromUseCase(invoice))
}
