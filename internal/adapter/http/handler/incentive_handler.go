package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/adapter/http/dto"
	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// IncentiveService defines the behavior needed by IncentiveHandler.
type IncentiveService interface {
	ListIncentives(ctx context.Context, employeeID string) ([]domain.Incentive, error)
	AvailableBalance(ctx context.Context, employeeID string) (decimal.Decimal, error)
	Withdraw(ctx context.Context, input usecase.WithdrawInput) (*usecase.WithdrawResult, error)
	ListWithdrawals(ctx context.Context, employeeID string, limit, offset int) ([]domain.Withdrawal, error)
}

// IncentiveHandler handles employee incentive HTTP requests.
type IncentiveHandler struct {
	incentiveUC IncentiveService
}

// NewIncentiveHandler creates a new IncentiveHandler.
func NewIncentiveHandler(incentiveUC IncentiveService) *IncentiveHandler {
	return &IncentiveHandler{incentiveUC: incentiveUC}
}

// ListIncentives lists an employee's incentive records.
func (h *IncentiveHandler) ListIncentives(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing employee ID", "")
		return
	}

	incentives, err := h.incentiveUC.ListIncentives(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list incentives", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.IncentivesFromDomain(incentives))
}

// GetBalance reports the employee's withdrawable balance.
func (h *IncentiveHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing employee ID", "")
		return
	}

	available, err := h.incentiveUC.AvailableBalance(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		EmployeeID: id,
		Available:  available,
	})
}

// Withdraw takes money out of the employee's incentive balance.
func (h *IncentiveHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing employee ID", "")
		return
	}

	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.incentiveUC.Withdraw(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "withdrawal rejected", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.WithdrawResultResponse{
		Withdrawal: dto.WithdrawalFromDomain(&result.Withdrawal),
		Remaining:  result.Remaining,
	})
}

// ListWithdrawals lists an employee's past withdrawals.
func (h *IncentiveHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing employee ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	withdrawals, err := h.incentiveUC.ListWithdrawals(r.Context(), id, limit, offset)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list withdrawals", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.WithdrawalsFromDomain(withdrawals))
}
