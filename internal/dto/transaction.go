package dto

import (
	"time"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to post a ledger entry.
// Exactly one of income/expense is expected to be nonzero.
type CreateTransactionRequest struct {
	Date         string          `json:"date" binding:"required,dateformat"`
	Description  string          `json:"description" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	AuthorizedBy string          `json:"authorizedBy" binding:"required"`
	ReceiptNum   string          `json:"receiptNumber"`
	Notes        string          `json:"notes"`
	EventID      *string         `json:"eventID"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	AuthorizedBy  string          `json:"authorizedBy"`
	ReceiptNum    string          `json:"receiptNumber"`
	Notes         string          `json:"notes"`
	EventID       *string         `json:"eventID,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// FundsSummaryResponse is the current fund position, with amounts both raw and
// in the KD display format consumed by exports.
type FundsSummaryResponse struct {
	CurrentBalance          decimal.Decimal `json:"currentBalance"`
	EmergencyReserve        decimal.Decimal `json:"emergencyReserve"`
	AvailableFunds          decimal.Decimal `json:"availableFunds"`
	CurrentBalanceDisplay   string          `json:"currentBalanceDisplay"`
	EmergencyReserveDisplay string          `json:"emergencyReserveDisplay"`
	AvailableFundsDisplay   string          `json:"availableFundsDisplay"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date,
		Description:   txn.Description,
		Category:      txn.Category,
		Income:        txn.Income,
		Expense:       txn.Expense,
		AuthorizedBy:  txn.AuthorizedBy,
		ReceiptNum:    txn.ReceiptNum,
		Notes:         txn.Notes,
		EventID:       txn.EventID,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
