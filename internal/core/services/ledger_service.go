package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/aymanouf/committee-finance/internal/core/policy"
	portsrepo "github.com/aymanouf/committee-finance/internal/core/ports/repositories"
	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/dto"
)

// emergencyReserveRate is the fixed share of total income held back as the
// committee's emergency reserve.
var emergencyReserveRate = decimal.NewFromFloat(0.15)

// ledgerService provides transaction posting and budget category operations.
type ledgerService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepository
	catRepo  portsrepo.CategoryRepository
	approval policy.ApprovalPolicy
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(txnRepo portsrepo.TransactionRepository, catRepo portsrepo.CategoryRepository, approval policy.ApprovalPolicy) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo:  txnRepo,
		catRepo:  catRepo,
		approval: approval,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PrepareTransaction validates and authorizes a posting and returns the
// constructed transaction without persisting it. Checks run in a fixed order:
// required fields, then the approval matrix. Nothing mutates on failure.
func (s *ledgerService) PrepareTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if req.Income.IsNegative() || req.Expense.IsNegative() {
		return nil, fmt.Errorf("%w: income and expense must not be negative", apperrors.ErrValidation)
	}

	amount := req.Income
	if req.Expense.GreaterThan(amount) {
		amount = req.Expense
	}

	required := s.approval.RequiredApprovers(amount, req.Category, func(name string) bool {
		known, err := s.catRepo.HasCategory(ctx, name)
		return err == nil && known
	})
	if !s.approval.Satisfies(required, req.AuthorizedBy) {
		return nil, fmt.Errorf("%w: amount %s in category %q requires approval by %s",
			apperrors.ErrUnauthorized, amount.String(), req.Category, strings.Join(required, " or "))
	}

	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          req.Date,
		Description:   req.Description,
		Category:      req.Category,
		Income:        req.Income,
		Expense:       req.Expense,
		AuthorizedBy:  req.AuthorizedBy,
		ReceiptNum:    req.ReceiptNum,
		Notes:         req.Notes,
		EventID:       req.EventID,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// PostTransaction validates, authorizes and persists a ledger entry. The
// repository folds the amount into the matching category actuals, with
// unmatched categories rolling into "Other Income"/"Other Expenses".
func (s *ledgerService) PostTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.PrepareTransaction(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("category", txn.Category))
	return txn, nil
}

// ListTransactions returns the full ledger in posting order.
func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx)
}

// CurrentBalance is total income minus total expenses over all transactions.
func (s *ledgerService) CurrentBalance(ctx context.Context) (decimal.Decimal, error) {
	income, expenses, err := s.totals(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Sub(expenses), nil
}

// EmergencyReserve is 15% of total income over all transactions.
func (s *ledgerService) EmergencyReserve(ctx context.Context) (decimal.Decimal, error) {
	income, _, err := s.totals(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Mul(emergencyReserveRate), nil
}

// AvailableFunds is the current balance less the emergency reserve.
func (s *ledgerService) AvailableFunds(ctx context.Context) (decimal.Decimal, error) {
	income, expenses, err := s.totals(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Sub(expenses).Sub(income.Mul(emergencyReserveRate)), nil
}

func (s *ledgerService) totals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	income := decimal.Zero
	expenses := decimal.Zero
	for _, txn := range txns {
		income = income.Add(txn.Income)
		expenses = expenses.Add(txn.Expense)
	}
	return income, expenses, nil
}

// AddCategory inserts a budget category with zero actuals.
func (s *ledgerService) AddCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.BudgetCategory, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}
	cat := domain.BudgetCategory{
		Section:  req.Section,
		Name:     req.Name,
		Budgeted: req.InitialBudget,
		Actual:   decimal.Zero,
	}
	if err := s.catRepo.SaveCategory(ctx, cat); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Budget category added",
		slog.String("section", string(req.Section)), slog.String("name", req.Name))
	return &cat, nil
}

// SetCategoryBudget overwrites the budgeted figure only. Actuals are owned by
// ledger posting and never move here.
func (s *ledgerService) SetCategoryBudget(ctx context.Context, section domain.Section, name string, budget decimal.Decimal) (*domain.BudgetCategory, error) {
	if err := s.catRepo.UpdateCategoryBudget(ctx, section, name, budget); err != nil {
		return nil, err
	}
	return s.catRepo.FindCategory(ctx, section, name)
}

// ListCategories returns the section's categories.
func (s *ledgerService) ListCategories(ctx context.Context, section domain.Section) ([]domain.BudgetCategory, error) {
	return s.catRepo.ListCategories(ctx, section)
}
