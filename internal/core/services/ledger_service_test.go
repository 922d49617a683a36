package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/aymanouf/committee-finance/internal/core/policy"
	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/core/services"
	"github.com/aymanouf/committee-finance/internal/dto"
	"github.com/aymanouf/committee-finance/internal/repositories/memory"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	repo    *memory.LedgerRepository
	service portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.repo = memory.NewLedgerRepository(suite.store)
	suite.service = services.NewLedgerService(suite.repo, suite.repo, policy.ApprovalPolicy{VoteAdvisoryOnly: true})
}

func (suite *LedgerServiceTestSuite) postReq(category, authorizedBy string, income, expense decimal.Decimal) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:         "2026-03-14",
		Description:  "Test posting",
		Category:     category,
		Income:       income,
		Expense:      expense,
		AuthorizedBy: authorizedBy,
	}
}

func (suite *LedgerServiceTestSuite) categoryActual(section domain.Section, name string) decimal.Decimal {
	cat, err := suite.repo.FindCategory(context.Background(), section, name)
	suite.Require().NoError(err)
	return cat.Actual
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_Success() {
	ctx := context.Background()

	txn, err := suite.service.PostTransaction(ctx, suite.postReq("Sponsorships", policy.RoleChair, decimal.NewFromInt(50), decimal.Zero))

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal("Sponsorships", txn.Category)

	txns, err := suite.service.ListTransactions(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal(txn.TransactionID, txns[0].TransactionID)

	suite.True(suite.categoryActual(domain.SectionIncome, "Sponsorships").Equal(decimal.NewFromInt(50)))
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_MissingDescription() {
	ctx := context.Background()
	req := suite.postReq("Sponsorships", policy.RoleChair, decimal.NewFromInt(50), decimal.Zero)
	req.Description = "  "

	_, err := suite.service.PostTransaction(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	txns, _ := suite.service.ListTransactions(ctx)
	suite.Empty(txns)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_NegativeAmount() {
	ctx := context.Background()

	_, err := suite.service.PostTransaction(ctx, suite.postReq("Sponsorships", policy.RoleChair, decimal.NewFromInt(-5), decimal.Zero))

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_LargeAmountNeedsSecondApprover() {
	ctx := context.Background()

	// Exactly 100 still passes with the Chair alone.
	_, err := suite.service.PostTransaction(ctx, suite.postReq("Graduation", policy.RoleChair, decimal.Zero, decimal.NewFromFloat(100.00)))
	suite.Require().NoError(err)

	// 100.01 needs Chair or School Admin; a plain member is rejected.
	_, err = suite.service.PostTransaction(ctx, suite.postReq("Graduation", "Treasurer", decimal.Zero, decimal.NewFromFloat(100.01)))
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.PostTransaction(ctx, suite.postReq("Graduation", policy.RoleSchoolAdmin, decimal.Zero, decimal.NewFromFloat(100.01)))
	suite.Require().NoError(err)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_UnknownCategoryRollsIntoCatchAll() {
	ctx := context.Background()

	// Unknown category routes to a committee vote, which is advisory here, so
	// any authorizer passes and the amount lands in "Other Expenses".
	txn, err := suite.service.PostTransaction(ctx, suite.postReq("Bake Sale Supplies", "Treasurer", decimal.Zero, decimal.NewFromInt(20)))

	suite.Require().NoError(err)
	suite.Equal("Bake Sale Supplies", txn.Category)
	suite.True(suite.categoryActual(domain.SectionExpense, domain.CategoryOtherExpenses).Equal(decimal.NewFromInt(20)))

	// Posting never auto-creates categories.
	_, err = suite.repo.FindCategory(ctx, domain.SectionExpense, "Bake Sale Supplies")
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_UnknownCategoryRejectedInStrictMode() {
	ctx := context.Background()
	strict := services.NewLedgerService(suite.repo, suite.repo, policy.ApprovalPolicy{VoteAdvisoryOnly: false})

	_, err := strict.PostTransaction(ctx, suite.postReq("Bake Sale Supplies", policy.RoleChair, decimal.Zero, decimal.NewFromInt(20)))

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	txns, _ := strict.ListTransactions(ctx)
	suite.Empty(txns)
}

func (suite *LedgerServiceTestSuite) TestFundPosition() {
	ctx := context.Background()

	_, err := suite.service.PostTransaction(ctx, suite.postReq("Sponsorships", policy.RoleChair, decimal.NewFromInt(200), decimal.Zero))
	suite.Require().NoError(err)
	_, err = suite.service.PostTransaction(ctx, suite.postReq("Graduation", policy.RoleChair, decimal.Zero, decimal.NewFromInt(50)))
	suite.Require().NoError(err)

	balance, err := suite.service.CurrentBalance(ctx)
	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(150)), "balance = %s", balance)

	reserve, err := suite.service.EmergencyReserve(ctx)
	suite.Require().NoError(err)
	suite.True(reserve.Equal(decimal.NewFromInt(30)), "reserve = %s", reserve)

	available, err := suite.service.AvailableFunds(ctx)
	suite.Require().NoError(err)
	suite.True(available.Equal(decimal.NewFromInt(120)), "available = %s", available)
}

func (suite *LedgerServiceTestSuite) TestAddCategory() {
	ctx := context.Background()

	cat, err := suite.service.AddCategory(ctx, dto.CreateCategoryRequest{
		Section:       domain.SectionIncome,
		Name:          "Bake Sales",
		InitialBudget: decimal.NewFromInt(300),
	})
	suite.Require().NoError(err)
	suite.True(cat.Actual.IsZero())

	// A new category participates in the approval matrix immediately.
	_, err = suite.service.PostTransaction(ctx, suite.postReq("Bake Sales", policy.RoleChair, decimal.NewFromInt(40), decimal.Zero))
	suite.Require().NoError(err)
	suite.True(suite.categoryActual(domain.SectionIncome, "Bake Sales").Equal(decimal.NewFromInt(40)))

	_, err = suite.service.AddCategory(ctx, dto.CreateCategoryRequest{Section: domain.SectionIncome, Name: "Bake Sales"})
	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *LedgerServiceTestSuite) TestSetCategoryBudget() {
	ctx := context.Background()

	cat, err := suite.service.SetCategoryBudget(ctx, domain.SectionExpense, "Yearbook", decimal.NewFromInt(500))
	suite.Require().NoError(err)
	suite.True(cat.Budgeted.Equal(decimal.NewFromInt(500)))
	suite.True(cat.Actual.IsZero())

	_, err = suite.service.SetCategoryBudget(ctx, domain.SectionExpense, "No Such Category", decimal.NewFromInt(10))
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
