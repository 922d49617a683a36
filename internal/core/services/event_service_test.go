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

type EventServiceTestSuite struct {
	suite.Suite
	store     *memory.Store
	ledgerSvc portssvc.LedgerSvcFacade
	service   portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	ledgerRepo := memory.NewLedgerRepository(suite.store)
	suite.ledgerSvc = services.NewLedgerService(ledgerRepo, ledgerRepo, policy.ApprovalPolicy{VoteAdvisoryOnly: true})
	suite.service = services.NewEventService(memory.NewEventRepository(suite.store), suite.ledgerSvc)
}

func (suite *EventServiceTestSuite) createEvent(coordinator string) *domain.Event {
	event, err := suite.service.CreateEvent(context.Background(), dto.CreateEventRequest{
		Name:        "Spring Trip",
		Date:        "2026-04-20",
		Location:    "City Museum",
		Coordinator: coordinator,
	})
	suite.Require().NoError(err)
	return event
}

func (suite *EventServiceTestSuite) TestCreateEvent() {
	event := suite.createEvent("Chair")

	suite.Equal(domain.EventPlanning, event.Status)
	suite.True(event.ActualIncome.IsZero())
	suite.True(event.ActualExpenses.IsZero())

	events, err := suite.service.ListEvents(context.Background())
	suite.Require().NoError(err)
	suite.Len(events, 1)
}

func (suite *EventServiceTestSuite) TestAddParticipantPayment_DualPosts() {
	ctx := context.Background()
	event := suite.createEvent(policy.RoleChair)

	for _, name := range []string{"Alice", "Bashar", "Chen"} {
		_, err := suite.service.AddParticipantPayment(ctx, event.EventID, dto.CreateParticipantPaymentRequest{
			ParticipantName: name,
			Amount:          decimal.NewFromInt(10),
			PaymentDate:     "2026-04-01",
		})
		suite.Require().NoError(err)
	}

	got, err := suite.service.GetEventByID(ctx, event.EventID)
	suite.Require().NoError(err)
	suite.True(got.ActualIncome.Equal(decimal.NewFromInt(30)), "actual income = %s", got.ActualIncome)

	// Each payment lands in the ledger under "Trip Payments".
	balance, err := suite.ledgerSvc.CurrentBalance(ctx)
	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(30)), "balance = %s", balance)

	txns, err := suite.ledgerSvc.ListTransactions(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(txns, 3)
	for _, txn := range txns {
		suite.Equal(domain.CategoryTripPayments, txn.Category)
		suite.Require().NotNil(txn.EventID)
		suite.Equal(event.EventID, *txn.EventID)
	}

	payments, err := suite.service.PaymentsFor(ctx, event.EventID)
	suite.Require().NoError(err)
	suite.Len(payments, 3)
}

func (suite *EventServiceTestSuite) TestAddExpense_DualPosts() {
	ctx := context.Background()
	event := suite.createEvent(policy.RoleChair)

	_, err := suite.service.AddExpense(ctx, event.EventID, dto.CreateEventExpenseRequest{
		Description: "Bus rental",
		Amount:      decimal.NewFromInt(80),
		Date:        "2026-04-18",
		Category:    "Transportation",
		PaidTo:      "City Coaches",
	})
	suite.Require().NoError(err)

	got, err := suite.service.GetEventByID(ctx, event.EventID)
	suite.Require().NoError(err)
	suite.True(got.ActualExpenses.Equal(decimal.NewFromInt(80)))

	txns, err := suite.ledgerSvc.ListTransactions(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal("Transportation", txns[0].Category)
	suite.True(txns[0].Expense.Equal(decimal.NewFromInt(80)))
}

func (suite *EventServiceTestSuite) TestAddExpense_RejectedLeavesNothingBehind() {
	ctx := context.Background()
	// Coordinator is not an approver role; anything over 100 must be rejected.
	event := suite.createEvent("Ms. Farah")

	_, err := suite.service.AddExpense(ctx, event.EventID, dto.CreateEventExpenseRequest{
		Description: "Venue deposit",
		Amount:      decimal.NewFromInt(150),
		Date:        "2026-04-10",
		Category:    "Event Expenses",
	})

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)

	got, getErr := suite.service.GetEventByID(ctx, event.EventID)
	suite.Require().NoError(getErr)
	suite.True(got.ActualExpenses.IsZero(), "event totals must not move on a rejected posting")

	txns, listErr := suite.ledgerSvc.ListTransactions(ctx)
	suite.Require().NoError(listErr)
	suite.Empty(txns, "ledger must not record a rejected posting")

	expenses, expErr := suite.service.ExpensesFor(ctx, event.EventID)
	suite.Require().NoError(expErr)
	suite.Empty(expenses)
}

func (suite *EventServiceTestSuite) TestAddParticipantPayment_UnknownEvent() {
	_, err := suite.service.AddParticipantPayment(context.Background(), "no-such-event", dto.CreateParticipantPaymentRequest{
		ParticipantName: "Alice",
		Amount:          decimal.NewFromInt(10),
		PaymentDate:     "2026-04-01",
	})
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EventServiceTestSuite) TestUpdateStatus() {
	ctx := context.Background()
	event := suite.createEvent("Chair")

	updated, err := suite.service.UpdateStatus(ctx, event.EventID, domain.EventCompleted)
	suite.Require().NoError(err)
	suite.Equal(domain.EventCompleted, updated.Status)

	_, err = suite.service.UpdateStatus(ctx, "no-such-event", domain.EventActive)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
