package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/policy"
	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/core/services"
	"github.com/aymanouf/committee-finance/internal/dto"
	"github.com/aymanouf/committee-finance/internal/repositories/memory"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	store     *memory.Store
	ledgerSvc portssvc.LedgerSvcFacade
	eventSvc  portssvc.EventSvcFacade
	service   portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	ledgerRepo := memory.NewLedgerRepository(suite.store)
	eventRepo := memory.NewEventRepository(suite.store)
	suite.ledgerSvc = services.NewLedgerService(ledgerRepo, ledgerRepo, policy.ApprovalPolicy{VoteAdvisoryOnly: true})
	suite.eventSvc = services.NewEventService(eventRepo, suite.ledgerSvc)
	suite.service = services.NewReportingService(ledgerRepo, eventRepo, suite.ledgerSvc)
}

func (suite *ReportingServiceTestSuite) post(category string, income, expense decimal.Decimal) {
	_, err := suite.ledgerSvc.PostTransaction(context.Background(), dto.CreateTransactionRequest{
		Date:         "2026-05-01",
		Description:  "Report fixture",
		Category:     category,
		Income:       income,
		Expense:      expense,
		AuthorizedBy: policy.RoleChair,
	})
	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.post("Sponsorships", decimal.NewFromInt(200), decimal.Zero)
	suite.post("Graduation", decimal.Zero, decimal.NewFromInt(50))

	report, err := suite.service.MonthlyReport(ctx, int(now.Month()), now.Year())
	suite.Require().NoError(err)
	suite.Len(report.Transactions, 2)
	suite.True(report.TotalIncome.Equal(decimal.NewFromInt(200)))
	suite.True(report.TotalExpenses.Equal(decimal.NewFromInt(50)))
	suite.True(report.Net.Equal(decimal.NewFromInt(150)))
	suite.True(report.CurrentBalance.Equal(decimal.NewFromInt(150)))
	suite.True(report.EmergencyReserve.Equal(decimal.NewFromInt(30)))
	suite.True(report.AvailableFunds.Equal(decimal.NewFromInt(120)))
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_FiltersByCalendarMonth() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.post("Sponsorships", decimal.NewFromInt(200), decimal.Zero)

	// A month with no postings yields an empty report, not an error.
	other := int(now.Month())%12 + 1
	report, err := suite.service.MonthlyReport(ctx, other, now.Year())
	suite.Require().NoError(err)
	suite.Empty(report.Transactions)
	suite.True(report.TotalIncome.IsZero())
	// Fund position is running state, independent of the requested month.
	suite.True(report.CurrentBalance.Equal(decimal.NewFromInt(200)))
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_InvalidMonth() {
	_, err := suite.service.MonthlyReport(context.Background(), 13, 2026)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.MonthlyReport(context.Background(), 0, 2026)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_Idempotent() {
	ctx := context.Background()
	now := time.Now().UTC()
	suite.post("Sponsorships", decimal.NewFromInt(75), decimal.Zero)

	first, err := suite.service.MonthlyReport(ctx, int(now.Month()), now.Year())
	suite.Require().NoError(err)
	second, err := suite.service.MonthlyReport(ctx, int(now.Month()), now.Year())
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *ReportingServiceTestSuite) TestEventReport() {
	ctx := context.Background()
	event, err := suite.eventSvc.CreateEvent(ctx, dto.CreateEventRequest{
		Name: "Winter Fair", Date: "2026-12-05", Coordinator: policy.RoleChair,
	})
	suite.Require().NoError(err)

	_, err = suite.eventSvc.AddParticipantPayment(ctx, event.EventID, dto.CreateParticipantPaymentRequest{
		ParticipantName: "Alice", Amount: decimal.NewFromInt(25), PaymentDate: "2026-12-01",
	})
	suite.Require().NoError(err)
	for _, amount := range []int64{30, 20} {
		_, err = suite.eventSvc.AddExpense(ctx, event.EventID, dto.CreateEventExpenseRequest{
			Description: "Stall hire", Amount: decimal.NewFromInt(amount), Date: "2026-12-02", Category: "Event Expenses",
		})
		suite.Require().NoError(err)
	}

	report, err := suite.service.EventReport(ctx, event.EventID)
	suite.Require().NoError(err)
	suite.Equal(1, report.ParticipantCount)
	suite.True(report.TotalPayments.Equal(decimal.NewFromInt(25)))
	suite.True(report.TotalExpenses.Equal(decimal.NewFromInt(50)))
	suite.True(report.Profit.Equal(decimal.NewFromInt(-25)))
	suite.True(report.ExpenseBreakdown["Event Expenses"].Equal(decimal.NewFromInt(50)))
}

func (suite *ReportingServiceTestSuite) TestEventReport_ZeroExpenses() {
	ctx := context.Background()
	event, err := suite.eventSvc.CreateEvent(ctx, dto.CreateEventRequest{
		Name: "Quiet Event", Date: "2026-06-01", Coordinator: policy.RoleChair,
	})
	suite.Require().NoError(err)

	report, err := suite.service.EventReport(ctx, event.EventID)
	suite.Require().NoError(err)
	suite.True(report.TotalExpenses.IsZero())
	suite.Empty(report.ExpenseBreakdown)

	// The response mapper divides by total expenses; zero must not blow up.
	resp := dto.ToEventReportResponse(report)
	suite.Empty(resp.ExpenseBreakdown)
}

func (suite *ReportingServiceTestSuite) TestEventReport_UnknownEvent() {
	_, err := suite.service.EventReport(context.Background(), "no-such-event")
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestAllEventsReport_EmptyIsNotFound() {
	_, err := suite.service.AllEventsReport(context.Background())
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestAllEventsReport_SortsByCalendarDate() {
	ctx := context.Background()

	// Insertion order deliberately scrambled; "2025-12-31" vs "2026-01-02"
	// sorts wrongly as a string-adjacent comparison of day/month fields.
	for _, fixture := range []struct{ name, date string }{
		{"New Year Trip", "2026-01-02"},
		{"Winter Fair", "2025-12-31"},
		{"Spring Gala", "2026-03-15"},
		{"Undated", "soon"},
	} {
		_, err := suite.eventSvc.CreateEvent(ctx, dto.CreateEventRequest{
			Name: fixture.name, Date: fixture.date, Coordinator: policy.RoleChair,
		})
		suite.Require().NoError(err)
	}

	report, err := suite.service.AllEventsReport(ctx)
	suite.Require().NoError(err)
	suite.Equal(4, report.EventCount)

	names := make([]string, len(report.Events))
	for i, s := range report.Events {
		names[i] = s.Event.Name
	}
	suite.Equal([]string{"Spring Gala", "New Year Trip", "Winter Fair", "Undated"}, names)
}

func (suite *ReportingServiceTestSuite) TestAllEventsReport_Totals() {
	ctx := context.Background()
	event, err := suite.eventSvc.CreateEvent(ctx, dto.CreateEventRequest{
		Name: "Spring Trip", Date: "2026-04-20", Coordinator: policy.RoleChair,
	})
	suite.Require().NoError(err)

	_, err = suite.eventSvc.AddParticipantPayment(ctx, event.EventID, dto.CreateParticipantPaymentRequest{
		ParticipantName: "Alice", Amount: decimal.NewFromInt(40), PaymentDate: "2026-04-01",
	})
	suite.Require().NoError(err)
	_, err = suite.eventSvc.AddExpense(ctx, event.EventID, dto.CreateEventExpenseRequest{
		Description: "Snacks", Amount: decimal.NewFromInt(15), Date: "2026-04-19", Category: "Event Expenses",
	})
	suite.Require().NoError(err)

	report, err := suite.service.AllEventsReport(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(report.Events, 1)
	suite.True(report.Events[0].Income.Equal(decimal.NewFromInt(40)))
	suite.True(report.Events[0].Expenses.Equal(decimal.NewFromInt(15)))
	suite.True(report.TotalProfit.Equal(decimal.NewFromInt(25)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
