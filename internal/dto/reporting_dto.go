package dto

import (
	"sort"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/aymanouf/committee-finance/internal/utils"
	"github.com/shopspring/decimal"
)

// MonthlyReportResponse is the monthly summary rendered for export.
type MonthlyReportResponse struct {
	Month        int                   `json:"month"`
	Year         int                   `json:"year"`
	Transactions []TransactionResponse `json:"transactions"`
	Summary      struct {
		TotalIncome          decimal.Decimal `json:"totalIncome"`
		TotalExpenses        decimal.Decimal `json:"totalExpenses"`
		Net                  decimal.Decimal `json:"net"`
		TotalIncomeDisplay   string          `json:"totalIncomeDisplay"`
		TotalExpensesDisplay string          `json:"totalExpensesDisplay"`
		NetDisplay           string          `json:"netDisplay"`
	} `json:"summary"`
	Funds FundsSummaryResponse `json:"funds"`
}

// ExpenseBreakdownEntry is one category slice of an event's expense pie.
type ExpenseBreakdownEntry struct {
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amountDisplay"`
	Percentage    decimal.Decimal `json:"percentage"`
}

// EventReportResponse is the single-event report rendered for export.
type EventReportResponse struct {
	Event            EventResponse                `json:"event"`
	Participants     []ParticipantPaymentResponse `json:"participants"`
	Expenses         []EventExpenseResponse       `json:"expenses"`
	TotalPayments    decimal.Decimal              `json:"totalPayments"`
	TotalExpenses    decimal.Decimal              `json:"totalExpenses"`
	Profit           decimal.Decimal              `json:"profit"`
	ProfitDisplay    string                       `json:"profitDisplay"`
	ExpenseBreakdown []ExpenseBreakdownEntry      `json:"expenseBreakdown"`
	ParticipantCount int                          `json:"participantCount"`
}

// EventSummaryResponse is one row of the all-events report.
type EventSummaryResponse struct {
	Event    EventResponse   `json:"event"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// AllEventsReportResponse is the cross-event report rendered for export.
type AllEventsReportResponse struct {
	Events  []EventSummaryResponse `json:"events"`
	Summary struct {
		TotalIncome   decimal.Decimal `json:"totalIncome"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		TotalProfit   decimal.Decimal `json:"totalProfit"`
		ProfitDisplay string          `json:"profitDisplay"`
	} `json:"summary"`
	EventCount int `json:"eventCount"`
}

// ToMonthlyReportResponse converts a domain.MonthlyReport.
func ToMonthlyReportResponse(r *domain.MonthlyReport) MonthlyReportResponse {
	resp := MonthlyReportResponse{
		Month:        r.Month,
		Year:         r.Year,
		Transactions: ToTransactionResponses(r.Transactions),
		Funds: FundsSummaryResponse{
			CurrentBalance:          r.CurrentBalance,
			EmergencyReserve:        r.EmergencyReserve,
			AvailableFunds:          r.AvailableFunds,
			CurrentBalanceDisplay:   utils.FormatKD(r.CurrentBalance),
			EmergencyReserveDisplay: utils.FormatKD(r.EmergencyReserve),
			AvailableFundsDisplay:   utils.FormatKD(r.AvailableFunds),
		},
	}
	resp.Summary.TotalIncome = r.TotalIncome
	resp.Summary.TotalExpenses = r.TotalExpenses
	resp.Summary.Net = r.Net
	resp.Summary.TotalIncomeDisplay = utils.FormatKD(r.TotalIncome)
	resp.Summary.TotalExpensesDisplay = utils.FormatKD(r.TotalExpenses)
	resp.Summary.NetDisplay = utils.FormatKD(r.Net)
	return resp
}

// ToEventReportResponse converts a domain.EventReport. Breakdown percentages
// are of total event expenses, 0 when there are no expenses.
func ToEventReportResponse(r *domain.EventReport) EventReportResponse {
	breakdown := make([]ExpenseBreakdownEntry, 0, len(r.ExpenseBreakdown))
	for category, amount := range r.ExpenseBreakdown {
		breakdown = append(breakdown, ExpenseBreakdownEntry{
			Category:      category,
			Amount:        amount,
			AmountDisplay: utils.FormatKD(amount),
			Percentage:    utils.PercentOf(amount, r.TotalExpenses),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Category < breakdown[j].Category })
	return EventReportResponse{
		Event:            ToEventResponse(&r.Event),
		Participants:     ToParticipantPaymentResponses(r.Participants),
		Expenses:         ToEventExpenseResponses(r.Expenses),
		TotalPayments:    r.TotalPayments,
		TotalExpenses:    r.TotalExpenses,
		Profit:           r.Profit,
		ProfitDisplay:    utils.FormatKD(r.Profit),
		ExpenseBreakdown: breakdown,
		ParticipantCount: r.ParticipantCount,
	}
}

// ToAllEventsReportResponse converts a domain.AllEventsReport.
func ToAllEventsReportResponse(r *domain.AllEventsReport) AllEventsReportResponse {
	summaries := make([]EventSummaryResponse, len(r.Events))
	for i, s := range r.Events {
		summaries[i] = EventSummaryResponse{
			Event:    ToEventResponse(&s.Event),
			Income:   s.Income,
			Expenses: s.Expenses,
			Profit:   s.Profit,
		}
	}
	resp := AllEventsReportResponse{
		Events:     summaries,
		EventCount: r.EventCount,
	}
	resp.Summary.TotalIncome = r.TotalIncome
	resp.Summary.TotalExpenses = r.TotalExpenses
	resp.Summary.TotalProfit = r.TotalProfit
	resp.Summary.ProfitDisplay = utils.FormatKD(r.TotalProfit)
	return resp
}
