package dto

import (
	"time"

	"github.com/aymanouf/committee-finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEventRequest defines the data needed to create an event. Projected
// figures are stored as given; callers compute pricePerPerson x
// targetParticipants upstream when that is what they want projected.
type CreateEventRequest struct {
	Name               string          `json:"name" binding:"required"`
	Date               string          `json:"date" binding:"required,dateformat"`
	Location           string          `json:"location"`
	Coordinator        string          `json:"coordinator" binding:"required"`
	EventType          string          `json:"eventType"`
	PricePerPerson     decimal.Decimal `json:"pricePerPerson"`
	TargetParticipants int             `json:"targetParticipants" binding:"min=0"`
	Description        string          `json:"description"`
	ProjectedIncome    decimal.Decimal `json:"projectedIncome"`
	ProjectedExpenses  decimal.Decimal `json:"projectedExpenses"`
}

// UpdateEventStatusRequest carries a status change for an event.
type UpdateEventStatusRequest struct {
	Status domain.EventStatus `json:"status" binding:"required,oneof=Planning Active Completed"`
}

// CreateParticipantPaymentRequest defines a participant paying towards an event.
type CreateParticipantPaymentRequest struct {
	ParticipantName string          `json:"participantName" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate     string          `json:"paymentDate" binding:"required,dateformat"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes"`
}

// CreateEventExpenseRequest defines an expense booked against an event.
type CreateEventExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,dateformat"`
	Category    string          `json:"category" binding:"required"`
	PaidTo      string          `json:"paidTo"`
	ReceiptNum  string          `json:"receiptNumber"`
	Notes       string          `json:"notes"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID            string             `json:"id"`
	Name               string             `json:"name"`
	Date               string             `json:"date"`
	Location           string             `json:"location"`
	Coordinator        string             `json:"coordinator"`
	EventType          string             `json:"eventType"`
	PricePerPerson     decimal.Decimal    `json:"pricePerPerson"`
	TargetParticipants int                `json:"targetParticipants"`
	Description        string             `json:"description"`
	ProjectedIncome    decimal.Decimal    `json:"projectedIncome"`
	ProjectedExpenses  decimal.Decimal    `json:"projectedExpenses"`
	ActualIncome       decimal.Decimal    `json:"actualIncome"`
	ActualExpenses     decimal.Decimal    `json:"actualExpenses"`
	Status             domain.EventStatus `json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// ParticipantPaymentResponse defines the data returned for a payment.
type ParticipantPaymentResponse struct {
	PaymentID       string          `json:"id"`
	EventID         string          `json:"eventID"`
	ParticipantName string          `json:"participantName"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     string          `json:"paymentDate"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// EventExpenseResponse defines the data returned for an event expense.
type EventExpenseResponse struct {
	ExpenseID   string          `json:"id"`
	EventID     string          `json:"eventID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	PaidTo      string          `json:"paidTo"`
	ReceiptNum  string          `json:"receiptNumber"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToEventResponse converts a domain.Event to its response DTO.
func ToEventResponse(ev *domain.Event) EventResponse {
	return EventResponse{
		EventID:            ev.EventID,
		Name:               ev.Name,
		Date:               ev.Date,
		Location:           ev.Location,
		Coordinator:        ev.Coordinator,
		EventType:          ev.EventType,
		PricePerPerson:     ev.PricePerPerson,
		TargetParticipants: ev.TargetParticipants,
		Description:        ev.Description,
		ProjectedIncome:    ev.ProjectedIncome,
		ProjectedExpenses:  ev.ProjectedExpenses,
		ActualIncome:       ev.ActualIncome,
		ActualExpenses:     ev.ActualExpenses,
		Status:             ev.Status,
		CreatedAt:          ev.CreatedAt,
	}
}

// ToEventResponses converts a slice of events.
func ToEventResponses(events []domain.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, ev := range events {
		responses[i] = ToEventResponse(&ev)
	}
	return responses
}

// ToParticipantPaymentResponse converts a domain.ParticipantPayment.
func ToParticipantPaymentResponse(p *domain.ParticipantPayment) ParticipantPaymentResponse {
	return ParticipantPaymentResponse{
		PaymentID:       p.PaymentID,
		EventID:         p.EventID,
		ParticipantName: p.ParticipantName,
		Amount:          p.Amount,
		PaymentDate:     p.PaymentDate,
		PaymentMethod:   p.PaymentMethod,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
	}
}

// ToParticipantPaymentResponses converts a slice of payments.
func ToParticipantPaymentResponses(payments []domain.ParticipantPayment) []ParticipantPaymentResponse {
	responses := make([]ParticipantPaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToParticipantPaymentResponse(&p)
	}
	return responses
}

// ToEventExpenseResponse converts a domain.EventExpenseRecord.
func ToEventExpenseResponse(e *domain.EventExpenseRecord) EventExpenseResponse {
	return EventExpenseResponse{
		ExpenseID:   e.ExpenseID,
		EventID:     e.EventID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    e.Category,
		PaidTo:      e.PaidTo,
		ReceiptNum:  e.ReceiptNum,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

// ToEventExpenseResponses converts a slice of event expenses.
func ToEventExpenseResponses(expenses []domain.EventExpenseRecord) []EventExpenseResponse {
	responses := make([]EventExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToEventExpenseResponse(&e)
	}
	return responses
}
