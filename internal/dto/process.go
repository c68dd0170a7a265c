package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ConfirmProcessRequestDTO struct {
	ChargerRequestID int64            `json:"chargerRequestId" example:"42"`
	AmountCharged    decimal.Decimal  `json:"amountCharged" swaggertype:"number" example:"150.5"`
	AmountPaid       decimal.Decimal  `json:"amountPaid" swaggertype:"number" example:"150.5"`
	EstimatedPrice   *decimal.Decimal `json:"estimatedPrice,omitempty" swaggertype:"number" example:"140"`
}

type UpdateProcessRequestDTO struct {
	ProcessID      int64            `json:"processId" example:"7"`
	Status         *string          `json:"status,omitempty" example:"completed"`
	EstimatedPrice *decimal.Decimal `json:"estimatedPrice,omitempty" swaggertype:"number" example:"140"`
	AmountCharged  *decimal.Decimal `json:"amountCharged,omitempty" swaggertype:"number" example:"150.5"`
	AmountPaid     *decimal.Decimal `json:"amountPaid,omitempty" swaggertype:"number" example:"150.5"`
}

type OwnerDecisionRequestDTO struct {
	ProcessID int64  `json:"processId" example:"7"`
	Decision  string `json:"decision" example:"completed"`
}

type SubmitRatingRequestDTO struct {
	ProcessID      int64   `json:"processId" example:"7"`
	RatingForOther float64 `json:"ratingForOther" example:"4.5"`
}

// NotificationEcho mirrors the notification that was sent to the counterparty.
type NotificationEcho struct {
	RecipientID uuid.UUID         `json:"recipientId" swaggertype:"string" example:"3f6c1c9e-8a9b-4c1e-9a57-1f0d5c2e7b10"`
	Title       string            `json:"title" example:"Charging session confirmed"`
	Body        string            `json:"body"`
	Type        string            `json:"type" example:"Process_Confirmed_By_VehicleOwner"`
	Data        map[string]string `json:"data,omitempty"`
}

type ConfirmProcessResponseDTO struct {
	ProcessID    int64            `json:"processId" example:"7"`
	Notification NotificationEcho `json:"notification"`
}

type UpdateProcessResponseDTO struct {
	ProcessID    int64            `json:"processId" example:"7"`
	Status       string           `json:"status" example:"Completed"`
	Notification NotificationEcho `json:"notification"`
}

type OwnerDecisionResponseDTO struct {
	ProcessID int64  `json:"processId" example:"7"`
	Status    string `json:"status" example:"Completed"`
	DecidedBy string `json:"decidedBy" example:"ChargerOwner"`
}

type SubmitRatingResponseDTO struct {
	ProcessID          int64    `json:"processId" example:"7"`
	ProcessStatus      string   `json:"processStatus" example:"PendingCompleted"`
	YourRatingForOther *float64 `json:"yourRatingForOther" example:"4.5"`
	OtherRatingForYou  *float64 `json:"otherRatingForYou"`
}

type RatingsSummaryResponseDTO struct {
	ProcessID          int64    `json:"processId" example:"7"`
	YourRatingForOther *float64 `json:"yourRatingForOther" example:"4.5"`
	OtherRatingForYou  *float64 `json:"otherRatingForYou" example:"3"`
	HasBoth            bool     `json:"hasBoth" example:"true"`
}

type ActivityResponseDTO struct {
	ID                 int64           `json:"id" example:"7"`
	ChargerRequestID   int64           `json:"chargerRequestId" example:"42"`
	Status             string          `json:"status" example:"PendingCompleted"`
	SubStatus          string          `json:"subStatus,omitempty" example:"AwaitingRatings"`
	Direction          string          `json:"direction" example:"Outgoing"`
	IsAsChargerOwner   bool            `json:"isAsChargerOwner"`
	IsAsVehicleOwner   bool            `json:"isAsVehicleOwner"`
	CounterpartyUserID uuid.UUID       `json:"counterpartyUserId" swaggertype:"string"`
	YourRatingForOther *float64        `json:"yourRatingForOther"`
	OtherRatingForYou  *float64        `json:"otherRatingForYou"`
	ChargerID          int64           `json:"chargerId" example:"3"`
	BaseAmount         decimal.Decimal `json:"baseAmount" swaggertype:"number"`
	Fees               decimal.Decimal `json:"fees" swaggertype:"number"`
	EstimatedPrice     decimal.Decimal `json:"estimatedPrice" swaggertype:"number"`
	AmountCharged      decimal.Decimal `json:"amountCharged" swaggertype:"number"`
	AmountPaid         decimal.Decimal `json:"amountPaid" swaggertype:"number"`
	DateCreated        time.Time       `json:"dateCreated"`
	DateCompleted      *time.Time      `json:"dateCompleted,omitempty"`
}
