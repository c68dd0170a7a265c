package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SystemRaterID is the rater recorded for ratings the platform issues on a
// party's behalf.
var SystemRaterID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// DefaultRating is applied to a side that did not rate before the window closed.
const DefaultRating = 3.0

type User struct {
	ID                uuid.UUID `db:"id"`
	Rating            float64   `db:"rating"`
	RatingCount       int       `db:"rating_count"`
	IsAvailable       bool      `db:"is_available"`
	CurrentActivities []int64   `db:"current_activities"`
}

type ChargingRequest struct {
	ID             int64           `db:"id"`
	RequesterID    uuid.UUID       `db:"requester_id"`
	RecipientID    uuid.UUID       `db:"recipient_id"`
	ChargerID      int64           `db:"charger_id"`
	Status         string          `db:"status"`
	RequestedAt    time.Time       `db:"requested_at"`
	RespondedAt    *time.Time      `db:"responded_at"`
	ConfirmedAt    *time.Time      `db:"confirmed_at"`
	BaseAmount     decimal.Decimal `db:"base_amount"`
	Fees           decimal.Decimal `db:"fees"`
	EstimatedPrice decimal.Decimal `db:"estimated_price"`
}

type Process struct {
	ID                   int64           `db:"id"`
	ChargerRequestID     int64           `db:"charger_request_id"`
	VehicleOwnerID       uuid.UUID       `db:"vehicle_owner_id"`
	ChargerOwnerID       uuid.UUID       `db:"charger_owner_id"`
	EstimatedPrice       decimal.Decimal `db:"estimated_price"`
	AmountCharged        decimal.Decimal `db:"amount_charged"`
	AmountPaid           decimal.Decimal `db:"amount_paid"`
	Status               ProcessStatus   `db:"status"`
	SubStatus            SubStatus       `db:"sub_status"`
	VehicleOwnerRating   *float64        `db:"vehicle_owner_rating"`
	ChargerOwnerRating   *float64        `db:"charger_owner_rating"`
	DefaultRatingApplied bool            `db:"default_rating_applied"`
	RatingWindowOpenedAt *time.Time      `db:"rating_window_opened_at"`
	DateCreated          time.Time       `db:"date_created"`
	DateCompleted        *time.Time      `db:"date_completed"`
}

// IsParty reports whether userID is the vehicle owner or the charger owner.
func (p *Process) IsParty(userID uuid.UUID) bool {
	return userID == p.VehicleOwnerID || userID == p.ChargerOwnerID
}

// Counterparty returns the other party. The caller must be a party.
func (p *Process) Counterparty(userID uuid.UUID) uuid.UUID {
	if userID == p.VehicleOwnerID {
		return p.ChargerOwnerID
	}
	return p.VehicleOwnerID
}

// RatingGivenBy returns the field holding the rating userID gave the other
// party. A vehicle owner's rating of the charger owner is stored as
// ChargerOwnerRating and vice versa.
func (p *Process) RatingGivenBy(userID uuid.UUID) **float64 {
	if userID == p.VehicleOwnerID {
		return &p.ChargerOwnerRating
	}
	return &p.VehicleOwnerRating
}

// RatingReceivedBy returns the field holding the rating userID received.
func (p *Process) RatingReceivedBy(userID uuid.UUID) **float64 {
	if userID == p.VehicleOwnerID {
		return &p.VehicleOwnerRating
	}
	return &p.ChargerOwnerRating
}

func (p *Process) HasBothRatings() bool {
	return p.VehicleOwnerRating != nil && p.ChargerOwnerRating != nil
}

// AwaitsDefaultRating reports whether the missing ratings of p may be
// defaulted once its rating window expired. A process nobody rated and nobody
// completed is left to the stale process timeout.
func (p *Process) AwaitsDefaultRating() bool {
	if p.DefaultRatingApplied || p.RatingWindowOpenedAt == nil || p.HasBothRatings() {
		return false
	}
	switch p.Status {
	case StatusPendingCompleted:
		return p.VehicleOwnerRating != nil || p.ChargerOwnerRating != nil
	case StatusCompleted:
		return p.SubStatus != SubStatusNone
	}
	return false
}

type RatingHistory struct {
	ID        int64     `db:"id"`
	ProcessID int64     `db:"process_id"`
	RaterID   uuid.UUID `db:"rater_id"`
	RateeID   uuid.UUID `db:"ratee_id"`
	Stars     float64   `db:"stars"`
	CreatedAt time.Time `db:"created_at"`
}

type Notification struct {
	ID               int64      `db:"id"`
	RecipientID      *uuid.UUID `db:"recipient_id"`
	Title            string     `db:"title"`
	Body             string     `db:"body"`
	IsRead           bool       `db:"is_read"`
	SentAt           time.Time  `db:"sent_at"`
	RelatedRequestID *int64     `db:"related_request_id"`
	Type             string     `db:"type"`
}

// Activity is a process as seen from one of its parties, joined with the
// charging request it belongs to.
type Activity struct {
	Process
	ChargerID  int64           `db:"charger_id"`
	BaseAmount decimal.Decimal `db:"base_amount"`
	Fees       decimal.Decimal `db:"fees"`
}

// Notification types.
const (
	NotificationConfirmed     = "Process_Confirmed_By_VehicleOwner"
	NotificationUpdated       = "Process_Updated"
	NotificationDecision      = "Process_Decision"
	NotificationRated         = "Process_Rated"
	NotificationDefaultRating = "Process_Default_Rating"
	NotificationTerminated    = "Process_Terminated"
)
