package models

import "time"

// Revision is a scheduled or completed maintenance of a moto.
// Date and Time are ISO-8601 strings as exchanged with the backend.
type Revision struct {
	ID                   string    `bson:"_id" json:"id"`
	OwnerID              string    `bson:"ownerId" json:"-"`
	MotoID               string    `bson:"motoId" json:"motoId"`
	Title                string    `bson:"title" json:"title"`
	Service              string    `bson:"service" json:"service"`
	Details              string    `bson:"details,omitempty" json:"details,omitempty"`
	Date                 string    `bson:"date" json:"date"`
	Time                 string    `bson:"time" json:"time"`
	Km                   float64   `bson:"km,omitempty" json:"km,omitempty"`
	Status               Status    `bson:"status" json:"status"`
	AutoReminderEnabled  bool      `bson:"autoReminderEnabled" json:"autoReminderEnabled"`
	AutoReminderInterval string    `bson:"autoReminderInterval,omitempty" json:"autoReminderInterval,omitempty"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
}

type CreateRevisionInput struct {
	MotoID               string  `json:"motoId" validate:"required"`
	Title                string  `json:"title" validate:"required"`
	Service              string  `json:"service" validate:"required"`
	Details              string  `json:"details,omitempty"`
	Date                 string  `json:"date" validate:"required,iso_date"`
	Time                 string  `json:"time" validate:"required,iso_date"`
	Km                   float64 `json:"km,omitempty" validate:"gte=0"`
	AutoReminderEnabled  bool    `json:"autoReminderEnabled"`
	AutoReminderInterval string  `json:"autoReminderInterval,omitempty"`

	OwnerID string `json:"-"`
}

type UpdateRevisionInput struct {
	MotoID               *string  `json:"motoId,omitempty"`
	Title                *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Service              *string  `json:"service,omitempty" validate:"omitempty,min=1"`
	Details              *string  `json:"details,omitempty"`
	Date                 *string  `json:"date,omitempty" validate:"omitempty,iso_date"`
	Time                 *string  `json:"time,omitempty" validate:"omitempty,iso_date"`
	Km                   *float64 `json:"km,omitempty" validate:"omitempty,gte=0"`
	Status               *Status  `json:"status,omitempty" validate:"omitempty,oneof=pending done"`
	AutoReminderEnabled  *bool    `json:"autoReminderEnabled,omitempty"`
	AutoReminderInterval *string  `json:"autoReminderInterval,omitempty"`
}

// NewRevision builds a pending revision for an input; the caller assigns ID.
func NewRevision(in CreateRevisionInput, now time.Time) Revision {
	return Revision{
		OwnerID:              in.OwnerID,
		MotoID:               in.MotoID,
		Title:                in.Title,
		Service:              in.Service,
		Details:              in.Details,
		Date:                 in.Date,
		Time:                 in.Time,
		Km:                   in.Km,
		Status:               StatusPending,
		AutoReminderEnabled:  in.AutoReminderEnabled,
		AutoReminderInterval: in.AutoReminderInterval,
		CreatedAt:            now,
	}
}

func (r Revision) Apply(u UpdateRevisionInput) Revision {
	setString(&r.MotoID, u.MotoID)
	setString(&r.Title, u.Title)
	setString(&r.Service, u.Service)
	setString(&r.Details, u.Details)
	setString(&r.Date, u.Date)
	setString(&r.Time, u.Time)
	if u.Km != nil {
		r.Km = *u.Km
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.AutoReminderEnabled != nil {
		r.AutoReminderEnabled = *u.AutoReminderEnabled
	}
	setString(&r.AutoReminderInterval, u.AutoReminderInterval)
	return r
}
