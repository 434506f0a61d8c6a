package models

import (
	"fmt"
	"time"
)

// Notification reminds the user of a revision. One is created per revision.
type Notification struct {
	ID          string    `bson:"_id" json:"id"`
	OwnerID     string    `bson:"ownerId" json:"-"`
	MotoID      string    `bson:"motoId" json:"motoId"`
	RevisionID  string    `bson:"revisionId" json:"revisionId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Status      Status    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type CreateNotificationInput struct {
	MotoID      string `json:"motoId" validate:"required"`
	RevisionID  string `json:"revisionId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`

	OwnerID string `json:"-"`
}

// StatusInput is the body of the status endpoints.
type StatusInput struct {
	Status Status `json:"status" validate:"required,oneof=pending done"`
}

func NewNotification(in CreateNotificationInput, now time.Time) Notification {
	return Notification{
		OwnerID:     in.OwnerID,
		MotoID:      in.MotoID,
		RevisionID:  in.RevisionID,
		Title:       in.Title,
		Description: in.Description,
		Status:      StatusPending,
		CreatedAt:   now,
	}
}

// NotificationFor derives the reminder created alongside a revision.
func NotificationFor(r Revision) CreateNotificationInput {
	desc := r.Service
	if r.Date != "" {
		if t, err := time.Parse(time.RFC3339, r.Date); err == nil {
			desc = fmt.Sprintf("%s em %s", r.Service, t.Format("02/01/2006"))
		}
	}
	return CreateNotificationInput{
		OwnerID:     r.OwnerID,
		MotoID:      r.MotoID,
		RevisionID:  r.ID,
		Title:       r.Title,
		Description: desc,
	}
}
