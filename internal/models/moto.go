package models

import "time"

// Moto is a motorcycle owned by the session's user.
type Moto struct {
	ID               string    `bson:"_id" json:"id"`
	OwnerID          string    `bson:"ownerId" json:"-"`
	Name             string    `bson:"name" json:"name"`
	Brand            string    `bson:"brand" json:"brand"`
	Model            string    `bson:"model,omitempty" json:"model,omitempty"`
	Year             int       `bson:"year,omitempty" json:"year,omitempty"`
	Plate            string    `bson:"plate,omitempty" json:"plate,omitempty"`
	Km               float64   `bson:"km,omitempty" json:"km,omitempty"`
	Color            string    `bson:"color,omitempty" json:"color,omitempty"`
	NextRevisionDate string    `bson:"nextRevisionDate,omitempty" json:"nextRevisionDate,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

type CreateMotoInput struct {
	Name             string  `json:"name" validate:"required"`
	Brand            string  `json:"brand" validate:"required"`
	Model            string  `json:"model,omitempty"`
	Year             int     `json:"year,omitempty" validate:"omitempty,gte=1900,lte=9999"`
	Plate            string  `json:"plate,omitempty"`
	Km               float64 `json:"km,omitempty" validate:"gte=0"`
	Color            string  `json:"color,omitempty"`
	NextRevisionDate string  `json:"nextRevisionDate,omitempty"`

	// OwnerID is set by the server from the caller's token, never from the body.
	OwnerID string `json:"-"`
}

// UpdateMotoInput is a partial moto; nil fields keep their current value.
type UpdateMotoInput struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Brand            *string  `json:"brand,omitempty" validate:"omitempty,min=1"`
	Model            *string  `json:"model,omitempty"`
	Year             *int     `json:"year,omitempty" validate:"omitempty,gte=1900,lte=9999"`
	Plate            *string  `json:"plate,omitempty"`
	Km               *float64 `json:"km,omitempty" validate:"omitempty,gte=0"`
	Color            *string  `json:"color,omitempty"`
	NextRevisionDate *string  `json:"nextRevisionDate,omitempty"`
}

// NewMoto builds the stored value for an input; the caller assigns ID.
func NewMoto(in CreateMotoInput, now time.Time) Moto {
	return Moto{
		OwnerID:          in.OwnerID,
		Name:             in.Name,
		Brand:            in.Brand,
		Model:            in.Model,
		Year:             in.Year,
		Plate:            in.Plate,
		Km:               in.Km,
		Color:            in.Color,
		NextRevisionDate: in.NextRevisionDate,
		CreatedAt:        now,
	}
}

// Apply merges the non-nil fields of u over m.
func (m Moto) Apply(u UpdateMotoInput) Moto {
	setString(&m.Name, u.Name)
	setString(&m.Brand, u.Brand)
	setString(&m.Model, u.Model)
	if u.Year != nil {
		m.Year = *u.Year
	}
	setString(&m.Plate, u.Plate)
	if u.Km != nil {
		m.Km = *u.Km
	}
	setString(&m.Color, u.Color)
	setString(&m.NextRevisionDate, u.NextRevisionDate)
	return m
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
