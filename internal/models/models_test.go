package models

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotoApplyKeepsAbsentFields(t *testing.T) {
	m := NewMoto(CreateMotoInput{Name: "Biz", Brand: "Honda", Year: 2020, Km: 20500}, time.Now())
	km := 21000.0
	color := "vermelha"
	got := m.Apply(UpdateMotoInput{Km: &km, Color: &color})

	assert.Equal(t, "Biz", got.Name)
	assert.Equal(t, "Honda", got.Brand)
	assert.Equal(t, 2020, got.Year)
	assert.Equal(t, 21000.0, got.Km)
	assert.Equal(t, "vermelha", got.Color)
	// original value untouched
	assert.Equal(t, 20500.0, m.Km)
}

func TestRevisionDefaultsAndApply(t *testing.T) {
	r := NewRevision(CreateRevisionInput{MotoID: "1", Title: "Óleo", Service: "Troca"}, time.Now())
	require.Equal(t, StatusPending, r.Status)

	done := StatusDone
	got := r.Apply(UpdateRevisionInput{Status: &done})
	assert.Equal(t, StatusDone, got.Status)
	assert.Equal(t, "Óleo", got.Title)
}

func TestNotificationFor(t *testing.T) {
	r := Revision{ID: "r1", MotoID: "m1", Title: "Revisão", Service: "Freios", Date: "2030-05-10T10:00:00Z"}
	in := NotificationFor(r)
	assert.Equal(t, "m1", in.MotoID)
	assert.Equal(t, "r1", in.RevisionID)
	assert.Equal(t, "Revisão", in.Title)
	assert.Equal(t, "Freios em 10/05/2030", in.Description)
}

func TestErrorsMatchSentinels(t *testing.T) {
	nf := fmt.Errorf("update: %w", &NotFoundError{Resource: "moto", ID: "9"})
	require.True(t, errors.Is(nf, ErrNotFound))
	var target *NotFoundError
	require.True(t, errors.As(nf, &target))
	assert.Equal(t, "9", target.ID)

	ae := &AlreadyExistsError{Resource: "user", Field: "email", Value: "a@b.c"}
	assert.True(t, errors.Is(ae, ErrAlreadyExists))
	assert.False(t, errors.Is(ae, ErrNotFound))

	ve := &ValidationError{Field: "email", Message: "invalid email"}
	assert.True(t, errors.Is(ve, ErrValidation))
	assert.Equal(t, "email: invalid email", ve.Error())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("done")
	require.NoError(t, err)
	assert.Equal(t, StatusDone, s)

	_, err = ParseStatus("archived")
	require.ErrorIs(t, err, ErrValidation)
}

func TestRegisterNormalize(t *testing.T) {
	in := RegisterInput{Name: "  Ana Souza ", Email: " Ana@Mail.COM "}
	in.Normalize()
	assert.Equal(t, "Ana Souza", in.Name)
	assert.Equal(t, "ana@mail.com", in.Email)
}
