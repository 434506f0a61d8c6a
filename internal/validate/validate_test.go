package validate

import (
	"errors"
	"testing"
	"time"

	"github.com/revisaai/revisaai/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructReportsJSONFieldName(t *testing.T) {
	err := Struct(models.RegisterInput{Name: "Ana Souza", Email: "not-an-email", Password: "1234"})
	require.Error(t, err)
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
	assert.Equal(t, "invalid email", ve.Message)

	require.NoError(t, Struct(models.RegisterInput{Name: "Ana Souza", Email: "ana@mail.com", Password: "1234"}))
}

func TestStructShortPassword(t *testing.T) {
	err := Struct(models.RegisterInput{Name: "Ana Souza", Email: "ana@mail.com", Password: "123"})
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "password", ve.Field)
}

func TestStructPartialUpdate(t *testing.T) {
	bad := models.Status("archived")
	err := Struct(models.UpdateRevisionInput{Status: &bad})
	require.ErrorIs(t, err, models.ErrValidation)

	done := models.StatusDone
	require.NoError(t, Struct(models.UpdateRevisionInput{Status: &done}))
	require.NoError(t, Struct(models.UpdateMotoInput{}))
}

func TestStructRevisionDates(t *testing.T) {
	in := models.CreateRevisionInput{MotoID: "1", Title: "Óleo", Service: "Troca", Date: "amanhã", Time: "2030-01-01T10:00:00Z"}
	err := Struct(in)
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "date", ve.Field)

	in.Date = "2030-01-01"
	require.NoError(t, Struct(in))
}

func TestHelpers(t *testing.T) {
	require.NoError(t, Email("ricardo@gmail.com"))
	require.Error(t, Email("ricardo@gmail"))
	require.Error(t, Email(""))

	require.NoError(t, Password("1234"))
	require.Error(t, Password("123"))

	require.NoError(t, Name(" Ana "))
	require.Error(t, Name(" Al "))
}

func TestParseKm(t *testing.T) {
	cases := map[string]float64{
		"20.500":  20500,
		"1.234,5": 1234.5,
		"30500":   30500,
		"0":       0,
	}
	for in, want := range cases {
		got, err := ParseKm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKm("vinte")
	require.ErrorIs(t, err, models.ErrValidation)
	_, err = ParseKm("")
	require.Error(t, err)
	_, err = ParseKm("-5")
	require.Error(t, err)
}

func TestParseYear(t *testing.T) {
	y, err := ParseYear("2020")
	require.NoError(t, err)
	assert.Equal(t, 2020, y)

	for _, bad := range []string{"1899", "20201", "20a0", ""} {
		_, err := ParseYear(bad)
		require.Error(t, err, bad)
	}
}

func TestNotPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	require.NoError(t, NotPast("", now))
	require.NoError(t, NotPast("2026-03-10", now))
	require.NoError(t, NotPast("2026-04-01T08:00:00Z", now))
	require.Error(t, NotPast("2026-03-09", now))
	require.Error(t, NotPast("ontem", now))
}
