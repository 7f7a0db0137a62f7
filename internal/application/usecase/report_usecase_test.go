package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
	"github.com/alexsagar/teantea-api/internal/domain"
)

func TestParseDateRange_Explicit(t *testing.T) {
	from, to, err := usecase.ParseDateRange(dto.DateRangeRequest{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), from)
	// The end date is inclusive: the exclusive bound is one day past it.
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestParseDateRange_DefaultsToLast30Days(t *testing.T) {
	from, to, err := usecase.ParseDateRange(dto.DateRangeRequest{})
	require.NoError(t, err)

	// Calendar arithmetic around DST keeps this near, not exactly, 30 days.
	assert.InDelta(t, float64(30*24*time.Hour), float64(to.Sub(from)), float64(2*time.Hour))
	assert.False(t, to.Before(time.Now()))
}

func TestParseDateRange_InvalidDates(t *testing.T) {
	_, _, err := usecase.ParseDateRange(dto.DateRangeRequest{StartDate: "31-08-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = usecase.ParseDateRange(dto.DateRangeRequest{EndDate: "soon"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseDateRange_EmptyRange(t *testing.T) {
	_, _, err := usecase.ParseDateRange(dto.DateRangeRequest{
		StartDate: "2026-08-31",
		EndDate:   "2026-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
