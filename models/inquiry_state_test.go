package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestStepIndex(t *testing.T) {
	assert.Equal(t, 0, StepIndex(InquiryStatusNew))
	assert.Equal(t, 3, StepIndex(InquiryStatusReviewing))
	assert.Equal(t, 6, StepIndex(InquiryStatusConfirmed))

	// Terminales y desconocidos quedan fuera del pipeline numerado
	assert.Equal(t, -1, StepIndex(InquiryStatusRejected))
	assert.Equal(t, -1, StepIndex(InquiryStatusArchived))
	assert.Equal(t, -1, StepIndex("whatever"))
}

func TestStepCompleteRendering(t *testing.T) {
	// En "reviewing" los pasos 0..3 se pintan completos, 4..6 no
	for step := 0; step <= 3; step++ {
		assert.True(t, StepComplete(InquiryStatusReviewing, step), "step %d", step)
	}
	for step := 4; step <= 6; step++ {
		assert.False(t, StepComplete(InquiryStatusReviewing, step), "step %d", step)
	}

	// Confirmed completa todos los pasos
	for step := 0; step <= 6; step++ {
		assert.True(t, StepComplete(InquiryStatusConfirmed, step), "step %d", step)
	}
}

func TestTerminalStatesCompleteNothing(t *testing.T) {
	// rejected y archived no completan ningún paso numerado: el front
	// los pinta distinto, no como progreso
	for _, status := range []string{InquiryStatusRejected, InquiryStatusArchived} {
		for step := 0; step <= 6; step++ {
			assert.False(t, StepComplete(status, step), "%s step %d", status, step)
		}
		assert.True(t, IsTerminalStatus(status))
	}

	assert.False(t, IsTerminalStatus(InquiryStatusConfirmed))
}

func TestAdvanceInquiry(t *testing.T) {
	inquiry := Inquiry{Status: InquiryStatusNew}

	// Brinco hacia adelante saltándose pasos
	require.NoError(t, AdvanceInquiry(&inquiry, InquiryStatusApproved))
	assert.Equal(t, InquiryStatusApproved, inquiry.Status)

	// Hacia atrás también se vale
	require.NoError(t, AdvanceInquiry(&inquiry, InquiryStatusContacted))
	assert.Equal(t, InquiryStatusContacted, inquiry.Status)

	// A terminal
	require.NoError(t, AdvanceInquiry(&inquiry, InquiryStatusRejected))
	assert.Equal(t, InquiryStatusRejected, inquiry.Status)

	// Desconocido se rechaza sin tocar el estado
	err := AdvanceInquiry(&inquiry, "limbo")
	require.Error(t, err)
	assert.Equal(t, InquiryStatusRejected, inquiry.Status)
}

func TestIsValidInquiryStatus(t *testing.T) {
	for _, status := range InquiryPipeline {
		assert.True(t, IsValidInquiryStatus(status), status)
	}
	assert.True(t, IsValidInquiryStatus(InquiryStatusRejected))
	assert.True(t, IsValidInquiryStatus(InquiryStatusArchived))
	assert.False(t, IsValidInquiryStatus(""))
	assert.False(t, IsValidInquiryStatus("pending"))
}

func TestRoomSortValue(t *testing.T) {
	cases := map[string]int{
		"1":    1,
		"10":   10,
		"3A":   3,
		"abc":  0,
		"":     0,
		"12-B": 12,
	}
	for number, want := range cases {
		room := Room{RoomNumber: number}
		assert.Equal(t, want, room.SortValue(), "room %q", number)
	}
}

func TestBookingOverlapsHalfOpen(t *testing.T) {
	b := Booking{
		CheckIn:  mustDate(2026, 3, 10),
		CheckOut: mustDate(2026, 3, 20),
	}

	assert.False(t, b.Overlaps(mustDate(2026, 3, 20), mustDate(2026, 3, 25)))
	assert.False(t, b.Overlaps(mustDate(2026, 3, 5), mustDate(2026, 3, 10)))
	assert.True(t, b.Overlaps(mustDate(2026, 3, 19), mustDate(2026, 3, 21)))
}
