package booking

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func TestBookedSlotsQuery_OnlyActiveStatuses(t *testing.T) {
	employeeID := uuid.MustParse("8f14e45f-ceea-467f-a0e6-8d2b5c5f6b11")
	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)

	query, args, err := bookedSlotsQuery(employeeID, date).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT booking_time FROM bookings WHERE employee_id = $1 AND booking_date = $2 AND status IN ($3,$4) ORDER BY booking_time ASC",
		query)
	assert.Equal(t, []string{employeeID.String(), "2026-10-21", "pending", "confirmed"}, argStrings(args))
	assert.NotContains(t, args, "cancelled")
}

func TestListByBusinessQuery(t *testing.T) {
	businessID := uuid.New()

	query, args, err := listByBusinessQuery(domain.BusinessBookingsFilter{BusinessID: businessID}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE b.business_id = $1 ORDER BY b.booking_date DESC, b.booking_time DESC")
	assert.Equal(t, []string{businessID.String()}, argStrings(args))

	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	status := domain.StatusConfirmed
	query, args, err = listByBusinessQuery(domain.BusinessBookingsFilter{
		BusinessID: businessID,
		Date:       &date,
		Status:     &status,
	}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "b.business_id = $1 AND b.booking_date = $2 AND b.status = $3")
	assert.Equal(t, []string{businessID.String(), "2026-10-21", "confirmed"}, argStrings(args))
}

func TestUpdateQuery(t *testing.T) {
	id := uuid.New()

	query, args, err := updateQuery(id, domain.BookingUpdate{
		Status: ptr.Ptr(domain.StatusCompleted),
		Notes:  ptr.Ptr("paid in cash"),
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE bookings SET status = $1, notes = $2 WHERE id = $3", query)
	assert.Equal(t, []string{"completed", "paid in cash", id.String()}, argStrings(args))
}

// argStrings приводит аргументы запроса к строкам: squirrel.Eq раскрывает driver.Valuer (uuid) в строку
func argStrings(args []interface{}) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = fmt.Sprint(a)
	}
	return out
}
