package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingMaintenanceQueryBoundsDates(t *testing.T) {
	from := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	query, args, err := upcomingMaintenanceQuery(from, to).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "start_date <=")
	assert.Contains(t, query, "end_date >=")
	assert.Contains(t, args, "2026-09-07")
	assert.Contains(t, args, "2026-08-31")
}
