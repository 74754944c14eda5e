package services

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parc-info/internal/dto"
)

type stubDashboardRepo struct {
	ticketPoints []dto.ChartPoint
	maintFrom    time.Time
	maintTo      time.Time
}

func (s *stubDashboardRepo) CountEquipmentByStatus(ctx context.Context) ([]dto.ChartPoint, error) {
	return nil, nil
}

func (s *stubDashboardRepo) CountTicketsByDay(ctx context.Context, since time.Time) ([]dto.ChartPoint, error) {
	return s.ticketPoints, nil
}

func (s *stubDashboardRepo) CountOpenTickets(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubDashboardRepo) CountNewAlerts(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubDashboardRepo) CountExpiringLicenses(ctx context.Context, deadline time.Time) (int64, error) {
	return 0, nil
}

func (s *stubDashboardRepo) CountUpcomingMaintenances(ctx context.Context, from, to time.Time) (int64, error) {
	s.maintFrom, s.maintTo = from, to
	return 0, nil
}

func (s *stubDashboardRepo) CountEquipment(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubDashboardRepo) CountEmployees(ctx context.Context) (int64, error) { return 0, nil }

// Un client qui ne joint jamais redis: le service doit s'en accommoder
// et recalculer à chaque appel.
func newOfflineCache() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
}

func TestGetStatsZeroFillsTicketSeries(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	threeDaysAgo := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	repo := &stubDashboardRepo{ticketPoints: []dto.ChartPoint{
		{Label: threeDaysAgo, Value: 2},
		{Label: today, Value: 1},
	}}
	svc := NewDashboardService(repo, newOfflineCache(), time.Second, zap.NewNop())

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.TicketsByDay, ticketChartDays)

	byLabel := make(map[string]int64)
	zeros := 0
	for _, p := range stats.TicketsByDay {
		byLabel[p.Label] = p.Value
		if p.Value == 0 {
			zeros++
		}
	}
	assert.Equal(t, int64(2), byLabel[threeDaysAgo])
	assert.Equal(t, int64(1), byLabel[today])
	assert.Equal(t, ticketChartDays-2, zeros)
	assert.Equal(t, today, stats.TicketsByDay[ticketChartDays-1].Label)
}

func TestFillDailySeriesCoversWholeWindow(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	series := fillDailySeries([]dto.ChartPoint{{Label: "2026-08-03", Value: 4}}, start, 5)

	require.Len(t, series, 5)
	assert.Equal(t, dto.ChartPoint{Label: "2026-08-01", Value: 0}, series[0])
	assert.Equal(t, dto.ChartPoint{Label: "2026-08-03", Value: 4}, series[2])
	assert.Equal(t, dto.ChartPoint{Label: "2026-08-05", Value: 0}, series[4])
}

func TestGetStatsBoundsMaintenanceWindow(t *testing.T) {
	repo := &stubDashboardRepo{}
	svc := NewDashboardService(repo, newOfflineCache(), time.Second, zap.NewNop())

	_, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(maintenanceWindowDays*24), repo.maintTo.Sub(repo.maintFrom).Hours())
}
