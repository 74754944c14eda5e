package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"parc-info/internal/dto"
	"parc-info/internal/repositories"
)

const (
	dashboardCacheKey      = "dashboard:stats"
	ticketChartDays        = 14
	licenseExpiryHorizonNb = 30
	maintenanceWindowDays  = 7
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	InvalidateCache(ctx context.Context)
}

type DashboardService struct {
	repo     repositories.DashboardRepositoryInterface
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewDashboardService(
	repo repositories.DashboardRepositoryInterface,
	cache *redis.Client,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// GetStats sert les statistiques depuis redis quand l'entrée est encore
// fraîche, sinon recalcule et remet en cache. Une panne du cache n'est
// jamais bloquante: on recalcule.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if cached, err := s.cache.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
		var stats dto.DashboardStatsDTO
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	} else if err != redis.Nil {
		s.logger.Warn("lecture du cache tableau de bord échouée", zap.Error(err))
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
			s.logger.Warn("écriture du cache tableau de bord échouée", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *DashboardService) computeStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	chartStart := startOfDay(now.AddDate(0, 0, -(ticketChartDays - 1)))

	equipmentByStatus, err := s.repo.CountEquipmentByStatus(ctx)
	if err != nil {
		return nil, err
	}
	rawTickets, err := s.repo.CountTicketsByDay(ctx, chartStart)
	if err != nil {
		return nil, err
	}
	openTickets, err := s.repo.CountOpenTickets(ctx)
	if err != nil {
		return nil, err
	}
	newAlerts, err := s.repo.CountNewAlerts(ctx)
	if err != nil {
		return nil, err
	}
	expiringLicenses, err := s.repo.CountExpiringLicenses(ctx, now.AddDate(0, 0, licenseExpiryHorizonNb))
	if err != nil {
		return nil, err
	}
	upcoming, err := s.repo.CountUpcomingMaintenances(ctx, now, now.AddDate(0, 0, maintenanceWindowDays))
	if err != nil {
		return nil, err
	}
	totalEquipment, err := s.repo.CountEquipment(ctx)
	if err != nil {
		return nil, err
	}
	totalEmployees, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsDTO{
		EquipmentByStatus:    equipmentByStatus,
		TicketsByDay:         fillDailySeries(rawTickets, chartStart, ticketChartDays),
		OpenTickets:          openTickets,
		NewAlerts:            newAlerts,
		ExpiringLicenses:     expiringLicenses,
		UpcomingMaintenances: upcoming,
		TotalEquipment:       totalEquipment,
		TotalEmployees:       totalEmployees,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// fillDailySeries produit un point par jour sur toute la fenêtre, les
// jours absents de la série SQL sortant à zéro.
func fillDailySeries(points []dto.ChartPoint, start time.Time, days int) []dto.ChartPoint {
	counts := make(map[string]int64, len(points))
	for _, p := range points {
		counts[p.Label] = p.Value
	}
	series := make([]dto.ChartPoint, 0, days)
	for i := 0; i < days; i++ {
		label := start.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, dto.ChartPoint{Label: label, Value: counts[label]})
	}
	return series
}

func (s *DashboardService) InvalidateCache(ctx context.Context) {
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.logger.Warn("invalidation du cache tableau de bord échouée", zap.Error(err))
	}
}
