package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
)

type DashboardRepositoryInterface interface {
	CountEquipmentByStatus(ctx context.Context) ([]dto.ChartPoint, error)
	CountTicketsByDay(ctx context.Context, since time.Time) ([]dto.ChartPoint, error)
	CountOpenTickets(ctx context.Context) (int64, error)
	CountNewAlerts(ctx context.Context) (int64, error)
	CountExpiringLicenses(ctx context.Context, deadline time.Time) (int64, error)
	CountUpcomingMaintenances(ctx context.Context, from, to time.Time) (int64, error)
	CountEquipment(ctx context.Context) (int64, error)
	CountEmployees(ctx context.Context) (int64, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) queryChart(ctx context.Context, query string, args ...any) ([]dto.ChartPoint, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []dto.ChartPoint
	for rows.Next() {
		var p dto.ChartPoint
		if err := rows.Scan(&p.Label, &p.Value); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *DashboardRepository) queryCount(ctx context.Context, builder sq.SelectBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DashboardRepository) CountEquipmentByStatus(ctx context.Context) ([]dto.ChartPoint, error) {
	return r.queryChart(ctx, `
		SELECT status, COUNT(*)
		FROM equipment
		GROUP BY status
		ORDER BY status`)
}

// CountTicketsByDay agrège les créations de tickets par jour depuis la
// date donnée. Les jours sans ticket ne produisent pas de ligne, c'est
// le service qui complète la série à zéro.
func (r *DashboardRepository) CountTicketsByDay(ctx context.Context, since time.Time) ([]dto.ChartPoint, error) {
	return r.queryChart(ctx, `
		SELECT TO_CHAR(created_at::date, 'YYYY-MM-DD'), COUNT(*)
		FROM tickets
		WHERE created_at >= $1
		GROUP BY created_at::date
		ORDER BY created_at::date`, since)
}

func (r *DashboardRepository) CountOpenTickets(ctx context.Context) (int64, error) {
	return r.queryCount(ctx, psql.Select("COUNT(*)").From("tickets").
		Where(sq.NotEq{"status": entities.TicketStatusClosed}))
}

func (r *DashboardRepository) CountNewAlerts(ctx context.Context) (int64, error) {
	return r.queryCount(ctx, psql.Select("COUNT(*)").From("alerts").
		Where(sq.Eq{"status": entities.AlertStatusNew}))
}

// CountExpiringLicenses compte les licences à échéance avant la date
// limite. Les licences déjà expirées comptent aussi: tant qu'elles sont
// dans le parc, elles réclament une action.
func (r *DashboardRepository) CountExpiringLicenses(ctx context.Context, deadline time.Time) (int64, error) {
	return r.queryCount(ctx, psql.Select("COUNT(*)").From("licenses").
		Where("expiry_date IS NOT NULL").
		Where(sq.LtOrEq{"expiry_date": deadline.Format("2006-01-02")}))
}

// upcomingMaintenanceQuery retient les interventions non clôturées qui
// chevauchent la fenêtre [from, to].
func upcomingMaintenanceQuery(from, to time.Time) sq.SelectBuilder {
	return psql.Select("COUNT(*)").From("maintenance_schedules").
		Where(sq.Eq{"status": []string{entities.MaintenanceStatusPlanned, entities.MaintenanceStatusInProgress}}).
		Where(sq.LtOrEq{"start_date": to.Format("2006-01-02")}).
		Where(sq.GtOrEq{"end_date": from.Format("2006-01-02")})
}

func (r *DashboardRepository) CountUpcomingMaintenances(ctx context.Context, from, to time.Time) (int64, error) {
	return r.queryCount(ctx, upcomingMaintenanceQuery(from, to))
}

func (r *DashboardRepository) CountEquipment(ctx context.Context) (int64, error) {
	return r.queryCount(ctx, psql.Select("COUNT(*)").From("equipment"))
}

func (r *DashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	return r.queryCount(ctx, psql.Select("COUNT(*)").From("employees"))
}
