package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

const table = "schedule_settings"

// Repository репозиторий настроек расписания компаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCompany получает сохраненные настройки компании.
// working_days и working_hours возвращаются как есть: нормализация выполняется при каждом чтении.
func (r *Repository) GetByCompany(ctx context.Context, companyID int64) (*domain.ScheduleSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"working_days",
		"working_hours",
		"lead_time_minutes",
		"buffer_minutes",
		"travel_minutes",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.ScheduleSettings
	var workingDays, workingHours []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.CompanyID,
		&workingDays,
		&workingHours,
		&settings.LeadTimeMinutes,
		&settings.BufferMinutes,
		&settings.TravelMinutes,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - scan settings: %v", ErrScanRow, err)
	}

	settings.WorkingDays = workingDays
	settings.WorkingHours = workingHours
	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Upsert создает или перезаписывает настройки компании (последняя запись побеждает)
func (r *Repository) Upsert(ctx context.Context, settings *domain.ScheduleSettings) (*domain.ScheduleSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsertQuery(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}

func buildUpsertQuery(settings *domain.ScheduleSettings) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns(
			"company_id",
			"working_days",
			"working_hours",
			"lead_time_minutes",
			"buffer_minutes",
			"travel_minutes",
		).
		Values(
			settings.CompanyID,
			jsonParam(settings.WorkingDays),
			jsonParam(settings.WorkingHours),
			settings.LeadTimeMinutes,
			settings.BufferMinutes,
			settings.TravelMinutes,
		).
		Suffix(`ON CONFLICT (company_id) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			working_hours = EXCLUDED.working_hours,
			lead_time_minutes = EXCLUDED.lead_time_minutes,
			buffer_minutes = EXCLUDED.buffer_minutes,
			travel_minutes = EXCLUDED.travel_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
}

// jsonParam передает JSONB как текст, пустое значение как NULL
func jsonParam(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
