package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий для работы с настройками бизнеса
// Настройки хранятся в двух таблицах: business_settings (интервал слотов)
// и business_hours (по одной строке на день недели)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID получает настройки бизнеса вместе с расписанием работы
// Возвращает ErrSettingsNotFound, если записи нет - дефолты применяет вызывающий слой
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"business_id",
		"slot_interval_minutes",
		"created_at",
		"updated_at",
	).
		From("business_settings").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.BusinessSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.BusinessID,
		&settings.SlotIntervalMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	weeklyHours, err := r.getWeeklyHours(ctx, executor, businessID)
	if err != nil {
		return nil, err
	}
	settings.WeeklyHours = weeklyHours

	return &settings, nil
}

// Upsert создает или обновляет настройки бизнеса и полностью заменяет расписание работы
// Должен вызываться внутри транзакции, чтобы замена строк расписания была атомарной
func (r *Repository) Upsert(ctx context.Context, settings *domain.BusinessSettings) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_settings").
		Columns("business_id", "slot_interval_minutes").
		Values(settings.BusinessID, settings.SlotIntervalMinutes).
		Suffix("ON CONFLICT (business_id) DO UPDATE SET slot_interval_minutes = EXCLUDED.slot_interval_minutes, updated_at = NOW()").
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	if err := r.replaceWeeklyHours(ctx, executor, settings.BusinessID, settings.WeeklyHours); err != nil {
		return nil, err
	}

	return settings, nil
}

// getWeeklyHours читает строки расписания и собирает WeeklyHours
// Отсутствующий день недели считается закрытым
func (r *Repository) getWeeklyHours(ctx context.Context, executor DBExecutor, businessID int64) (domain.WeeklyHours, error) {
	var hours domain.WeeklyHours

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
	).
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return hours, fmt.Errorf("%w: getWeeklyHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return hours, fmt.Errorf("%w: getWeeklyHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var day domain.DayHours
		var openTime, closeTime types.TimeString

		if err := rows.Scan(&weekday, &day.IsOpen, &openTime, &closeTime); err != nil {
			return hours, fmt.Errorf("%w: getWeeklyHours - scan row: %v", ErrScanRow, err)
		}

		if openTime != "" {
			day.OpenTime = &openTime
		}
		if closeTime != "" {
			day.CloseTime = &closeTime
		}

		setWeekdayHours(&hours, time.Weekday(weekday), day)
	}

	if err := rows.Err(); err != nil {
		return hours, fmt.Errorf("%w: getWeeklyHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// replaceWeeklyHours удаляет старые строки расписания и вставляет новые
func (r *Repository) replaceWeeklyHours(ctx context.Context, executor DBExecutor, businessID int64, hours domain.WeeklyHours) error {
	query, args, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: replaceWeeklyHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceWeeklyHours - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("business_id", "weekday", "is_open", "open_time", "close_time")

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := hours.ForWeekday(weekday)
		insertBuilder = insertBuilder.Values(businessID, int(weekday), day.IsOpen, day.OpenTime, day.CloseTime)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceWeeklyHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceWeeklyHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// setWeekdayHours записывает расписание дня в соответствующее поле WeeklyHours
func setWeekdayHours(hours *domain.WeeklyHours, weekday time.Weekday, day domain.DayHours) {
	switch weekday {
	case time.Monday:
		hours.Monday = day
	case time.Tuesday:
		hours.Tuesday = day
	case time.Wednesday:
		hours.Wednesday = day
	case time.Thursday:
		hours.Thursday = day
	case time.Friday:
		hours.Friday = day
	case time.Saturday:
		hours.Saturday = day
	case time.Sunday:
		hours.Sunday = day
	}
}
