package interval

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/psqlbuilder"
)

// intervalColumns колонки таблицы availability_intervals в порядке сканирования
var intervalColumns = []string{
	"id",
	"chalet_id",
	"start_date",
	"end_date",
	"status",
	"price_per_night",
	"notes",
	"booked_by",
	"booking_reference",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с интервалами доступности
// Не содержит бизнес-валидации: инвариант непересечения интервалов
// обеспечивается на уровне use case
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория интервалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый интервал доступности
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
func (r *Repository) Create(ctx context.Context, interval *domain.AvailabilityInterval) (*domain.AvailabilityInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_intervals").
		Columns(
			"chalet_id",
			"start_date",
			"end_date",
			"status",
			"price_per_night",
			"notes",
			"booked_by",
			"booking_reference",
		).
		Values(
			interval.ChaletID,
			interval.StartDate,
			interval.EndDate,
			interval.Status,
			interval.PricePerNight,
			interval.Notes,
			interval.BookedBy,
			interval.BookingReference,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&interval.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	interval.CreatedAt = createdAt.Time
	interval.UpdatedAt = updatedAt.Time

	return interval, nil
}

// GetByID получает интервал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(intervalColumns...).
		From("availability_intervals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	interval, err := r.scanInterval(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrIntervalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan interval: %v", ErrScanRow, err)
	}

	return interval, nil
}

// GetAll получает все интервалы всех шале
// Порядок: по шале, затем по дате начала
func (r *Repository) GetAll(ctx context.Context) ([]*domain.AvailabilityInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(intervalColumns...).
		From("availability_intervals").
		OrderBy("chalet_id ASC", "start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanIntervals(rows)
}

// GetByChalet получает все интервалы указанного шале
func (r *Repository) GetByChalet(ctx context.Context, chaletID int64) ([]*domain.AvailabilityInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(intervalColumns...).
		From("availability_intervals").
		Where(squirrel.Eq{"chalet_id": chaletID}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByChalet - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByChalet - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanIntervals(rows)
}

// GetWithFilter получает интервалы шале с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Статусу (Status) - опционально
// - Дате начала окна (StartDate): интервалы с end_date >= StartDate
// - Дате конца окна (EndDate): интервалы с start_date <= EndDate
// Фильтры окна комбинируются конъюнктивно: выбираются интервалы,
// пересекающие запрошенное окно
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.IntervalFilter) ([]*domain.AvailabilityInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(intervalColumns...).
		From("availability_intervals").
		Where(squirrel.Eq{"chalet_id": filter.ChaletID})

	// Фильтрация по статусу, если указан
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	// Фильтрация по окну дат
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.EndDate})
	}

	selectBuilder = selectBuilder.OrderBy("start_date ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanIntervals(rows)
}

// GetOverlapping получает интервалы шале, пересекающиеся с [start, end]
// Границы включительные: интервал, заканчивающийся ровно в start,
// считается пересекающимся
//
// Используется use case создания интервала для проверки конфликтов.
// Внутри транзакции добавляет FOR UPDATE для блокировки конкурирующих вставок
func (r *Repository) GetOverlapping(ctx context.Context, chaletID int64, start, end time.Time) ([]*domain.AvailabilityInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(intervalColumns...).
		From("availability_intervals").
		Where(squirrel.Eq{"chalet_id": chaletID}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanIntervals(rows)
}

// Update частично обновляет интервал
// nil поля остаются без изменений
func (r *Repository) Update(ctx context.Context, id int64, upd domain.IntervalUpdate) (*domain.AvailabilityInterval, error) {
	if upd.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("availability_intervals").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.StartDate != nil {
		updateBuilder = updateBuilder.Set("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		updateBuilder = updateBuilder.Set("end_date", *upd.EndDate)
	}
	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", *upd.Status)
	}
	if upd.PricePerNight != nil {
		updateBuilder = updateBuilder.Set("price_per_night", *upd.PricePerNight)
	}
	if upd.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *upd.Notes)
	}
	if upd.BookedBy != nil {
		updateBuilder = updateBuilder.Set("booked_by", *upd.BookedBy)
	}
	if upd.BookingReference != nil {
		updateBuilder = updateBuilder.Set("booking_reference", *upd.BookingReference)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + joinColumns(intervalColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	interval, err := r.scanInterval(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrIntervalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan interval: %v", ErrScanRow, err)
	}

	return interval, nil
}

// Delete удаляет интервал (физическое удаление)
// Каскадных эффектов нет - на интервал не ссылаются другие сущности
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_intervals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrIntervalNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanInterval сканирует одну строку в доменную модель
func (r *Repository) scanInterval(row rowScanner) (*domain.AvailabilityInterval, error) {
	var interval domain.AvailabilityInterval
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&interval.ID,
		&interval.ChaletID,
		&interval.StartDate,
		&interval.EndDate,
		&interval.Status,
		&interval.PricePerNight,
		&interval.Notes,
		&interval.BookedBy,
		&interval.BookingReference,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	interval.CreatedAt = createdAt.Time
	interval.UpdatedAt = updatedAt.Time

	return &interval, nil
}

// scanIntervals сканирует результаты запроса в слайс интервалов
func (r *Repository) scanIntervals(rows *sql.Rows) ([]*domain.AvailabilityInterval, error) {
	intervals := make([]*domain.AvailabilityInterval, 0)

	for rows.Next() {
		interval, err := r.scanInterval(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanIntervals - scan row: %v", ErrScanRow, err)
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// joinColumns собирает список колонок для RETURNING
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
