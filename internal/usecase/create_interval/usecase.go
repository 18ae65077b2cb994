package create_interval

import (
	"context"
	"fmt"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
)

// UseCase use case для создания интервала доступности
// Единственная точка, где обеспечивается инвариант: интервалы одного шале
// не пересекаются. Проверка пересечения и вставка выполняются в одной
// сериализуемой транзакции, чтобы исключить гонку check-then-insert
// между конкурентными запросами
type UseCase struct {
	intervalRepo IntervalRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	intervalRepo IntervalRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		intervalRepo: intervalRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateInterval: chalet=%d, start=%s, end=%s",
		req.ChaletID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateInterval: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.AvailabilityInterval

	// 2. Проверка конфликтов и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем пересечение с существующими интервалами шале
		// Границы включительные: интервал, начинающийся в день окончания
		// существующего, считается конфликтом
		overlapping, err := uc.intervalRepo.GetOverlapping(txCtx, req.ChaletID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("CreateInterval: failed to check overlapping intervals: %v", err)
			return fmt.Errorf("%w: failed to check overlapping intervals: %v", ErrInternal, err)
		}

		// Вызывающему сообщается только факт конфликта, без списка интервалов
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateInterval: conflict for chalet=%d, %d overlapping interval(s)",
				req.ChaletID, len(overlapping))
			return ErrIntervalConflict
		}

		// 2.2. Создаем интервал
		interval := &domain.AvailabilityInterval{
			ChaletID:         req.ChaletID,
			StartDate:        req.StartDate,
			EndDate:          req.EndDate,
			Status:           resolveStatus(req),
			PricePerNight:    req.PricePerNight,
			Notes:            req.Notes,
			BookedBy:         req.BookedBy,
			BookingReference: req.BookingReference,
		}

		created, err := uc.intervalRepo.Create(txCtx, interval)
		if err != nil {
			uc.logger.Error("CreateInterval: failed to create interval: %v", err)
			return fmt.Errorf("%w: failed to create interval: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateInterval: successfully created interval id=%d for chalet=%d",
		result.ID, result.ChaletID)

	// Конвертируем в response
	return &Response{
		ID:               result.ID,
		ChaletID:         result.ChaletID,
		StartDate:        result.StartDate,
		EndDate:          result.EndDate,
		Status:           string(result.Status),
		PricePerNight:    result.PricePerNight,
		Notes:            result.Notes,
		BookedBy:         result.BookedBy,
		BookingReference: result.BookingReference,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}
