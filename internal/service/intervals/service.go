package intervals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	intervalRepo "github.com/m04kA/Chalet-AvailabilityService/internal/infra/storage/interval"
	"github.com/m04kA/Chalet-AvailabilityService/internal/service/intervals/models"
)

// Service сервис для работы с интервалами доступности
// Отвечает за чтение, частичное обновление и удаление интервалов.
// Создание интервалов (с проверкой конфликтов) живет в отдельном use case
type Service struct {
	intervalRepo IntervalRepository
	chaletClient ChaletServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса интервалов
func NewService(
	intervalRepo IntervalRepository,
	chaletClient ChaletServiceClient,
	logger Logger,
) *Service {
	return &Service{
		intervalRepo: intervalRepo,
		chaletClient: chaletClient,
		logger:       logger,
	}
}

// GetByID получает интервал по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.IntervalResponse, error) {
	s.logger.Info("GetByID: fetching interval id=%d", id)

	interval, err := s.intervalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, intervalRepo.ErrIntervalNotFound) {
			s.logger.Warn("GetByID: interval id=%d not found", id)
			return nil, ErrIntervalNotFound
		}
		s.logger.Error("GetByID: repository error for interval id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched interval id=%d", id)
	return models.FromDomainInterval(interval), nil
}

// GetAll получает все интервалы всех шале с развернутыми данными шале
// Данные шале запрашиваются из ChaletService один раз на шале.
// При недоступности реестра интервалы возвращаются без данных шале -
// деградация не ломает чтение календаря
func (s *Service) GetAll(ctx context.Context) (*models.IntervalListResponse, error) {
	s.logger.Info("GetAll: fetching all intervals")

	intervals, err := s.intervalRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainIntervalList(intervals)

	// Разворачиваем данные шале с мемоизацией по chalet_id
	chalets := make(map[int64]*models.ChaletResponse)
	for i, interval := range intervals {
		chalet, ok := chalets[interval.ChaletID]
		if !ok {
			chalet = s.resolveChalet(ctx, interval.ChaletID)
			chalets[interval.ChaletID] = chalet
		}
		resp.Intervals[i].Chalet = chalet
	}

	s.logger.Info("GetAll: successfully fetched %d intervals", len(intervals))
	return resp, nil
}

// GetByChalet получает все интервалы указанного шале
// Возвращает пустой список, если интервалов нет (не ошибка)
func (s *Service) GetByChalet(ctx context.Context, chaletID int64) (*models.IntervalListResponse, error) {
	s.logger.Info("GetByChalet: fetching intervals for chalet=%d", chaletID)

	if chaletID <= 0 {
		return nil, fmt.Errorf("%w: chaletID must be positive", ErrInvalidInput)
	}

	intervals, err := s.intervalRepo.GetByChalet(ctx, chaletID)
	if err != nil {
		s.logger.Error("GetByChalet: repository error for chalet=%d: %v", chaletID, err)
		return nil, fmt.Errorf("%w: GetByChalet - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByChalet: successfully fetched %d intervals for chalet=%d", len(intervals), chaletID)
	return models.FromDomainIntervalList(intervals), nil
}

// Update частично обновляет интервал
// Если переданы новые даты, порядок start < end перепроверяется
// (непереданные даты берутся из сохраненного интервала).
//
// Проверка конфликтов с другими интервалами при обновлении НЕ выполняется -
// пересечения отклоняет только создание. Эта асимметрия сохранена намеренно
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateIntervalRequest) (*models.IntervalResponse, error) {
	s.logger.Info("Update: updating interval id=%d", id)

	// Получаем сохраненный интервал
	existing, err := s.intervalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, intervalRepo.ErrIntervalNotFound) {
			s.logger.Warn("Update: interval id=%d not found", id)
			return nil, ErrIntervalNotFound
		}
		s.logger.Error("Update: repository error for interval id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Сводим даты к новым значениям: непереданные сохраняют прежние
	newStart := existing.StartDate
	if req.StartDate != nil {
		newStart = *req.StartDate
	}
	newEnd := existing.EndDate
	if req.EndDate != nil {
		newEnd = *req.EndDate
	}

	// Перепроверяем порядок дат
	if !newEnd.After(newStart) {
		s.logger.Warn("Update: invalid range for interval id=%d: start=%s end=%s",
			id, newStart.Format(domain.DateFormat), newEnd.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	upd := domain.IntervalUpdate{
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		PricePerNight:    req.PricePerNight,
		Notes:            req.Notes,
		BookedBy:         req.BookedBy,
		BookingReference: req.BookingReference,
	}

	// Валидируем и конвертируем статус, если указан
	if req.Status != nil {
		status, err := models.ToDomainIntervalStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status=%s for interval id=%d", *req.Status, id)
			return nil, ErrInvalidStatus
		}
		upd.Status = &status
	}

	if upd.IsEmpty() {
		s.logger.Warn("Update: empty update for interval id=%d", id)
		return nil, fmt.Errorf("%w: update contains no fields", ErrInvalidInput)
	}

	updated, err := s.intervalRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, intervalRepo.ErrIntervalNotFound) {
			s.logger.Warn("Update: interval id=%d not found during update", id)
			return nil, ErrIntervalNotFound
		}
		s.logger.Error("Update: repository error for interval id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated interval id=%d", id)
	return models.FromDomainInterval(updated), nil
}

// Delete удаляет интервал
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting interval id=%d", id)

	if err := s.intervalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, intervalRepo.ErrIntervalNotFound) {
			s.logger.Warn("Delete: interval id=%d not found", id)
			return ErrIntervalNotFound
		}
		s.logger.Error("Delete: repository error for interval id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted interval id=%d", id)
	return nil
}

// resolveChalet получает данные шале из реестра
// При любой ошибке возвращает nil и логирует предупреждение
func (s *Service) resolveChalet(ctx context.Context, chaletID int64) *models.ChaletResponse {
	chalet, err := s.chaletClient.GetChalet(ctx, chaletID)
	if err != nil {
		s.logger.Warn("resolveChalet: failed to resolve chalet id=%d: %v", chaletID, err)
		return nil
	}

	return &models.ChaletResponse{
		ID:       chalet.ID,
		Name:     chalet.Name,
		Slug:     chalet.Slug,
		Location: chalet.Location,
		Capacity: chalet.Capacity,
		ImageURL: chalet.ImageURL,
	}
}
