package intervals

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	intervalRepo "github.com/m04kA/Chalet-AvailabilityService/internal/infra/storage/interval"
	"github.com/m04kA/Chalet-AvailabilityService/internal/integrations/chaletservice"
	"github.com/m04kA/Chalet-AvailabilityService/internal/service/intervals/models"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/ptr"
)

// fakeRepo in-memory репозиторий для тестов
type fakeRepo struct {
	intervals map[int64]*domain.AvailabilityInterval

	overlappingCalls int
}

func newFakeRepo(existing ...*domain.AvailabilityInterval) *fakeRepo {
	f := &fakeRepo{intervals: make(map[int64]*domain.AvailabilityInterval)}
	for _, i := range existing {
		f.intervals[i.ID] = i
	}
	return f
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilityInterval, error) {
	if i, ok := f.intervals[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, intervalRepo.ErrIntervalNotFound
}

func (f *fakeRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(f.intervals))
	for id := range f.intervals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

func (f *fakeRepo) GetAll(_ context.Context) ([]*domain.AvailabilityInterval, error) {
	result := make([]*domain.AvailabilityInterval, 0, len(f.intervals))
	for _, id := range f.sortedIDs() {
		result = append(result, f.intervals[id])
	}
	return result, nil
}

func (f *fakeRepo) GetByChalet(_ context.Context, chaletID int64) ([]*domain.AvailabilityInterval, error) {
	result := make([]*domain.AvailabilityInterval, 0)
	for _, id := range f.sortedIDs() {
		if i := f.intervals[id]; i.ChaletID == chaletID {
			result = append(result, i)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetOverlapping(_ context.Context, chaletID int64, start, end time.Time) ([]*domain.AvailabilityInterval, error) {
	f.overlappingCalls++

	var result []*domain.AvailabilityInterval
	for _, i := range f.intervals {
		if i.ChaletID == chaletID && i.Overlaps(start, end) {
			result = append(result, i)
		}
	}
	return result, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, upd domain.IntervalUpdate) (*domain.AvailabilityInterval, error) {
	i, ok := f.intervals[id]
	if !ok {
		return nil, intervalRepo.ErrIntervalNotFound
	}

	if upd.StartDate != nil {
		i.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		i.EndDate = *upd.EndDate
	}
	if upd.Status != nil {
		i.Status = *upd.Status
	}
	if upd.PricePerNight != nil {
		i.PricePerNight = upd.PricePerNight
	}
	if upd.Notes != nil {
		i.Notes = upd.Notes
	}
	if upd.BookedBy != nil {
		i.BookedBy = upd.BookedBy
	}
	if upd.BookingReference != nil {
		i.BookingReference = upd.BookingReference
	}
	i.UpdatedAt = time.Now()

	cp := *i
	return &cp, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.intervals[id]; !ok {
		return intervalRepo.ErrIntervalNotFound
	}
	delete(f.intervals, id)
	return nil
}

// fakeChaletClient возвращает шале из предзаполненной карты
type fakeChaletClient struct {
	chalets map[int64]*chaletservice.Chalet

	calls int
}

func (f *fakeChaletClient) GetChalet(_ context.Context, chaletID int64) (*chaletservice.Chalet, error) {
	f.calls++

	if c, ok := f.chalets[chaletID]; ok {
		return c, nil
	}
	return nil, chaletservice.ErrChaletNotFound
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo(&domain.AvailabilityInterval{
		ID:        1,
		ChaletID:  1,
		StartDate: date(2024, 12, 20),
		EndDate:   date(2024, 12, 27),
		Status:    domain.StatusBooked,
	})
	svc := NewService(repo, &fakeChaletClient{}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2024-12-20", resp.StartDate)
	assert.Equal(t, "2024-12-27", resp.EndDate)
	assert.Equal(t, "booked", resp.Status)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrIntervalNotFound)
}

func TestGetAll_ExpandsChalets(t *testing.T) {
	repo := newFakeRepo(
		&domain.AvailabilityInterval{ID: 1, ChaletID: 1, StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 10), Status: domain.StatusAvailable},
		&domain.AvailabilityInterval{ID: 2, ChaletID: 1, StartDate: date(2024, 12, 11), EndDate: date(2024, 12, 19), Status: domain.StatusBooked},
		&domain.AvailabilityInterval{ID: 3, ChaletID: 2, StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 31), Status: domain.StatusAvailable},
	)
	client := &fakeChaletClient{chalets: map[int64]*chaletservice.Chalet{
		1: {ID: 1, Name: "Альпийская долина", Slug: "alpine-valley", Location: "Куршевель", Capacity: 8},
		2: {ID: 2, Name: "Горный приют", Slug: "mountain-lodge", Location: "Шамони", Capacity: 4},
	}}
	svc := NewService(repo, client, noopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Intervals, 3)

	require.NotNil(t, resp.Intervals[0].Chalet)
	assert.Equal(t, "Альпийская долина", resp.Intervals[0].Chalet.Name)
	require.NotNil(t, resp.Intervals[2].Chalet)
	assert.Equal(t, "Горный приют", resp.Intervals[2].Chalet.Name)

	// Данные шале запрашиваются один раз на шале, а не на интервал
	assert.Equal(t, 2, client.calls)
}

func TestGetAll_DegradesWithoutChaletService(t *testing.T) {
	repo := newFakeRepo(
		&domain.AvailabilityInterval{ID: 1, ChaletID: 1, StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 10), Status: domain.StatusAvailable},
	)
	// Реестр не знает шале - интервалы возвращаются без данных шале
	svc := NewService(repo, &fakeChaletClient{}, noopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Intervals, 1)
	assert.Nil(t, resp.Intervals[0].Chalet)
}

func TestGetByChalet(t *testing.T) {
	repo := newFakeRepo(
		&domain.AvailabilityInterval{ID: 1, ChaletID: 1, StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 10), Status: domain.StatusAvailable},
		&domain.AvailabilityInterval{ID: 2, ChaletID: 2, StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 31), Status: domain.StatusAvailable},
	)
	svc := NewService(repo, &fakeChaletClient{}, noopLogger{})

	resp, err := svc.GetByChalet(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Intervals, 1)
	assert.Equal(t, int64(1), resp.Intervals[0].ID)

	// Пустой календарь - не ошибка
	resp, err = svc.GetByChalet(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, resp.Intervals)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newFakeRepo(&domain.AvailabilityInterval{
		ID:        1,
		ChaletID:  1,
		StartDate: date(2024, 12, 20),
		EndDate:   date(2024, 12, 27),
		Status:    domain.StatusAvailable,
	})
	svc := NewService(repo, &fakeChaletClient{}, noopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{
		Status:   ptr.Ptr("booked"),
		BookedBy: ptr.Ptr("Анна Смирнова"),
	})

	require.NoError(t, err)
	assert.Equal(t, "booked", resp.Status)
	assert.Equal(t, "Анна Смирнова", *resp.BookedBy)
	// Непереданные даты сохраняются
	assert.Equal(t, "2024-12-20", resp.StartDate)
	assert.Equal(t, "2024-12-27", resp.EndDate)
}

func TestUpdate_RevalidatesDateOrder(t *testing.T) {
	repo := newFakeRepo(&domain.AvailabilityInterval{
		ID:        1,
		ChaletID:  1,
		StartDate: date(2024, 12, 20),
		EndDate:   date(2024, 12, 27),
		Status:    domain.StatusAvailable,
	})
	svc := NewService(repo, &fakeChaletClient{}, noopLogger{})

	// Новое начало позже сохраненного конца
	_, err := svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{
		StartDate: ptr.Ptr(date(2024, 12, 30)),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Новый конец раньше сохраненного начала
	_, err = svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{
		EndDate: ptr.Ptr(date(2024, 12, 15)),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Обе даты в правильном порядке
	resp, err := svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{
		StartDate: ptr.Ptr(date(2025, 1, 5)),
		EndDate:   ptr.Ptr(date(2025, 1, 12)),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", resp.StartDate)
	assert.Equal(t, "2025-01-12", resp.EndDate)
}

func TestUpdate_DoesNotCheckConflicts(t *testing.T) {
	// Два интервала одного шале; обновление двигает первый поверх второго
	repo := newFakeRepo(
		&domain.AvailabilityInterval{ID: 1, ChaletID: 1, StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 10), Status: domain.StatusAvailable},
		&domain.AvailabilityInterval{ID: 2, ChaletID: 1, StartDate: date(2024, 12, 15), EndDate: date(2024, 12, 22), Status: domain.StatusBooked},
	)
	svc := NewService(repo, &fakeChaletClient{}, noopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{
		EndDate: ptr.Ptr(date(2024, 12, 20)),
	})

	// Пересечения отклоняет только создание - обновление проходит
	require.NoError(t, err)
	assert.Equal(t, "2024-12-20", resp.EndDate)
	assert.Equal(t, 0, repo.overlappingCalls)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	repo := newFakeRepo(&domain.AvailabilityInterval{
		ID:        1,
		ChaletID:  1,
		StartDate: date(2024, 12, 20),
		EndDate:   date(2024, 12, 27),
		Status:    domain.StatusAvailable,
	})
	svc := NewService(repo, &fakeChaletClient{}, noopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{
		Status: ptr.Ptr("pending"),
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdate_EmptyUpdate(t *testing.T) {
	repo := newFakeRepo(&domain.AvailabilityInterval{
		ID:        1,
		ChaletID:  1,
		StartDate: date(2024, 12, 20),
		EndDate:   date(2024, 12, 27),
		Status:    domain.StatusAvailable,
	})
	svc := NewService(repo, &fakeChaletClient{}, noopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateIntervalRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeChaletClient{}, noopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateIntervalRequest{
		Status: ptr.Ptr("blocked"),
	})

	assert.ErrorIs(t, err, ErrIntervalNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(&domain.AvailabilityInterval{
		ID:        1,
		ChaletID:  1,
		StartDate: date(2024, 12, 20),
		EndDate:   date(2024, 12, 27),
		Status:    domain.StatusAvailable,
	})
	svc := NewService(repo, &fakeChaletClient{}, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrIntervalNotFound)
}
