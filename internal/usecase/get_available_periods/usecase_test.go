package get_available_periods

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/ptr"
)

// fakeRepo применяет фильтр к набору интервалов в памяти
type fakeRepo struct {
	intervals []*domain.AvailabilityInterval

	lastFilter domain.IntervalFilter
}

func (f *fakeRepo) GetWithFilter(_ context.Context, filter domain.IntervalFilter) ([]*domain.AvailabilityInterval, error) {
	f.lastFilter = filter

	var result []*domain.AvailabilityInterval
	for _, i := range f.intervals {
		if i.ChaletID != filter.ChaletID {
			continue
		}
		if filter.Status != nil && i.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && i.EndDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && i.StartDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, i)
	}
	return result, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func calendarFixture() []*domain.AvailabilityInterval {
	return []*domain.AvailabilityInterval{
		{
			ID:            1,
			ChaletID:      1,
			StartDate:     date(2024, 12, 1),
			EndDate:       date(2024, 12, 10),
			Status:        domain.StatusAvailable,
			PricePerNight: ptr.Ptr(200.0),
		},
		{
			ID:        2,
			ChaletID:  1,
			StartDate: date(2024, 12, 11),
			EndDate:   date(2024, 12, 19),
			Status:    domain.StatusBooked,
		},
		{
			ID:        3,
			ChaletID:  1,
			StartDate: date(2024, 12, 20),
			EndDate:   date(2024, 12, 31),
			Status:    domain.StatusAvailable,
		},
		{
			ID:        4,
			ChaletID:  2,
			StartDate: date(2024, 12, 1),
			EndDate:   date(2024, 12, 31),
			Status:    domain.StatusAvailable,
		},
	}
}

func TestExecute_FiltersAvailableOnly(t *testing.T) {
	repo := &fakeRepo{intervals: calendarFixture()}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ChaletID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ChaletID)
	// Забронированный интервал и чужое шале не попадают в ответ
	require.Len(t, resp.Periods, 2)
	assert.Equal(t, int64(1), resp.Periods[0].ID)
	assert.Equal(t, int64(3), resp.Periods[1].ID)
	assert.Equal(t, 200.0, *resp.Periods[0].PricePerNight)

	// Репозиторий получает фильтр по статусу available
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusAvailable, *repo.lastFilter.Status)
}

func TestExecute_WindowStartCutsEarlyPeriods(t *testing.T) {
	repo := &fakeRepo{intervals: calendarFixture()}
	uc := NewUseCase(repo, noopLogger{})

	// Окно с 05.12: первый период дотягивается до окна (end_date >= 05.12)
	resp, err := uc.Execute(context.Background(), &Request{
		ChaletID:  1,
		StartDate: ptr.Ptr(date(2024, 12, 5)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Periods, 2)
	assert.Equal(t, int64(1), resp.Periods[0].ID)
	assert.Equal(t, int64(3), resp.Periods[1].ID)

	// Окно с 15.12: первый период уже закончился
	resp, err = uc.Execute(context.Background(), &Request{
		ChaletID:  1,
		StartDate: ptr.Ptr(date(2024, 12, 15)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Periods, 1)
	assert.Equal(t, int64(3), resp.Periods[0].ID)
}

func TestExecute_WindowEndCutsLatePeriods(t *testing.T) {
	repo := &fakeRepo{intervals: calendarFixture()}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ChaletID: 1,
		EndDate:  ptr.Ptr(date(2024, 12, 15)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Periods, 1)
	assert.Equal(t, int64(1), resp.Periods[0].ID)
}

func TestExecute_EmptyResultIsNotError(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ChaletID: 42})

	require.NoError(t, err)
	assert.NotNil(t, resp.Periods)
	assert.Empty(t, resp.Periods)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ChaletID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ChaletID:  1,
		StartDate: ptr.Ptr(date(2024, 12, 20)),
		EndDate:   ptr.Ptr(date(2024, 12, 10)),
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
