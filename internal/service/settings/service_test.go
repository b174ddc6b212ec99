package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeSettingsRepo struct {
	settings *domain.BusinessSettings
	getErr   error
	upserted *domain.BusinessSettings
	upsErr   error
}

func (f *fakeSettingsRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.BusinessSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, settings *domain.BusinessSettings) (*domain.BusinessSettings, error) {
	if f.upsErr != nil {
		return nil, f.upsErr
	}
	f.upserted = settings
	return settings, nil
}

type fakeTxManager struct {
	doCalls int
	err     error
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.doCalls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openWeek() models.WeeklyHoursModel {
	workday := models.DayHoursModel{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("18:00"),
	}
	closed := models.DayHoursModel{IsOpen: false}
	return models.WeeklyHoursModel{
		Monday:    workday,
		Tuesday:   workday,
		Wednesday: workday,
		Thursday:  workday,
		Friday:    workday,
		Saturday:  closed,
		Sunday:    closed,
	}
}

func TestService_Get(t *testing.T) {
	t.Run("existing settings", func(t *testing.T) {
		openTime := types.TimeString("10:00")
		closeTime := types.TimeString("20:00")
		repo := &fakeSettingsRepo{settings: &domain.BusinessSettings{
			BusinessID:          1,
			SlotIntervalMinutes: 15,
			WeeklyHours: domain.WeeklyHours{
				Monday: domain.DayHours{IsOpen: true, OpenTime: &openTime, CloseTime: &closeTime},
			},
		}}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		resp, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.BusinessID)
		assert.Equal(t, 15, resp.SlotIntervalMinutes)
		require.NotNil(t, resp.WeeklyHours.Monday.OpenTime)
		assert.Equal(t, "10:00", *resp.WeeklyHours.Monday.OpenTime)
		assert.False(t, resp.WeeklyHours.Sunday.IsOpen)
	})

	t.Run("missing record returns defaults", func(t *testing.T) {
		repo := &fakeSettingsRepo{getErr: settingsRepo.ErrSettingsNotFound}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		resp, err := svc.Get(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.BusinessID)
		assert.Equal(t, domain.DefaultSlotIntervalMinutes, resp.SlotIntervalMinutes)
		assert.True(t, resp.WeeklyHours.Monday.IsOpen)
		assert.False(t, resp.WeeklyHours.Saturday.IsOpen)
		require.NotNil(t, resp.WeeklyHours.Friday.CloseTime)
		assert.Equal(t, "18:00", *resp.WeeklyHours.Friday.CloseTime)
	})

	t.Run("invalid business id", func(t *testing.T) {
		svc := NewService(&fakeSettingsRepo{}, &fakeTxManager{}, nopLogger{})
		_, err := svc.Get(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &fakeSettingsRepo{getErr: errors.New("connection refused")}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		_, err := svc.Get(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_Update(t *testing.T) {
	validReq := func() *models.UpdateSettingsRequest {
		return &models.UpdateSettingsRequest{
			UserID:              10,
			BusinessID:          1,
			SlotIntervalMinutes: 30,
			WeeklyHours:         openWeek(),
		}
	}

	t.Run("success runs inside transaction", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		txMgr := &fakeTxManager{}
		svc := NewService(repo, txMgr, nopLogger{})

		resp, err := svc.Update(context.Background(), validReq())
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.BusinessID)
		assert.Equal(t, 30, resp.SlotIntervalMinutes)
		assert.Equal(t, 1, txMgr.doCalls)
		require.NotNil(t, repo.upserted)
		assert.Equal(t, 30, repo.upserted.SlotIntervalMinutes)
		assert.True(t, repo.upserted.WeeklyHours.Monday.IsOpen)
	})

	t.Run("interval below minimum", func(t *testing.T) {
		req := validReq()
		req.SlotIntervalMinutes = 1
		svc := NewService(&fakeSettingsRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("interval above maximum", func(t *testing.T) {
		req := validReq()
		req.SlotIntervalMinutes = 1000
		svc := NewService(&fakeSettingsRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("open day without times", func(t *testing.T) {
		req := validReq()
		req.WeeklyHours.Monday = models.DayHoursModel{IsOpen: true}
		svc := NewService(&fakeSettingsRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("open time after close time", func(t *testing.T) {
		req := validReq()
		req.WeeklyHours.Monday = models.DayHoursModel{
			IsOpen:    true,
			OpenTime:  ptr.Ptr("18:00"),
			CloseTime: ptr.Ptr("09:00"),
		}
		svc := NewService(&fakeSettingsRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed time string", func(t *testing.T) {
		req := validReq()
		req.WeeklyHours.Friday.OpenTime = ptr.Ptr("9am")
		svc := NewService(&fakeSettingsRepo{}, &fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &fakeSettingsRepo{upsErr: errors.New("deadlock detected")}
		svc := NewService(repo, &fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), validReq())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
