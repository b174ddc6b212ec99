package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
)

// Service сервис для работы с настройками бизнеса
type Service struct {
	settingsRepo SettingsRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get получает настройки бизнеса
// Если записи нет, возвращает задокументированные дефолты:
// интервал 30 минут, будни 09:00-18:00, выходные закрыты
func (s *Service) Get(ctx context.Context, businessID int64) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for business=%d", businessID)

	if businessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	settings, err := s.settingsRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: no settings record for business=%d, returning defaults", businessID)
			return models.FromDomainSettings(domain.DefaultSettings(businessID)), nil
		}
		s.logger.Error("Get: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched settings for business=%d", businessID)
	return models.FromDomainSettings(settings), nil
}

// Update создает или обновляет настройки бизнеса
// Замена расписания выполняется в транзакции, чтобы не наблюдалось
// частично обновлённых дней недели
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for business=%d by user=%d, interval=%d",
		req.BusinessID, req.UserID, req.SlotIntervalMinutes)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	settings, err := req.ToDomainSettings()
	if err != nil {
		s.logger.Warn("Update: invalid weekly hours for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated *domain.BusinessSettings
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.settingsRepo.Upsert(txCtx, settings)
		return txErr
	})
	if err != nil {
		s.logger.Error("Update: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings for business=%d", req.BusinessID)
	return models.FromDomainSettings(updated), nil
}

// validateUpdateRequest валидирует запрос на обновление настроек
func validateUpdateRequest(req *models.UpdateSettingsRequest) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.SlotIntervalMinutes < domain.MinSlotIntervalMinutes ||
		req.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: slotIntervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	return nil
}
