package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/settings"
	core "github.com/m04kA/SMC-ScheduleService/internal/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

// Service сервис расписания рабочего времени компаний
type Service struct {
	repo        SettingsRepository
	normalizer  *core.Normalizer
	preferences domain.SchedulingPreferences
	sessions    *sessionStore
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписания.
// preferences используются, когда для компании ничего не сохранено.
func NewService(
	repo SettingsRepository,
	normalizer *core.Normalizer,
	preferences domain.SchedulingPreferences,
	sessionTTL time.Duration,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:        repo,
		normalizer:  normalizer,
		preferences: preferences,
		sessions:    newSessionStore(sessionTTL, time.Now),
		metrics:     metrics,
		logger:      logger,
	}
}

// GetSchedule получает каноническое расписание компании
// Публичный метод - если ничего не сохранено, возвращает значения по умолчанию
func (s *Service) GetSchedule(ctx context.Context, companyID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for company=%d", companyID)

	week, prefs, settings, err := s.load(ctx, "GetSchedule", companyID)
	if err != nil {
		return nil, err
	}

	return models.FromSettings(companyID, week, prefs, settings), nil
}

// UpdateSchedule нормализует и сохраняет расписание в любом из поддерживаемых форматов
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for company=%d by user=%d", req.CompanyID, req.UserID)

	if req.UserID <= 0 {
		return nil, ErrAccessDenied
	}

	_, prefs, _, err := s.load(ctx, "UpdateSchedule", req.CompanyID)
	if err != nil {
		return nil, err
	}

	prefs = req.ApplyToPreferences(prefs)
	if err := validatePreferences(prefs); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed for company=%d: %v", req.CompanyID, err)
		return nil, err
	}

	raw := core.ParseRawWorkingHours(req.WorkingHours)
	s.metrics.RecordNormalization(raw.Shape.String())
	week := s.normalizer.NormalizeWeek(raw, s.normalizer.ResolveEnabledDays(req.WorkingDays))

	return s.save(ctx, "UpdateSchedule", req.CompanyID, week, prefs)
}

// GetWorkingSlots возвращает рабочие слоты компании на дату (без учета бронирований)
func (s *Service) GetWorkingSlots(ctx context.Context, companyID int64, date time.Time) (*models.WorkingSlotsResponse, error) {
	s.logger.Info("GetWorkingSlots: fetching slots for company=%d, date=%s", companyID, date.Format(domain.DateFormat))

	week, prefs, _, err := s.load(ctx, "GetWorkingSlots", companyID)
	if err != nil {
		return nil, err
	}

	day := s.normalizer.WorkingSlots(week, date)

	s.logger.Info("GetWorkingSlots: company=%d, date=%s, slots=%d",
		companyID, date.Format(domain.DateFormat), len(day.Slots))
	return models.FromWorkingDay(companyID, day, prefs), nil
}

// OpenSession открывает сессию редактирования с нормализованным расписанием компании
func (s *Service) OpenSession(ctx context.Context, companyID, userID int64) (*models.SessionResponse, error) {
	s.logger.Info("OpenSession: opening session for company=%d by user=%d", companyID, userID)

	if userID <= 0 {
		return nil, ErrAccessDenied
	}

	week, _, _, err := s.load(ctx, "OpenSession", companyID)
	if err != nil {
		return nil, err
	}

	sess, active := s.sessions.create(companyID, userID, week)
	s.metrics.SetActiveSessions(active)

	s.logger.Info("OpenSession: session=%s opened for company=%d", sess.id, companyID)
	return s.sessionResponse(sess), nil
}

// GetSession возвращает текущее состояние сессии
func (s *Service) GetSession(ctx context.Context, sessionID string, userID int64) (*models.SessionResponse, error) {
	sess, err := s.sessions.get(sessionID, userID)
	if err != nil {
		s.logger.Warn("GetSession: session=%s user=%d: %v", sessionID, userID, err)
		return nil, err
	}
	return s.sessionResponse(sess), nil
}

// UpdateSessionDay применяет изменение полей дня и заново нормализует его
func (s *Service) UpdateSessionDay(ctx context.Context, sessionID string, userID int64, day time.Weekday, patch domain.DayPatch) (*models.SessionResponse, error) {
	if day < domain.MinWeekday || day > domain.MaxWeekday {
		return nil, fmt.Errorf("%w: day must be between %d and %d", ErrInvalidInput, domain.MinWeekday, domain.MaxWeekday)
	}

	sess, err := s.sessions.update(sessionID, userID, func(week domain.WeekSchedule) domain.WeekSchedule {
		return s.normalizer.UpdateDay(week, day, patch)
	})
	if err != nil {
		s.logger.Warn("UpdateSessionDay: session=%s user=%d: %v", sessionID, userID, err)
		return nil, err
	}

	s.logger.Info("UpdateSessionDay: session=%s day=%d updated", sessionID, day)
	return s.sessionResponse(sess), nil
}

// ApplySessionPreset применяет стандартный пресет к неделе сессии
func (s *Service) ApplySessionPreset(ctx context.Context, sessionID string, userID int64, presetName string) (*models.SessionResponse, error) {
	preset, ok := core.LookupPreset(presetName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, presetName)
	}

	sess, err := s.sessions.update(sessionID, userID, func(week domain.WeekSchedule) domain.WeekSchedule {
		return s.normalizer.Apply(week, preset)
	})
	if err != nil {
		s.logger.Warn("ApplySessionPreset: session=%s user=%d: %v", sessionID, userID, err)
		return nil, err
	}

	s.logger.Info("ApplySessionPreset: session=%s preset=%s applied", sessionID, presetName)
	return s.sessionResponse(sess), nil
}

// SaveSession сохраняет неделю сессии. Параллельные сохранения разрешаются по принципу "последняя запись побеждает".
// Сессия остается открытой.
func (s *Service) SaveSession(ctx context.Context, sessionID string, userID int64) (*models.ScheduleResponse, error) {
	sess, err := s.sessions.get(sessionID, userID)
	if err != nil {
		s.logger.Warn("SaveSession: session=%s user=%d: %v", sessionID, userID, err)
		return nil, err
	}

	_, prefs, _, err := s.load(ctx, "SaveSession", sess.companyID)
	if err != nil {
		return nil, err
	}

	return s.save(ctx, "SaveSession", sess.companyID, sess.week, prefs)
}

// DiscardSession закрывает сессию без сохранения
func (s *Service) DiscardSession(ctx context.Context, sessionID string, userID int64) error {
	active, err := s.sessions.remove(sessionID, userID)
	s.metrics.SetActiveSessions(active)
	if err != nil {
		s.logger.Warn("DiscardSession: session=%s user=%d: %v", sessionID, userID, err)
		return err
	}

	s.logger.Info("DiscardSession: session=%s discarded", sessionID)
	return nil
}

// ActiveSessions количество открытых сессий (истекшие не учитываются)
func (s *Service) ActiveSessions() int {
	n := s.sessions.count()
	s.metrics.SetActiveSessions(n)
	return n
}

// Вспомогательные методы

// load читает и нормализует сохраненное расписание. settings == nil, если ничего не сохранено.
func (s *Service) load(ctx context.Context, op string, companyID int64) (domain.WeekSchedule, domain.SchedulingPreferences, *domain.ScheduleSettings, error) {
	settings, err := s.repo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("%s: no schedule stored for company=%d, using defaults", op, companyID)
			s.metrics.RecordNormalization(core.ShapeAbsent.String())
			return s.normalizer.DefaultWeek(s.normalizer.Defaults().WorkingDays), s.preferences, nil, nil
		}
		s.logger.Error("%s: repository error for company=%d: %v", op, companyID, err)
		return domain.WeekSchedule{}, domain.SchedulingPreferences{}, nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	raw := core.ParseRawWorkingHours(settings.WorkingHours)
	s.metrics.RecordNormalization(raw.Shape.String())
	if raw.Shape != core.ShapeStructured {
		s.logger.Info("%s: company=%d has %s working hours, normalizing", op, companyID, raw.Shape)
	}

	week := s.normalizer.NormalizeWeek(raw, s.normalizer.ResolveEnabledDays(settings.WorkingDays))
	return week, settings.Preferences(), settings, nil
}

func (s *Service) save(ctx context.Context, op string, companyID int64, week domain.WeekSchedule, prefs domain.SchedulingPreferences) (*models.ScheduleResponse, error) {
	if err := core.Validate(week); err != nil {
		s.logger.Warn("%s: company=%d has no working day enabled", op, companyID)
		return nil, ErrNoEnabledDay
	}

	canonical := core.Canonical(week)
	workingDays, err := json.Marshal(canonical.WorkingDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - marshal working days: %v", ErrInternal, op, err)
	}
	workingHours, err := json.Marshal(canonical.WorkingHours)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - marshal working hours: %v", ErrInternal, op, err)
	}

	saved, err := s.repo.Upsert(ctx, &domain.ScheduleSettings{
		CompanyID:       companyID,
		WorkingDays:     workingDays,
		WorkingHours:    workingHours,
		LeadTimeMinutes: prefs.LeadTimeMinutes,
		BufferMinutes:   prefs.BufferMinutes,
		TravelMinutes:   prefs.TravelMinutes,
	})
	if err != nil {
		s.logger.Error("%s: repository error for company=%d: %v", op, companyID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: successfully saved schedule for company=%d, working days=%v", op, companyID, canonical.WorkingDays)
	return models.FromSettings(companyID, week, prefs, saved), nil
}

func (s *Service) sessionResponse(sess session) *models.SessionResponse {
	return models.FromSession(sess.id, sess.companyID, sess.week, s.normalizer.WeekOptions(sess.week), sess.expiresAt)
}

// validatePreferences валидирует lead/buffer/travel
func validatePreferences(p domain.SchedulingPreferences) error {
	if p.LeadTimeMinutes < domain.MinLeadTimeMinutes || p.LeadTimeMinutes > domain.MaxLeadTimeMinutes {
		return fmt.Errorf("%w: leadTimeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinLeadTimeMinutes, domain.MaxLeadTimeMinutes)
	}
	if p.BufferMinutes < domain.MinBufferMinutes || p.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if p.TravelMinutes < domain.MinTravelMinutes || p.TravelMinutes > domain.MaxTravelMinutes {
		return fmt.Errorf("%w: travelMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinTravelMinutes, domain.MaxTravelMinutes)
	}
	return nil
}
