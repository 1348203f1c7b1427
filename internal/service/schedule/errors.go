package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoEnabledDay возвращается при сохранении расписания без рабочих дней
	ErrNoEnabledDay = errors.New("at least one working day must be enabled")

	// ErrSessionNotFound возвращается, когда сессия редактирования не найдена или истекла
	ErrSessionNotFound = errors.New("editing session not found")

	// ErrPresetNotFound возвращается для неизвестного пресета
	ErrPresetNotFound = errors.New("preset not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
