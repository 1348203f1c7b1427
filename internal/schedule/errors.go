package schedule

import "errors"

var (
	// ErrNoEnabledDay возвращается при сохранении расписания без единого рабочего дня
	ErrNoEnabledDay = errors.New("schedule: at least one working day must be enabled")

	// ErrInvalidDefaults возвращается, когда значения по умолчанию не согласованы с каталогом слотов
	ErrInvalidDefaults = errors.New("schedule: invalid defaults")
)
