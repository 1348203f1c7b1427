package update_session_day

import (
	"errors"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

var errInvalidDay = errors.New("day must be between 0 and 6")

// ParseDay парсит номер дня недели (0 = воскресенье)
func ParseDay(dayStr string) (time.Weekday, error) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return 0, err
	}
	if day < domain.MinWeekday || day > domain.MaxWeekday {
		return 0, errInvalidDay
	}
	return time.Weekday(day), nil
}
