package get_working_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ParseDate парсит дату формата YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(domain.DateFormat, dateStr)
}
