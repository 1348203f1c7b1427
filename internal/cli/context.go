// Package cli команды schedulectl: офлайн-нормализация сохраненных строк расписания
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
)

type Context struct {
	Normalizer *schedule.Normalizer
	In         io.Reader
	Out        io.Writer
}

// Row строка schedule_settings в том виде, в каком она лежит в БД
type Row struct {
	WorkingDays  json.RawMessage `json:"workingDays"`
	WorkingHours json.RawMessage `json:"workingHours"`
}

// readRow читает строку из файла, "-" или пустой путь - stdin
func (c *Context) readRow(path string) (Row, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(c.In)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Row{}, fmt.Errorf("failed to read input: %w", err)
	}

	var row Row
	if err := json.Unmarshal(data, &row); err != nil {
		return Row{}, fmt.Errorf("input must be a JSON object with workingDays/workingHours: %w", err)
	}
	return row, nil
}

func (c *Context) printJSON(v interface{}) error {
	enc := json.NewEncoder(c.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
