package settings

import (
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
)

// DBExecutor *sql.DB, *sql.Tx или dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
