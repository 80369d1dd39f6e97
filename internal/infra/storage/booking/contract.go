package booking

import (
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
)

// DBExecutor переиспользуем интерфейс из dbmetrics.
// Реализуется *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
