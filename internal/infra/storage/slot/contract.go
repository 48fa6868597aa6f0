package slot

import (
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
