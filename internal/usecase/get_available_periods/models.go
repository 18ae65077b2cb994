package get_available_periods

import "time"

// Request модель запроса на получение доступных периодов шале
type Request struct {
	ChaletID  int64      // ID шале
	StartDate *time.Time // Начало окна запроса (опционально)
	EndDate   *time.Time // Конец окна запроса (опционально)
}

// Period модель доступного периода
type Period struct {
	ID            int64     // ID интервала
	StartDate     time.Time // Дата начала
	EndDate       time.Time // Дата окончания
	PricePerNight *float64  // Цена за ночь
	Notes         *string   // Заметки
}

// Response модель ответа со списком доступных периодов
type Response struct {
	ChaletID int64    // ID шале
	Periods  []Period // Периоды со статусом available, пересекающие окно запроса
}
