package create_interval

import "time"

// Request модель запроса на создание интервала доступности
type Request struct {
	ChaletID  int64     // ID шале (существование делегировано реестру шале)
	StartDate time.Time // Дата начала интервала
	EndDate   time.Time // Дата окончания интервала, строго позже StartDate

	Status           *string  // Статус интервала, по умолчанию available
	PricePerNight    *float64 // Цена за ночь (опционально, информационное поле)
	Notes            *string  // Заметки (опционально)
	BookedBy         *string  // Кто забронировал (опционально)
	BookingReference *string  // Номер брони (опционально)
}

// Response модель ответа с созданным интервалом
type Response struct {
	ID        int64     // ID созданного интервала
	ChaletID  int64     // ID шале
	StartDate time.Time // Дата начала
	EndDate   time.Time // Дата окончания
	Status    string    // Статус интервала

	PricePerNight    *float64 // Цена за ночь
	Notes            *string  // Заметки
	BookedBy         *string  // Кто забронировал
	BookingReference *string  // Номер брони

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
