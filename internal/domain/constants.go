package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength = 500
)

// ValidStatuses список допустимых статусов интервала
// Переходы между статусами не ограничены - любой статус может быть
// заменен любым другим через update
var ValidStatuses = []IntervalStatus{
	StatusAvailable,
	StatusBooked,
	StatusBlocked,
	StatusMaintenance,
}

// IsValidStatus проверяет, что статус входит в список допустимых
func IsValidStatus(s IntervalStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
