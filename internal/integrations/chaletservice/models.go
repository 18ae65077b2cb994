package chaletservice

// Chalet данные шале из реестра
type Chalet struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Location string  `json:"location"`
	Capacity int     `json:"capacity"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
