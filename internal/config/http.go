package config

type HTTPConfig struct {
	Port               int
	ShutdownTimeoutSec int
	// Лимит запросов бронирования с одного IP в минуту.
	BookRateLimit int
	// Разрешённые CORS-источники ("*" — любые).
	CORSOrigin string
}

func LoadHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Port:               getEnvInt("HTTP_PORT", 3000),
		ShutdownTimeoutSec: getEnvInt("HTTP_SHUTDOWN_TIMEOUT_SEC", 10),
		BookRateLimit:      getEnvInt("HTTP_BOOK_RATE_LIMIT", 60),
		CORSOrigin:         getEnv("HTTP_CORS_ORIGIN", "*"),
	}
}
