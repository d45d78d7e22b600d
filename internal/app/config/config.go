package config

import (
	"agenda-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		AgendaAPI: AgendaAPI{
			BaseUrl:           utils.GetEnvString("AGENDA_API_BASE_URL", "http://localhost:5555/api"),
			TimeoutInSeconds:  utils.GetEnvInt("AGENDA_API_TIMEOUT_IN_SECONDS", 10),
			RequestsPerSecond: utils.GetEnvInt("AGENDA_API_REQUESTS_PER_SECOND", 50),
		},
		Scheduling: Scheduling{
			DefaultZoneOffsetMinutes: utils.GetEnvInt("SCHEDULING_DEFAULT_ZONE_OFFSET_IN_MINUTES", -300),
			BookingLockTTLInSeconds:  utils.GetEnvInt("SCHEDULING_BOOKING_LOCK_TTL_IN_SECONDS", 10),
			JanitorCronSpec:          utils.GetEnvString("SCHEDULING_JANITOR_CRON_SPEC", "@daily"),
			JanitorLockTTLInSeconds:  utils.GetEnvInt("SCHEDULING_JANITOR_LOCK_TTL_IN_SECONDS", 60),
			CancelledRetentionInDays: utils.GetEnvInt("SCHEDULING_CANCELLED_RETENTION_IN_DAYS", 60),
		},
		RabbitMQ: AppRabbitMQ{
			AuditQueue: utils.GetEnvString("APP_RABBITMQ_AUDIT_QUEUE", "agenda_audit"),
		},
	}
}
