package config

type InternalConfig struct {
	App        App
	AgendaAPI  AgendaAPI
	Scheduling Scheduling
	RabbitMQ   AppRabbitMQ
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Address                  string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
}

// AgendaAPI points at the remote scheduling API that owns event persistence.
type AgendaAPI struct {
	BaseUrl           string
	TimeoutInSeconds  int
	RequestsPerSecond int
}

type Scheduling struct {
	// DefaultZoneOffsetMinutes is only a display fallback; every request may
	// carry its own offset.
	DefaultZoneOffsetMinutes int
	BookingLockTTLInSeconds  int
	JanitorCronSpec          string
	JanitorLockTTLInSeconds  int
	CancelledRetentionInDays int
}

type AppRabbitMQ struct {
	AuditQueue string
}
