package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "AGND_SVC_"
)

// Event types carried by the remote scheduling API. TURNO is a staff shift
// block, CITA is a patient appointment.
const (
	EventTypeTurno = "TURNO"
	EventTypeCita  = "CITA"
)

// Appointment lifecycle statuses. Only CITA events move through these; TURNO
// events are created CONFIRMED and stay there.
const (
	EventStatusPending     = "PENDING"
	EventStatusConfirmed   = "CONFIRMED"
	EventStatusCompleted   = "COMPLETED"
	EventStatusCancelled   = "CANCELLED"
	EventStatusNoShow      = "NO_SHOW"
	EventStatusRescheduled = "RESCHEDULED"
)

// Slot sizes the slot generator accepts.
const (
	SlotSizeShortInMinutes   = 15
	SlotSizeDefaultInMinutes = 30
)

// CalendarPaddingInDays extends month queries on both sides so week rows
// spanning two months have full shift context.
const CalendarPaddingInDays = 7

// FilterSentinelAll is the "no filter" sentinel the dashboard sends for
// select inputs; the query builder normalizes it away.
const FilterSentinelAll = "todos"

// Redis lock keys. The booking lock serializes writes per staff member and
// window start; the janitor lock elects a single purge runner across replicas.
const (
	BookingLockKeyFormat = "agenda:booking_lock:%s:%d"
	JanitorLeaderLockKey = "agenda:janitor_leader_lock"
)

const (
	AuditActionConflictCheckBypassed = "conflict_check_bypassed"
	AuditActionStatusTransition      = "status_transition"
	AuditActionEventsPurged          = "events_purged"
)

const (
	TIME_DIFFERENCE_LIMA_IN_MINUTES        = -300
	TIME_DIFFERENCE_BOGOTA_IN_MINUTES      = -300
	TIME_DIFFERENCE_MEXICO_CITY_IN_MINUTES = -360
	TIME_DIFFERENCE_SANTIAGO_IN_MINUTES    = -240
)
