package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingEventIDKey            = "event_id"
	LoggingEventCountKey         = "event_count"
	LoggingDroppedCountKey       = "dropped_count"
	LoggingStaffIDKey            = "staff_id"
	LoggingBranchIDKey           = "branch_id"
	LoggingDateKey               = "date"
	LoggingStartDateKey          = "start_date"
	LoggingEndDateKey            = "end_date"
	LoggingSlotCountKey          = "slot_count"
	LoggingSlotSizeKey           = "slot_size_minutes"
	LoggingStatusKey             = "status"
	LoggingFromStatusKey         = "from_status"
	LoggingToStatusKey           = "to_status"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingAuditActionKey        = "audit_action"
	LoggingQueueKey              = "queue"
)
