package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must match the layout %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact admin"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientInvalidTimeFormat             = "time must look like 09:30am or 02:00pm"
	ErrClientInvalidDate                   = "the provided date does not exist"
	ErrClientSlotAlreadyTaken              = "the selected time is no longer available"
	ErrClientInvalidStatusChange           = "the appointment cannot change to that status"
	ErrClientAgendaUnavailable             = "the scheduling service is temporarily unavailable, please retry"
	ErrClientEventNotFound                 = "the appointment could not be found"
	ErrClientOutsideShift                  = "the selected time falls outside the staff member's shift"
	ErrClientBookingInProgress             = "another booking for this time is being processed, please retry"
)

// Error messages for developers
const (
	ErrDevValidationFailed            = "request validation failed"
	ErrDevCannotParseJSON             = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON           = "failed to marshal value to JSON"
	ErrDevCannotParseDate             = "failed to parse date"
	ErrDevInvalidTimeFormat           = "local time string does not match hh:mmam/pm"
	ErrDevInvalidDate                 = "calendar date components are out of range"
	ErrDevInvalidSlotSize             = "slot size must be 15 or 30 minutes"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevDecodeResponse              = "failed to decode upstream response"
	ErrDevUpstreamTimeout             = "upstream scheduling API timed out"
	ErrDevUpstreamStatus              = "upstream scheduling API returned non-2xx status %d"
	ErrDevMalformedEventRecord        = "event record is missing start or end timestamp"
	ErrDevScheduleConflict            = "candidate window overlaps event %s"
	ErrDevInvalidStatusTransition     = "illegal status transition %s -> %s"
	ErrDevEventNotFound               = "event does not exist upstream"
	ErrDevOutsideShift                = "candidate window is not covered by any shift block"
	ErrDevBookingLockNotAcquired      = "booking lock for the staff window is held elsewhere"
	ErrDevServerDeadlineExceeded      = "handler deadline exceeded"
	ErrDevURLParamIDValidationFailed  = "URL parameter %s failed validation"
	ErrDevInvalidFilterCriteria       = "filter criteria start date is after end date"
	ErrDevAuditPublishFailed          = "failed to publish audit message"
	ErrDevRedisSet                    = "failed to set redis key"
	ErrDevRedisGet                    = "failed to get redis key %s"
	ErrDevRedisDelete                 = "failed to delete redis key"
	ErrDevRedisSetNX                  = "failed to acquire redis lock"
	ErrDevRedisExpire                 = "failed to refresh redis key TTL"
	ErrDevRedisUnlock                 = "failed to release redis lock"
)
