package constvars

const (
	URLParamEventID = "event_id"
)

const (
	URLQueryParamType       = "type"
	URLQueryParamStatus     = "status"
	URLQueryParamStaffID    = "staff_id"
	URLQueryParamBranchID   = "branch_id"
	URLQueryParamStartDate  = "start_date"
	URLQueryParamEndDate    = "end_date"
	URLQueryParamDate       = "date"
	URLQueryParamSlotSize   = "slot_size"
	URLQueryParamAllowPast  = "allow_past"
	URLQueryParamZoneOffset = "zone_offset_minutes"
	URLQueryYear            = "year"
	URLQueryMonth           = "month"
)

// Date layouts crossing the remote API boundary. Timestamps are always
// ISO-8601 UTC; plain dates are yyyy-MM-dd.
const (
	DateOnlyLayout   = "2006-01-02"
	TimestampLayout  = "2006-01-02T15:04:05Z07:00"
	LocalClockLayout = "03:04pm"
)
