package responses

import (
	"agenda-service/internal/app/services/core/scheduling"
)

// Availability is the slot list for one staff member on one local day.
type Availability struct {
	StaffID         string            `json:"staffId"`
	BranchID        string            `json:"branchId,omitempty"`
	Date            string            `json:"date"`
	SlotSizeMinutes int               `json:"slotSizeMinutes"`
	QueryKey        string            `json:"queryKey"`
	Slots           []scheduling.Slot `json:"slots"`
}
