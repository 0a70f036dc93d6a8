package leave

import (
	"time"
)

// LeaveStatus enum
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// ValidStatuses lists every status an admin may set. Transitions are
// unrestricted: an approved or rejected request can be reset to pending.
var ValidStatuses = []string{
	string(LeaveStatusPending),
	string(LeaveStatusApproved),
	string(LeaveStatusRejected),
}

type LeaveRequest struct {
	ID         string
	EmployeeID string
	FromDate   time.Time
	ToDate     time.Time
	Reason     string
	Status     LeaveStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
	EmployeeCode *string
}

// Days returns the inclusive day span of the request.
func (l LeaveRequest) Days() int {
	return int(l.ToDate.Sub(l.FromDate).Hours()/24) + 1
}
