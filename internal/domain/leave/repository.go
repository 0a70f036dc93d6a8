package leave

import (
	"context"
)

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus sets the status of an existing leave request
	UpdateStatus(ctx context.Context, id string, status LeaveStatus) error

	// List retrieves leave requests with filters and pagination
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
}
