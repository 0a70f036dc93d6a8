package leave

import (
	"context"
)

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	UpdateLeaveStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	GetLeave(ctx context.Context, id string) (LeaveResponse, error)
	ListLeaves(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, int64, error)
}
