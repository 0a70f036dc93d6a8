package dashboard

// Stats is the admin console landing summary.
type Stats struct {
	TotalEmployees    int64 `json:"total_employees"`
	ActiveEmployees   int64 `json:"active_employees"`
	TotalDepartments  int64 `json:"total_departments"`
	PendingLeaves     int64 `json:"pending_leaves"`
	CheckedInToday    int64 `json:"checked_in_today"`
	CheckedOutToday   int64 `json:"checked_out_today"`
	UnpaidSalarySlips int64 `json:"unpaid_salary_slips"`
}
