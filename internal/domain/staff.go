package domain

import "strconv"

// StaffMember represents a bookable staff resource of a business.
// The roster is owned by the external StaffService; only active members
// count toward capacity.
type StaffMember struct {
	ID       int64
	Name     string
	IsActive bool
}

// ResourceRequest is a tagged request for a staff resource:
// either one concrete staff member or any available member of the pool.
// Replaces the stringly-typed "any" sentinel at the HTTP boundary.
type ResourceRequest struct {
	staffID int64
	any     bool
}

// AnyResource возвращает запрос на любого свободного сотрудника
func AnyResource() ResourceRequest {
	return ResourceRequest{any: true}
}

// SpecificStaff возвращает запрос на конкретного сотрудника
func SpecificStaff(staffID int64) ResourceRequest {
	return ResourceRequest{staffID: staffID}
}

// IsAny returns true if the request accepts any staff member
func (r ResourceRequest) IsAny() bool {
	return r.any
}

// StaffID returns the requested staff id; only meaningful when !IsAny()
func (r ResourceRequest) StaffID() int64 {
	return r.staffID
}

func (r ResourceRequest) String() string {
	if r.any {
		return "any"
	}
	return "staff:" + strconv.FormatInt(r.staffID, 10)
}
