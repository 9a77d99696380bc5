package domain

import "time"

// RequestStatus is the review state of a contact request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// ServiceRequest is a contact-form submission. ServiceType is copied
// from a Service title at submission time, not a foreign key. Status is
// the only field mutable after creation.
type ServiceRequest struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	ServiceType string        `json:"serviceType"`
	Message     string        `json:"message"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Stats is the admin dashboard summary. It is recomputed on demand from
// fresh reads of the four collections and never cached between
// operations.
type Stats struct {
	TotalServices   int `json:"totalServices"`
	TotalPosts      int `json:"totalPosts"`
	TotalUsers      int `json:"totalUsers"`
	PendingRequests int `json:"pendingRequests"`
}
