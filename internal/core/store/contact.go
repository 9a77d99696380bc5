package store

import (
	"context"
	"time"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// ContactRequestInput carries a contact-form submission. Validation
// happens in the forms package before this ever fires.
type ContactRequestInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

// SubmitContactRequest posts a new request with status pending and a
// client-side creation stamp. The contact page talks to the backend
// directly rather than through a slice, so this is a free function over
// the resource client; the admin store picks the request up on its next
// fetch.
func SubmitContactRequest(ctx context.Context, client ports.ResourceClient, in ContactRequestInput) (*domain.ServiceRequest, error) {
	body := struct {
		ContactRequestInput
		Status    domain.RequestStatus `json:"status"`
		CreatedAt time.Time            `json:"createdAt"`
	}{
		ContactRequestInput: in,
		Status:              domain.StatusPending,
		CreatedAt:           time.Now().UTC(),
	}

	var created domain.ServiceRequest
	if err := client.Post(ctx, "/requests", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
