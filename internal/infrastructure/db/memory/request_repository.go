package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
)

type RequestRepository struct {
	mu       sync.RWMutex
	nextID   int
	requests []domain.ServiceRequest
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{nextID: 1}
}

func (r *RequestRepository) List(_ context.Context) ([]domain.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.requests), nil
}

func (r *RequestRepository) Create(_ context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := *req
	record.ID = r.nextID
	r.nextID++
	r.requests = append(r.requests, record)
	clone := record
	return &clone, nil
}

// UpdateStatus changes the one mutable field and returns the whole
// updated record.
func (r *RequestRepository) UpdateStatus(_ context.Context, id int, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			clone := r.requests[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}
