package rescheduleRepo

import "shootflow/models"

// RescheduleRepository stores reschedule requests. Requests are created
// pending, resolved at most once, and kept afterwards as an inert record.
type RescheduleRepository interface {
	Create(req models.RescheduleRequest) error
	GetByID(id string) (*models.RescheduleRequest, error)
	ListByShoot(shootID string) ([]models.RescheduleRequest, error)
	ListPending() ([]models.RescheduleRequest, error)
	Resolve(id string, status models.RescheduleStatus) error
}
