package shootRepo

import "shootflow/models"

// ShootRepository is the local projection of shoot state, refreshed only from
// authority-confirmed records. There is no delete: shoots are advanced or
// rolled back by transitions, never removed.
type ShootRepository interface {
	GetByID(id string) (*models.ShootRecord, error)
	List() ([]models.ShootRecord, error)
	ListByPhotographer(photographerID string) ([]models.ShootRecord, error)
	ListByClient(clientID string) ([]models.ShootRecord, error)
	Upsert(rec models.ShootRecord) error
	UpsertMany(recs []models.ShootRecord) error
}
