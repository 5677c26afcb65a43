package reservation

import domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"

// UseCases bundles every reservation operation for the HTTP layer.
type UseCases struct {
	Create            *CreateReservation
	List              *ListReservations
	Get               *GetReservation
	Update            *UpdateReservation
	Delete            *DeleteReservation
	ListByDate        *ListReservationsByDate
	ListByStatus      *ListReservationsByStatus
	UpdateStatus      *UpdateReservationStatus
	CheckAvailability *CheckAvailability
}

func New(repo domain.Repository, deps Deps) UseCases {
	return UseCases{
		Create:            NewCreateReservation(repo, deps),
		List:              NewListReservations(repo),
		Get:               NewGetReservation(repo),
		Update:            NewUpdateReservation(repo, deps),
		Delete:            NewDeleteReservation(repo, deps),
		ListByDate:        NewListReservationsByDate(repo, deps),
		ListByStatus:      NewListReservationsByStatus(repo),
		UpdateStatus:      NewUpdateReservationStatus(repo, deps),
		CheckAvailability: NewCheckAvailability(repo, deps),
	}
}
