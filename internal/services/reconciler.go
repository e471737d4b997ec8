package services

import (
	"fmt"

	"github.com/mealdiary/meal-diary-api/internal/models"
)

// DishChange is one dish from the incoming payload together with the order
// it must end up at. Order comes from the payload position, not from
// whatever the dish had before.
type DishChange struct {
	Dish  models.DishPayload
	Order int
}

// DishReconciliation is the outcome of diffing an incoming dish list against
// the persisted one. The three sets partition the union of existing and
// incoming dish ids.
type DishReconciliation struct {
	ToCreate []DishChange
	ToUpdate []DishChange
	ToDelete []string
}

// ReconcileDishes diffs incoming dishes against the persisted ones by
// identity. Entries without a persisted id are creates, entries whose id
// matches an existing dish are updates, and existing dishes missing from the
// payload are deletes. The incoming array order is authoritative: orders are
// reassigned densely 0..N-1.
//
// The same persisted id appearing twice is rejected as a conflict rather
// than resolved last-write-wins, and an id that does not belong to the meal
// is rejected so stale client state cannot capture another meal's dish.
func ReconcileDishes(existing []models.Dish, incoming []models.DishPayload) (*DishReconciliation, error) {
	existingIDs := make(map[string]bool, len(existing))
	for _, dish := range existing {
		existingIDs[dish.ID] = true
	}

	result := &DishReconciliation{}
	seen := make(map[string]bool, len(incoming))

	for i, dish := range incoming {
		if !dish.ID.Persisted {
			result.ToCreate = append(result.ToCreate, DishChange{Dish: dish, Order: i})
			continue
		}
		if seen[dish.ID.Value] {
			return nil, &models.ConflictError{
				Message: fmt.Sprintf("dish id %s appears more than once in the payload", dish.ID.Value),
			}
		}
		seen[dish.ID.Value] = true

		if !existingIDs[dish.ID.Value] {
			return nil, &models.NotFoundError{Entity: "dish", ID: dish.ID.Value}
		}
		result.ToUpdate = append(result.ToUpdate, DishChange{Dish: dish, Order: i})
	}

	for _, dish := range existing {
		if !seen[dish.ID] {
			result.ToDelete = append(result.ToDelete, dish.ID)
		}
	}

	return result, nil
}
