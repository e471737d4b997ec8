package services

import (
	"errors"
	"sort"

	"github.com/mealdiary/meal-diary-api/internal/models"
)

// ErrImageIndexOutOfRange is returned when an image operation references a
// position outside the collection. Indices are never clamped.
var ErrImageIndexOutOfRange = errors.New("image index out of range")

// AddImage appends an image at the next order index. The first image of a
// collection becomes main automatically; later ones do not steal the flag.
func AddImage(set []models.MealImage, img models.MealImage) []models.MealImage {
	img.Order = len(set)
	img.IsMain = len(set) == 0
	return append(set, img)
}

// PromoteImage marks the image at index as main and clears the flag on
// every other image.
func PromoteImage(set []models.MealImage, index int) error {
	if index < 0 || index >= len(set) {
		return ErrImageIndexOutOfRange
	}
	for i := range set {
		set[i].IsMain = i == index
	}
	return nil
}

// RemoveImage deletes the image at index. If the main image was removed and
// images remain, the new first image is promoted. Remaining orders are
// renumbered densely from 0.
func RemoveImage(set []models.MealImage, index int) ([]models.MealImage, error) {
	if index < 0 || index >= len(set) {
		return nil, ErrImageIndexOutOfRange
	}
	wasMain := set[index].IsMain
	set = append(set[:index], set[index+1:]...)
	for i := range set {
		set[i].Order = i
	}
	if wasMain && len(set) > 0 {
		set[0].IsMain = true
	}
	return set, nil
}

// MoveImageUp swaps the image at index with its predecessor and renumbers
// the orders. The main designation follows the image object, so the new
// main index is returned for callers that track it by position.
func MoveImageUp(set []models.MealImage, index int) (int, error) {
	if index <= 0 || index >= len(set) {
		return -1, ErrImageIndexOutOfRange
	}
	set[index-1], set[index] = set[index], set[index-1]
	set[index-1].Order = index - 1
	set[index].Order = index
	return MainImageIndex(set), nil
}

// MoveImageDown swaps the image at index with its successor and renumbers
// the orders, returning the new main index.
func MoveImageDown(set []models.MealImage, index int) (int, error) {
	if index < 0 || index >= len(set)-1 {
		return -1, ErrImageIndexOutOfRange
	}
	set[index], set[index+1] = set[index+1], set[index]
	set[index].Order = index
	set[index+1].Order = index + 1
	return MainImageIndex(set), nil
}

// MainImageIndex returns the position of the main image, or -1 if none is
// flagged.
func MainImageIndex(set []models.MealImage) int {
	for i, img := range set {
		if img.IsMain {
			return i
		}
	}
	return -1
}

// FinalizeMainImage is the idempotent repair step run before persistence: a
// non-empty collection with no main image gets its first image (by order)
// promoted. A collection that already satisfies the invariant is untouched.
func FinalizeMainImage(set []models.MealImage) {
	if len(set) == 0 || MainImageIndex(set) >= 0 {
		return
	}
	first := 0
	for i := range set {
		if set[i].Order < set[first].Order {
			first = i
		}
	}
	set[first].IsMain = true
}

// NormalizeImageSet prepares a client-submitted image collection for
// persistence: images are sorted by their requested order (stable for
// ties), renumbered densely, reduced to at most one main flag, and repaired
// so a non-empty set ends with exactly one main image.
func NormalizeImageSet(set []models.MealImage) []models.MealImage {
	sort.SliceStable(set, func(i, j int) bool {
		return set[i].Order < set[j].Order
	})
	mainSeen := false
	for i := range set {
		set[i].Order = i
		if set[i].IsMain {
			if mainSeen {
				set[i].IsMain = false
			}
			mainSeen = true
		}
	}
	FinalizeMainImage(set)
	return set
}
