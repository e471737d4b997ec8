package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// tempIDPrefix is the placeholder prefix some clients still send for unsaved
// entities. It never reaches the database; decoding turns it into the
// unsaved tag below.
const tempIDPrefix = "temp-"

// EntityID is the identity of an incoming dish or image: either a persisted
// database id or a client-side placeholder for an entity that has not been
// saved yet. Code dispatches on Persisted, never on the raw string.
type EntityID struct {
	Value     string
	Persisted bool
}

// UnmarshalJSON treats null, empty strings and "temp-"-prefixed placeholders
// as unsaved identities.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "" || strings.HasPrefix(*raw, tempIDPrefix) {
		*id = EntityID{}
		return nil
	}
	*id = EntityID{Value: *raw, Persisted: true}
	return nil
}

func (id EntityID) MarshalJSON() ([]byte, error) {
	if !id.Persisted {
		return []byte("null"), nil
	}
	return json.Marshal(id.Value)
}

// Number is the parse-and-coerce boundary for numeric fields arriving from
// the AI collaborator or the client. It accepts JSON numbers, numeric
// strings and null; anything that does not parse as a finite number is
// simply not Valid. This is the only place untyped numeric input becomes an
// internal value.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = Number{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = Number{}
		return nil
	}
	*n = Number{Value: f, Valid: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// OrZero returns the value, coercing invalid input to 0. Used for the
// required nutrition fields, which are never stored as null.
func (n Number) OrZero() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// Ptr returns the value as a nullable pointer. Used for the optional
// nutrition fields.
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// MealPayload is the save payload accepted by POST /meals and PUT /meals/:id
type MealPayload struct {
	Date        string        `json:"date"` // "YYYY-MM-DD"
	Time        string        `json:"time"` // "HH:MM"
	MealType    string        `json:"mealType"`
	Description *string       `json:"description,omitempty"`
	Dishes      []DishPayload `json:"dishes"`
}

// DishPayload is one dish inside a meal save payload. Position in the Dishes
// slice is authoritative for ordering.
type DishPayload struct {
	ID              EntityID            `json:"id"`
	Name            string              `json:"name"`
	Description     *string             `json:"description,omitempty"`
	Ingredients     []IngredientPayload `json:"ingredients,omitempty"`
	NutritionalData *NutritionPayload   `json:"nutritionalData,omitempty"`
	Images          []ImagePayload      `json:"images,omitempty"`
}

// IngredientPayload is a raw ingredient record as produced by the AI
// collaborator or entered by hand, before normalization.
type IngredientPayload struct {
	Name             string  `json:"name"`
	PossibleAllergen bool    `json:"possibleAllergen"`
	AllergenType     *string `json:"allergenType,omitempty"`
	Quantity         *string `json:"quantity,omitempty"`
	Category         *string `json:"category,omitempty"`
}

// NutritionPayload carries the untyped nutrition fields of one dish through
// the coercion boundary.
type NutritionPayload struct {
	Calories      Number `json:"calories"`
	Proteins      Number `json:"proteins"`
	Carbohydrates Number `json:"carbohydrates"`
	Fats          Number `json:"fats"`
	Fiber         Number `json:"fiber"`
	Sugars        Number `json:"sugars"`
	Sodium        Number `json:"sodium"`
	Accuracy      Number `json:"accuracy"`
}

// ImagePayload is one image in a dish save payload
type ImagePayload struct {
	ID       EntityID `json:"id"`
	ImageURL string   `json:"imageUrl"`
	IsMain   bool     `json:"isMain"`
	Order    int      `json:"order"`
}

// AnalysisRequest is the body forwarded to the AI analysis collaborator
type AnalysisRequest struct {
	Image       string `json:"image,omitempty"` // base64
	Description string `json:"description,omitempty"`
	DishName    string `json:"dishName,omitempty"`
}

// AnalysisResult is the collaborator's typed response. NutritionalData and
// ingredient records still pass through the normal coercion/normalization
// path before anything is persisted.
type AnalysisResult struct {
	DishName        string              `json:"dishName"`
	Ingredients     []IngredientPayload `json:"ingredients"`
	NutritionalData *NutritionPayload   `json:"nutritionalData,omitempty"`
	Accuracy        Number              `json:"accuracy"`
}

// PageMeta is the pagination block returned by list endpoints
type PageMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}
