package domain

import "errors"

var (
	// ErrRestaurantNotFound indicates that the restaurant profile is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrInvalidDeliveryRadius indicates a self-delivery radius outside the allowed range.
	ErrInvalidDeliveryRadius = errors.New("delivery radius must be between 0 and 10 miles")
)

// CourierMaxRadiusMiles is the fixed radius cap of the courier network.
const CourierMaxRadiusMiles = 10.0

// Coordinates holds a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DeliverySettings holds the restaurant's delivery reach.
type DeliverySettings struct {
	SelfDeliveryRadius float64     `json:"self_delivery_radius"`
	CourierMaxRadius   float64     `json:"courier_max_radius"`
	Coordinates        Coordinates `json:"coordinates"`
}

// Restaurant holds the operator-facing restaurant profile.
type Restaurant struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Address          string           `json:"address"`
	Phone            string           `json:"phone"`
	DeliveryMode     string           `json:"delivery_mode"`
	Status           string           `json:"status"`
	JoinDate         string           `json:"join_date"`
	DeliverySettings DeliverySettings `json:"delivery_settings"`
}
