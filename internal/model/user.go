// Package model contains domain models/data structures shared across the
// HTTP, service, and repository layers. Keep it free of business logic and
// persistence-specific tags.
package model

// User is a single entry in the fixed demo user listing.
type User struct {
	Name string `json:"name" example:"Harry"`
}

// DirectoryUser is an entry in the user directory looked up by the
// get-user endpoint.
type DirectoryUser struct {
	ID   string `json:"id" example:"001"`
	Name string `json:"name" example:"Wai Foong"`
}
