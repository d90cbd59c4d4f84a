package handler

import "chimichangapp/internal/model"

// Response shapes for the demo endpoints. Each field carries a schema
// example so the generated documentation shows a realistic payload next to
// every status code.

// MessageResponse is the greeting served at the root.
type MessageResponse struct {
	Message string `json:"message" example:"Hello World"`
}

// ItemUpdateResponse echoes the path id and the validated item back.
type ItemUpdateResponse struct {
	ItemID int        `json:"item_id" example:"42"`
	Item   model.Item `json:"item"`
}

// ItemSearchResponse is the fixed search result list. Q is echoed only when
// the query string was supplied, so it stays absent from the JSON otherwise.
type ItemSearchResponse struct {
	Items []model.ItemRef `json:"items"`
	Q     *string         `json:"q,omitempty" example:"wand"`
}

// UserLookupResponse is the success envelope for the user lookup endpoint.
type UserLookupResponse struct {
	Status string               `json:"status" example:"success"`
	Data   *model.DirectoryUser `json:"data"`
}

// UserForbiddenResponse is returned when the requested id is reserved.
type UserForbiddenResponse struct {
	Status  string `json:"status" example:"forbidden"`
	Message string `json:"message" example:"Insufficient privileges!"`
}

// UserNotFoundResponse is returned when no directory entry matches the id.
type UserNotFoundResponse struct {
	Status  string `json:"status" example:"not_found"`
	Message string `json:"message" example:"User not found!"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}
