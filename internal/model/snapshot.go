package model

import "time"

// SpecSnapshot describes a published copy of the generated OpenAPI document
// in object storage, including a time-limited download URL.
type SpecSnapshot struct {
	Key         string    `json:"key"`
	Size        int64     `json:"size"`
	ETag        string    `json:"etag"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}
