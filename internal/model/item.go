package model

// Item is the request body for the item update endpoint and the shape it
// echoes back. Two required fields, two optional ones, each carrying a
// schema example that surfaces in the generated documentation.
//
// Description and Tax are pointers so an omitted field round-trips as JSON
// null instead of a zero value when the item is echoed back to the caller.
type Item struct {
	Name        string   `json:"name" example:"Foo"`
	Description *string  `json:"description" example:"A very nice Item"`
	Price       float64  `json:"price" example:"35.4"`
	Tax         *float64 `json:"tax" example:"3.2"`
}

// ItemRef is a single result row returned by the item search endpoint.
type ItemRef struct {
	ItemID string `json:"item_id" example:"Foo"`
}

// ItemSummary is a single row in the fixed item listing.
type ItemSummary struct {
	Name string `json:"name" example:"wand"`
}
