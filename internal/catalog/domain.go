package catalog

import "errors"

// Item models one physical object tracked by a household.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	House       string `json:"house"`
}

// AddInput describes a request to add an item to the catalog.
type AddInput struct {
	Name        string
	Category    string
	Description string
	House       string
	// PhotoURL carries an external photo reference supplied by the client.
	// It is only consulted when no file upload accompanies the request.
	PhotoURL string
}

// ErrMissingField indicates one of the required item fields is empty.
var ErrMissingField = errors.New("catalog: missing required fields")

// ErrUnknownHouse indicates the item references a house outside the registry.
// Only returned when referential enforcement is enabled.
var ErrUnknownHouse = errors.New("catalog: unknown house")
