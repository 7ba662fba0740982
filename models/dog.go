package models

// Dog represents a single adoptable dog record returned by the catalog API.
// Records are read-only on the client; the catalog service is the only
// authority for this data.
type Dog struct {
	// ID is the catalog-wide unique identifier of the dog.
	ID string `json:"id"`

	// Img is the URL of the dog's photo.
	Img string `json:"img"`

	// Name is the dog's display name.
	Name string `json:"name"`

	// Age is the dog's age in years.
	Age int `json:"age"`

	// ZipCode is the zip code of the shelter holding the dog.
	ZipCode string `json:"zip_code"`

	// Breed is the dog's breed name as listed by the catalog.
	Breed string `json:"breed"`
}

// User carries the credentials sent to the catalog login endpoint.
// The catalog issues an opaque session cookie in response; no credential
// is ever persisted on the client.
type User struct {
	// Name is the user's display name.
	Name string `json:"name"`

	// Email is the user's email address, used as the login identity.
	Email string `json:"email"`
}
