package apiclient

// Page is the server's paginated list layout. Next and Previous carry the
// follow-up URLs when more pages exist.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
