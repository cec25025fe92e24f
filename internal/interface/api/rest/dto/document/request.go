package document

// Request carries the multipart form fields of an upload or update; values
// arrive as strings and are validated/parsed before they reach the domain.
type Request struct {
	Category     string
	DocumentName string
	Amount       string
	TaxYear      string
}
