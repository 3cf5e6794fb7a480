package errors

// ValidationError is an error with a field and messages.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrorCollector collects multiple validation errors.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

// HTTPError carries a domain error code and the HTTP status to answer with.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}
