package dto

// ErrorResponse is the body of every non-2xx answer. Code names the error kind.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type DeleteResponse struct {
	Deleted string `json:"deleted"`
}
