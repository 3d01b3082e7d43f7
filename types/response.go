package types

// ApiResponse is the common envelope returned by every endpoint.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// PageMeta describes pagination of a list response.
type PageMeta struct {
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Total int64 `json:"total"`
	Limit int   `json:"limit"`
}
