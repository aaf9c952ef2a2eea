package models

type ListResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Data    []Sepatu `json:"data"`
}

type DataResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Data    *Sepatu `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ValidationErrorResponse struct {
	Error    string   `json:"error"`
	Required []string `json:"required"`
}

type WelcomeResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}
