package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorDTO is the failure envelope. Kind and Code mirror the error taxonomy
// so clients can branch on them without parsing messages.
type ErrorDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Kind       string      `json:"kind,omitempty"`
	Code       string      `json:"code,omitempty"`
	DevMessage string      `json:"dev_message,omitempty"`
	Locations  interface{} `json:"locations,omitempty"`
}
