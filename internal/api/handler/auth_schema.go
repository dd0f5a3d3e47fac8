package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges a successful credential operation.
type messageResponse struct {
	Message string `json:"message"`
}

// Presence of both fields is checked by the credential service so that the
// error message is the same whichever one is missing.
type registerRequest struct {
	Username string `json:"username" validate:"max=80"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
