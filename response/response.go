package response

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UploadResponse struct {
	ObjectKey string `json:"object_key"`
}

type ImportResponse struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
}
