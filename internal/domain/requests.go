package domain

// CreateReportRequest deliberately does not constrain Type to the known
// enum values: any non-empty string is stored as-is.
type CreateReportRequest struct {
	Type        string  `json:"type" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Lat         float64 `json:"latitude" validate:"lat"`
	Lng         float64 `json:"longitude" validate:"lng"`
}

type CreateEscortRequest struct {
	Message string  `json:"message" validate:"required"`
	Lat     float64 `json:"latitude" validate:"lat"`
	Lng     float64 `json:"longitude" validate:"lng"`
}

type PostChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type LogInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
