package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createBookingRequest carries a new booking. The service type is checked
// against the rate card by the service layer so an unknown service surfaces
// as its own error, distinct from a missing field.
type createBookingRequest struct {
	Service  string `json:"service"  validate:"required"`
	Duration int    `json:"duration" validate:"required,min=1"`
	Division string `json:"division" validate:"required"`
	District string `json:"district"`
	City     string `json:"city"`
	Area     string `json:"area"`
	Address  string `json:"address"  validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Completed Cancelled"`
}

type createIntentRequest struct {
	Amount      int64  `json:"amount"      validate:"required,gt=0"`
	ServiceName string `json:"serviceName"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type updateRoleRequest struct {
	ID   string `json:"id"   validate:"required"`
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
