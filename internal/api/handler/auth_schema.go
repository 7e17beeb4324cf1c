package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type signupRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Phone     string `json:"phone"      validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Location  string `json:"location"   validate:"required"`
	Status    string `json:"status"     validate:"required,userstatus"`
	Reason    string `json:"reason"     validate:"required"`
	Password  string `json:"password"   validate:"required,min=6"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginUserResponse is the public subset of a stored user. The password never
// appears here, nor anywhere else in a response body.
type loginUserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type loginResponse struct {
	Message string            `json:"message"`
	User    loginUserResponse `json:"user"`
}
