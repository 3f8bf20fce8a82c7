package model

// ReqLogin is the login form payload forwarded to the backend identity
// endpoint.
type ReqLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ReqRegister is the signup form payload. The backend owns account creation;
// no token is issued until the user logs in.
type ReqRegister struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
