package dtos

// CreateUserReq is the payload of POST /users.
type CreateUserReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
