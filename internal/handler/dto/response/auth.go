package response

import "meeting-rooms/internal/usecase"

const loginSuccessMessage = "Login successful"

// LoginResponse carries a token when token issuing is on, otherwise a message.
type LoginResponse struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func FromLoginResult(r *usecase.LoginResult) LoginResponse {
	resp := LoginResponse{
		Token:  r.Token,
		UserID: r.User.ID(),
		Name:   r.User.Name(),
		Email:  r.User.Email().Value(),
	}
	if resp.Token == "" {
		resp.Message = loginSuccessMessage
	}
	return resp
}
