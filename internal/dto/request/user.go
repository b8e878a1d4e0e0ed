package request

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role" validate:"omitempty,oneof=buyer seller"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=buyer seller admin"`
}
