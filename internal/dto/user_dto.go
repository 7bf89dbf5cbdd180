package dto

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	Biography *string `json:"biography,omitempty" validate:"omitempty,max=1000"`
}
