package dto

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email,max=160"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Token string `json:"token"`
}

type UpdateUserInput struct {
	Username      *string `json:"username" validate:"omitempty,min=3,max=64"`
	ImageURL      *string `json:"image_url" validate:"omitempty,max=255"`
	WalletAddress *string `json:"wallet_address" validate:"omitempty,max=64"`
}
