package dto

type RegisterRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Next     string `form:"next" query:"next"`
}

// ProfileRequest carries the dashboard form. Nil pointers mean the field was
// absent from the form and the stored value is kept.
type ProfileRequest struct {
	Name      *string `form:"name"`
	Phone     *string `form:"phone"`
	Address   *string `form:"address"`
	AvatarURL *string `form:"avatar_url"`
}
