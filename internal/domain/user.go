package domain

const (
	DefaultUserName  = "New User"
	DefaultAvatarURL = "https://api.dicebear.com/9.x/identicon/svg?seed=user"
)

type User struct {
	ID             int64  `db:"id"`
	ExternalID     string `db:"external_id"`
	Email          string `db:"email"`
	HashedPassword string `db:"hashed_password"`
	Name           string `db:"name"`
	AvatarURL      string `db:"avatar_url"`
	Phone          string `db:"phone"`
	Address        string `db:"address"`
	CreatedAt      int64  `db:"created_at"`
	UpdatedAt      int64  `db:"updated_at"`
}
