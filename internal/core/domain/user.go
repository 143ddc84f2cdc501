package domain

type (
	User struct {
		ID             string
		Email          string
		Name           string
		Role           string
		EmailConfirmed bool
	}

	Credentials struct {
		Email    string
		Password string
	}

	Registration struct {
		Email    string
		Password string
		Name     string
	}

	AuthSession struct {
		Token string
		User  User
	}
)

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
