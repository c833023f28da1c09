package user

type LoginRequest struct {
	Login    string `json:"login" doc:"User login"`
	Password string `json:"password" doc:"User password"`
}

type RegistrationRequest struct {
	Login     string `json:"login" doc:"Unique user login"`
	Password  string `json:"password" doc:"User password"`
	Mail      string `json:"mail" doc:"Unique user mail"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EditRequest replaces the profile fields of an existing user. The
// password hash is not editable through this path.
type EditRequest struct {
	Login     string `json:"login"`
	Mail      string `json:"mail"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
