package user

// UserDTO is the public view of a user.
type UserDTO struct {
	Name   string   `json:"name" example:"jdoe"`
	Groups []string `json:"groups" example:"packager"`
}

func ToDTO(u *User) UserDTO {
	return UserDTO{Name: u.Name, Groups: []string(u.Groups)}
}
