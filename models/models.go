package models

// User is an account record. Optional fields are pointers so that a field
// absent from the database or the request stays absent in JSON instead of
// collapsing to "".
type User struct {
	ID         int     `json:"id"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	ProfilePic *string `json:"profilePic,omitempty"`
}

// Profile is the public projection of a user, without the password.
type Profile struct {
	ID         int     `json:"id"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Username   string  `json:"username"`
	ProfilePic *string `json:"profilePic,omitempty"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Username:   u.Username,
		ProfilePic: u.ProfilePic,
	}
}

// UserPatch carries the fields of a profile update. A nil field was absent
// from the request and must be left untouched; a non-nil field was supplied,
// possibly as an empty string. Name and Password apply only when non-empty,
// Email and ProfilePic apply whenever present, empty or not.
type UserPatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	ProfilePic *string `json:"profilePic"`
}

// Entry is one diary record. The user field is the owning username, not a
// foreign key. Mood and coordinates are optional.
type Entry struct {
	ID      string   `json:"id"`
	User    string   `json:"user"`
	Title   string   `json:"title"`
	Date    Date     `json:"date"`
	Mood    *string  `json:"mood,omitempty"`
	Content string   `json:"content"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}
