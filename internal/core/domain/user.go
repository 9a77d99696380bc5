package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// DefaultAvatar is assigned to every account created through registration.
const DefaultAvatar = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=1"

// User models a site account. Role is issued once by the backend seed
// data or registration; no operation exists to change it afterwards.
//
// Password is the stored plaintext credential the demo backend keeps on
// the record. The auth store strips it before the user reaches any
// snapshot.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
