package model

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User mirrors the identity provider's view of an account. Rows exist
// so that farm ownership has a foreign key target; the identity
// middleware keeps them in sync with the token claims.
type User struct {
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Farm struct {
	ID       uint64  `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	OwnerID  uint64  `json:"owner_id"`
	Owner    *User   `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
	Motors   []Motor `json:"motors,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type Motor struct {
	ID     uint64  `json:"id" gorm:"primaryKey"`
	FarmID uint64  `json:"farm_id"`
	Name   string  `json:"name"`
	Active bool    `json:"active"`
	Valves []Valve `json:"valves,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type Valve struct {
	ID      uint64 `json:"id" gorm:"primaryKey"`
	MotorID uint64 `json:"motor_id"`
	Name    string `json:"name"`
	Open    bool   `json:"open"`
}
