package domain

// StandardAccess is the permission level assigned to every account created
// through registration. There is no registration path that grants anything
// higher.
const StandardAccess = 1

// User Model. Login compares the stored password verbatim against what the
// client sends, so the column holds exactly what was registered.
type User struct {
	ID       uint   `gorm:"primaryKey"`                   // Primary key
	Username string `gorm:"size:80;uniqueIndex;not null"` // Unique username
	Password string `gorm:"size:80;not null"`             // Password, compared byte for byte
	Access   int    `gorm:"not null"`                     // Permission level
}
