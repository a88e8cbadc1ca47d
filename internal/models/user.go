package models

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// UserKind is the variant discriminator. The role field is ordinary user
// data and may be rewritten by updates; the kind never changes.
type UserKind string

const (
	KindAdmin    UserKind = "admin"
	KindCustomer UserKind = "customer"
)

type Department string

const (
	DepartmentIT      Department = "IT"
	DepartmentHR      Department = "HR"
	DepartmentSupport Department = "SUPPORT"
	DepartmentSales   Department = "SALES"
	DepartmentDesign  Department = "DESIGN"
)

type PreferredLanguage string

const (
	LanguageES PreferredLanguage = "ES"
	LanguageEN PreferredLanguage = "EN"
	LanguageFR PreferredLanguage = "FR"
	LanguageDE PreferredLanguage = "DE"
	LanguageIT PreferredLanguage = "IT"
)

// User holds both variants in a single table. Admin columns are null on
// customer rows and vice versa.
type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Kind         UserKind `json:"-" gorm:"type:varchar(10);not null;index"`
	Username     string   `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string   `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string   `json:"-" gorm:"type:text;not null"`
	Role         Role     `json:"role" gorm:"type:varchar(20);not null"`

	// Admin variant.
	AdminLevel         *int        `json:"adminLevel,omitempty"`
	Department         *Department `json:"department,omitempty" gorm:"type:varchar(20)"`
	DepartmentImageURL *string     `json:"departmentImageUrl,omitempty" gorm:"type:varchar(255)"`
	LastLogin          *time.Time  `json:"lastLogin,omitempty"`

	// Customer variant.
	ProfileImageURL   *string            `json:"profileImageUrl,omitempty" gorm:"type:varchar(255)"`
	PreferredLanguage *PreferredLanguage `json:"preferredLanguage,omitempty" gorm:"type:varchar(5)"`
	IsVerified        *bool              `json:"isVerified,omitempty"`

	Scenes []Scene `json:"-" gorm:"foreignKey:OwnerID"`
}

func (User) TableName() string {
	return "users"
}

func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleAdmin, RoleCustomer:
		return Role(value), true
	default:
		return "", false
	}
}
