package model

import "strconv"

// User is an authenticated account; its roles and links decide what it may do to members
type User struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Email    string  `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_user_email"` // 소문자로 저장
	Password string  `gorm:"column:password;type:varchar(60);not null"`                          // 암호화된 비밀번호
	Roles    RoleSet `gorm:"column:roles;type:varchar(64)"`
	Team     *int    `gorm:"column:team"`
	MemberID *string `gorm:"column:member_id;type:varchar(36)"` // 본인 회원 레코드

	BaseEntity
}

// TableName specifies the table name for User
func (*User) TableName() string {
	return "app_user"
}

// NewUser creates a user without roles; password must already be hashed
func NewUser(email, hashedPassword string) *User {
	return &User{
		Email:    NormalizeEmail(email),
		Password: hashedPassword,
		Roles:    RoleSet{},
	}
}

// IDString returns the identifier in the form used by tokens and audit columns.
func (u *User) IDString() string {
	return strconv.FormatUint(uint64(u.ID), 10)
}
