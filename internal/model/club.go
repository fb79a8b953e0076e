package model

// Club is a football club
type Club struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Name        string `gorm:"column:name;type:varchar(100);not null"`
	Address     string `gorm:"column:address;type:varchar(255);not null"`
	FoundedYear *int   `gorm:"column:founded_year"`

	BaseEntity
}

// TableName specifies the table name for Club
func (*Club) TableName() string {
	return "club"
}
