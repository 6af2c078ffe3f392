package models

///---------------------------------------------------------USERS---------------------------------------------------------------------------------
type TUser struct {
	ID       int64  `json:"id" gorm:"column:id;primary_key;autoIncrement"`
	Version  int64  `json:"-" gorm:"column:version;not null;default:0"`
	Username string `json:"username" gorm:"column:username;type:varchar(255);not null;uniqueIndex"`
}

func (TUser) TableName() string {
	return "users"
}
