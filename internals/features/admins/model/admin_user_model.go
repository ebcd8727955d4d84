package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AdminUserModel merepresentasikan tabel admin_users
type AdminUserModel struct {
	AdminUserID       uuid.UUID      `gorm:"column:admin_user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_user_id"`
	AdminUserName     string         `gorm:"column:admin_user_name;size:50;not null" json:"admin_user_name" validate:"required,min=3,max=50"`
	AdminUserEmail    string         `gorm:"column:admin_user_email;size:255;unique;not null" json:"admin_user_email" validate:"required,email"`
	AdminUserPassword string         `gorm:"column:admin_user_password;not null" json:"-" validate:"required,min=8"`
	AdminUserGoogleID *string        `gorm:"column:admin_user_google_id;size:255;unique" json:"admin_user_google_id,omitempty"`
	// Secret TOTP hanya disimpan; mekanika MFA di luar scope backend ini
	AdminUserTOTPSecret *string        `gorm:"column:admin_user_totp_secret;size:255" json:"-"`
	AdminUserRoles      pq.StringArray `gorm:"column:admin_user_roles;type:text[]" json:"admin_user_roles"`
	AdminUserIsActive   bool           `gorm:"column:admin_user_is_active;not null;default:true" json:"admin_user_is_active"`
	AdminUserCreatedAt  time.Time      `gorm:"column:admin_user_created_at;autoCreateTime" json:"admin_user_created_at"`
	AdminUserUpdatedAt  time.Time      `gorm:"column:admin_user_updated_at;autoUpdateTime" json:"admin_user_updated_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}
