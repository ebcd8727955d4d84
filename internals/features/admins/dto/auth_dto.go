package dto

// 🔹 Login admin (email + password)
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// 🔹 Login admin via Google (ID token dari sisi klien)
type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// 🔹 Pembuatan admin baru (oleh admin aktif)
type CreateAdminRequest struct {
	Name     string   `json:"name" validate:"required,min=3,max=50"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=admin superadmin"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	AdminID     string `json:"admin_id"`
	AdminName   string `json:"admin_name"`
}
