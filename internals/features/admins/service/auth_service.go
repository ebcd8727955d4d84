package service

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventku_backend/internals/configs"
	"eventku_backend/internals/features/admins/dto"
	"eventku_backend/internals/features/admins/model"
	helper "eventku_backend/internals/helpers"
)

var validate = validator.New()

const accessTokenTTL = 12 * time.Hour

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var admin model.AdminUserModel
	if err := db.First(&admin, "admin_user_email = ?", input.Email).Error; err != nil {
		// pesan sengaja sama dengan password salah (jangan bocorkan email terdaftar)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	if !admin.AdminUserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminUserPassword), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return issueToken(c, &admin)
}

// ========================== LOGIN GOOGLE ==========================
// Klien mengirim ID token Google; backend memverifikasi audiens & mencocokkan
// email ke admin yang sudah terdaftar (tidak ada auto-provisioning admin).
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginGoogleRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		log.Printf("[ERROR] Verifikasi ID token Google gagal: %v", err)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token Google tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token Google tidak valid")
	}

	var admin model.AdminUserModel
	if err := db.First(&admin, "admin_user_email = ?", claimSet.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email Google ini tidak terdaftar sebagai admin")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !admin.AdminUserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// simpan google_id saat login pertama
	if admin.AdminUserGoogleID == nil && claimSet.Sub != "" {
		sub := claimSet.Sub
		if err := db.Model(&admin).Update("admin_user_google_id", sub).Error; err != nil {
			log.Printf("[WARN] Gagal menyimpan google_id: %v", err)
		}
	}

	return issueToken(c, &admin)
}

// ========================== LOGOUT ==========================
// Token dimasukkan ke blacklist sampai kadaluarsa alaminya.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	entry := model.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(resolveBlacklistTTL(tokenString)),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] Gagal blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ========================== INTERNAL ==========================

func issueToken(c *fiber.Ctx, admin *model.AdminUserModel) error {
	secret := configs.JWTSecret
	if secret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id":   admin.AdminUserID.String(),
		"admin_name": admin.AdminUserName,
		"roles":      []string(admin.AdminUserRoles),
		"iat":        now.Unix(),
		"exp":        now.Add(accessTokenTTL).Unix(),
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Printf("[ERROR] Gagal membuat token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// cookie untuk admin panel (API tetap bisa pakai Authorization header)
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: accessToken,
		AdminID:     admin.AdminUserID.String(),
		AdminName:   admin.AdminUserName,
	})
}

func extractToken(c *fiber.Ctx) string {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return c.Cookies("access_token")
}

// resolveBlacklistTTL membaca exp token; fallback 24 jam kalau token tidak
// bisa diparse (tetap di-blacklist).
func resolveBlacklistTTL(accessToken string) time.Duration {
	fallback := 24 * time.Hour
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				if d := time.Until(time.Unix(int64(exp), 0)); d > 0 {
					return d
				}
			}
		}
	}
	return fallback
}
