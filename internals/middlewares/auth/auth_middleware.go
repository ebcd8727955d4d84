package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventku_backend/internals/configs"
	adminModel "eventku_backend/internals/features/admins/model"
)

// AuthMiddleware memverifikasi JWT admin: token tidak di-blacklist, belum
// kadaluarsa, dan akun admin masih aktif.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Cek blacklist (sekali per request)
		if c.Locals("token_checked") == nil {
			var existing adminModel.TokenBlacklist
			if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token ditemukan di blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validasi exp (dengan sedikit leeway untuk clock skew)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) Ambil admin_id & pastikan akun aktif
		adminID, err := extractAdminID(claims)
		if err != nil {
			log.Println("[ERROR] admin_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing admin ID")
		}
		c.Locals("admin_id", adminID.String())

		if err := ensureAdminActive(db, adminID); err != nil {
			log.Println("[ERROR] ensureAdminActive:", err)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Admin not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		// 6) Simpan klaim dasar ke context
		if name, ok := claims["admin_name"].(string); ok {
			c.Locals("admin_name", name)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, prefix) && len(auth) > len(prefix) {
		return strings.TrimSpace(auth[len(prefix):]), nil
	}
	// fallback cookie (admin panel)
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	return "", errors.New("Unauthorized - No token provided")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("token tanpa klaim exp")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("format exp tidak valid")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token kadaluarsa pada %s", expTime)
	}
	return nil
}

func extractAdminID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["admin_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("klaim admin_id tidak ada")
	}
	return uuid.Parse(raw)
}

func ensureAdminActive(db *gorm.DB, adminID uuid.UUID) error {
	var admin adminModel.AdminUserModel
	if err := db.Select("admin_user_id", "admin_user_is_active").
		First(&admin, "admin_user_id = ?", adminID).Error; err != nil {
		return err
	}
	if !admin.AdminUserIsActive {
		return errors.New("akun nonaktif")
	}
	return nil
}
