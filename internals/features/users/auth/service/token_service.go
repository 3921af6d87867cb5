package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"preschoolku_backend/internals/configs"
	accountModel "preschoolku_backend/internals/features/users/account/model"
	authModel "preschoolku_backend/internals/features/users/auth/model"
	helper "preschoolku_backend/internals/helpers"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

/* ========================== CLAIMS & SIGNING ========================== */

func buildAccessClaims(account accountModel.AccountModel, parentID *uuid.UUID, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":        account.AccountID.String(),
		"user_name": account.AccountUserName,
		"role":      account.AccountRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	if parentID != nil {
		claims["parent_id"] = parentID.String()
	}
	return claims
}

func buildRefreshClaims(accountID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": accountID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// computeRefreshHash keys the stored hash on the refresh secret so a DB leak
// alone cannot be replayed.
func computeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* ========================== COOKIES ========================== */

func setAuthCookies(c *fiber.Ctx, access, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  now.Add(accessTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  expired,
			HTTPOnly: true,
			Secure:   true,
			SameSite: "Lax",
			Path:     "/",
		})
	}
}

/* ========================== ISSUE PAIR ========================== */

// issueTokenPair signs both tokens, persists the refresh hash and sets cookies.
func issueTokenPair(db *gorm.DB, c *fiber.Ctx, account accountModel.AccountModel, parentID *uuid.UUID) (string, string, error) {
	now := time.Now().UTC()

	access, err := signToken(buildAccessClaims(account, parentID, now), configs.JWTSecret)
	if err != nil {
		return "", "", err
	}
	refresh, err := signToken(buildRefreshClaims(account.AccountID, now), configs.JWTRefreshSecret)
	if err != nil {
		return "", "", err
	}

	rec := authModel.RefreshTokenModel{
		AccountID: account.AccountID,
		Token:     computeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTL),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}
	if err := db.Create(&rec).Error; err != nil {
		return "", "", err
	}

	setAuthCookies(c, access, refresh, now)
	return access, refresh, nil
}

/* ========================== REFRESH TOKEN ========================== */
// POST /api/auth/refresh

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Missing refresh secret")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// the stored hash must still exist (rotation invalidates old tokens)
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	var rec authModel.RefreshTokenModel
	if err := db.Where("token = ?", hash).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if time.Now().After(rec.ExpiresAt) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token expired")
	}

	var account accountModel.AccountModel
	if err := db.First(&account, "account_id = ?", accountID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account not found")
	}
	if !account.AccountIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account deactivated")
	}

	// ROTATE: drop the old hash before issuing a new pair
	if err := db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	parentID := lookupParentID(db, account)
	access, _, err := issueTokenPair(db, c, account, parentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue new tokens")
	}

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": access,
	})
}
