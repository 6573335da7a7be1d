package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, JWT access token'ın payload'ı.
//
// Server her request'te token'ı doğrular ve DB'ye gitmeden kullanıcının
// kim olduğunu bilir; AuthMiddleware sonra kullanıcının hâlâ var olduğunu kontrol eder.
//
// models paketinde tanımlı çünkü services ve middleware ikisi de kullanır.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
