package handlers

import (
	"net/http"
	"time"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
	"brs-backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		user, hash, err := (repositories.UserRepo{}).GetByEmail(req.Email)
		if err != nil {
			if domain.IsNotFound(err) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "email atau password salah"})
				return
			}
			RespondError(c, http.StatusInternalServerError, "gagal query user", err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "email atau password salah"})
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"role":    user.Role,
			"exp":     time.Now().Add(24 * time.Hour).Unix(),
		})
		tokenString, err := token.SignedString([]byte(env.JWTSecret))
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "gagal membuat token", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": tokenString,
			"user":  user,
		})
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "email dan password wajib diisi", nil)
		return
	}

	repo := repositories.UserRepo{}
	if _, _, err := repo.GetByEmail(req.Email); err == nil {
		RespondError(c, http.StatusBadRequest, "email sudah terdaftar", nil)
		return
	} else if !domain.IsNotFound(err) {
		RespondError(c, http.StatusInternalServerError, "gagal cek user", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal meng-hash password", err)
		return
	}

	user, err := repo.Insert(models.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  "user",
	}, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registrasi berhasil",
		"user":    user,
	})
}
