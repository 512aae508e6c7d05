package rest

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/noteshare/internal/common"
	"github.com/dmitrijs2005/noteshare/internal/server/models"
)

// emailPattern is deliberately loose: anything with a local part, an @, and
// a dotted domain. Real validation happens when mail bounces.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		errorJSON(c, http.StatusBadRequest, "Validation Error",
			"Username, email, and password are required")
		return
	}
	if len(req.Password) < minPasswordLength {
		errorJSON(c, http.StatusBadRequest, "Validation Error",
			"Password must be at least 6 characters long")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid email address")
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) || errors.Is(err, common.ErrEmailTaken) {
			errorJSON(c, http.StatusConflict, "Conflict", err.Error())
			return
		}
		s.internalError(c, "Failed to create user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (s *Server) loginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		errorJSON(c, http.StatusBadRequest, "Validation Error",
			"Email and password are required")
		return
	}

	user, token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid email or password")
			return
		}
		s.internalError(c, "Failed to log in", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func (s *Server) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid user ID")
		return
	}

	user, err := s.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(c, http.StatusNotFound, "Not Found", "User not found")
			return
		}
		s.internalError(c, "Failed to fetch user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.users.List(c.Request.Context())
	if err != nil {
		s.internalError(c, "Failed to fetch users", err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (s *Server) updateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid user ID")
		return
	}

	var update models.UserUpdate
	if err := decodeStrict(c, &update); err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid request body")
		return
	}

	if update.Password != nil && len(*update.Password) < minPasswordLength {
		errorJSON(c, http.StatusBadRequest, "Validation Error",
			"Password must be at least 6 characters long")
		return
	}
	if update.Email != nil && !emailPattern.MatchString(*update.Email) {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid email address")
		return
	}

	user, err := s.users.Update(c.Request.Context(), id, &update)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			errorJSON(c, http.StatusNotFound, "Not Found", "User not found")
		case errors.Is(err, common.ErrUsernameTaken), errors.Is(err, common.ErrEmailTaken):
			errorJSON(c, http.StatusConflict, "Conflict", err.Error())
		default:
			s.internalError(c, "Failed to update user", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (s *Server) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid user ID")
		return
	}

	deleted, err := s.users.Delete(c.Request.Context(), id)
	if err != nil {
		s.internalError(c, "Failed to delete user", err)
		return
	}
	if !deleted {
		errorJSON(c, http.StatusNotFound, "Not Found", "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
