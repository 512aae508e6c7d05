package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/noteshare/internal/common"
	"github.com/dmitrijs2005/noteshare/internal/server/models"
)

func (s *Server) createNote(c *gin.Context) {
	claims, ok := identity(c)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	var req models.NoteCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Title is required")
		return
	}

	note, err := s.notes.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		s.internalError(c, "Failed to create note", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Note created successfully",
		"note":    note,
	})
}

func (s *Server) myNotes(c *gin.Context) {
	claims, ok := identity(c)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	notes, count, err := s.notes.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		s.internalError(c, "Failed to fetch notes", err)
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}
	c.Header("X-Total-Count", strconv.FormatInt(count, 10))

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func (s *Server) publicNotes(c *gin.Context) {
	notes, err := s.notes.ListPublic(c.Request.Context())
	if err != nil {
		s.internalError(c, "Failed to fetch public notes", err)
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func (s *Server) getNote(c *gin.Context) {
	claims, ok := identity(c)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid note ID")
		return
	}

	note, err := s.notes.Get(c.Request.Context(), id, &claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(c, http.StatusNotFound, "Not Found", "Note not found")
			return
		}
		s.internalError(c, "Failed to fetch note", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": note})
}

func (s *Server) updateNote(c *gin.Context) {
	claims, ok := identity(c)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid note ID")
		return
	}

	var update models.NoteUpdate
	if err := decodeStrict(c, &update); err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid request body")
		return
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Title is required")
		return
	}

	note, err := s.notes.Update(c.Request.Context(), id, claims.UserID, &update)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(c, http.StatusNotFound, "Not Found",
				"Note not found or you do not have permission to update it")
			return
		}
		s.internalError(c, "Failed to update note", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note updated successfully",
		"note":    note,
	})
}

func (s *Server) deleteNote(c *gin.Context) {
	claims, ok := identity(c)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Invalid note ID")
		return
	}

	deleted, err := s.notes.Delete(c.Request.Context(), id, claims.UserID)
	if err != nil {
		s.internalError(c, "Failed to delete note", err)
		return
	}
	if !deleted {
		errorJSON(c, http.StatusNotFound, "Not Found",
			"Note not found or you do not have permission to delete it")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

func (s *Server) searchNotes(c *gin.Context) {
	claims, ok := identity(c)
	if !ok {
		errorJSON(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	query := c.Param("query")
	if strings.TrimSpace(query) == "" {
		errorJSON(c, http.StatusBadRequest, "Validation Error", "Search query is required")
		return
	}

	notes, err := s.notes.Search(c.Request.Context(), query, &claims.UserID)
	if err != nil {
		s.internalError(c, "Failed to search notes", err)
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}
