package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/employwise/internal/common"
	"github.com/dmitrijs2005/employwise/internal/server/users"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	email := req.Email
	if email == "" {
		email = req.Username
	}

	token, err := s.users.Login(c.Request.Context(), email, []byte(req.Password))
	if err != nil {
		switch {
		case errors.Is(err, users.ErrMissingEmail):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Missing email or username"})
		case errors.Is(err, users.ErrMissingPassword):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Missing password"})
		case errors.Is(err, common.ErrorInvalidLoginPassword):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "user not found"})
		default:
			s.logger.Error(c.Request.Context(), "login failed", "error", err)
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
		return
	}

	s.logger.Info(c.Request.Context(), "Logged in", "email", email)
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (s *HTTPServer) listUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))

	result, err := s.users.List(c.Request.Context(), page, perPage)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toPage(result))
}

func (s *HTTPServer) getUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	u, err := s.users.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, singleResponse{Data: toDTO(*u)})
}

func (s *HTTPServer) updateUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	u, err := s.users.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		s.fail(c, err)
		return
	}

	at := u.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}
	c.JSON(http.StatusOK, confirmation(req, at))
}

func (s *HTTPServer) deleteUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := s.users.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// userID parses the :id path parameter. Non-numeric ids are answered with
// 404 like any unknown user.
func userID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{})
		return 0, false
	}
	return id, true
}

// fail maps service errors to HTTP statuses.
func (s *HTTPServer) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "email already in use"})
	case errors.Is(err, users.ErrEmptyPatch):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "nothing to update"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
