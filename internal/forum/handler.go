package forum

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imran-binhasan/fitstat-server/internal/auth"
	"github.com/imran-binhasan/fitstat-server/internal/user"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreatePost godoc
// @Summary      Create forum post
// @Tags         forum
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePostRequest  true  "Post data"
// @Success      201      {object}  Post
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /forum [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts godoc
// @Summary      List forum posts
// @Description  Pinned posts first, newest next. Hidden posts excluded for non-admins.
// @Tags         forum
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {array}   Post
// @Failure      500     {object}  gin.H
// @Router       /forum [get]
func (h *Handler) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	role, _ := auth.GetUserRole(c)
	includeHidden := role == user.RoleAdmin

	posts, err := h.service.ListPosts(c.Request.Context(), includeHidden, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get forum post
// @Tags         forum
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  Post
// @Failure      400  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /forum/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost godoc
// @Summary      Update own forum post
// @Tags         forum
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                true  "Post ID"
// @Param        request  body      UpdatePostRequest  true  "Fields to change"
// @Success      200      {object}  Post
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /forum/{id} [put]
func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := auth.GetUserID(c)

	post, err := h.service.UpdatePost(c.Request.Context(), userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, ErrNotPostAuthor):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own posts"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete forum post
// @Description  Authors delete their own posts, admins delete any.
// @Tags         forum
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  gin.H
// @Failure      403  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /forum/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	userID, _ := auth.GetUserID(c)
	role, _ := auth.GetUserRole(c)

	if err := h.service.DeletePost(c.Request.Context(), userID, id, role == user.RoleAdmin); err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, ErrNotPostAuthor):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own posts"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// PinPost godoc
// @Summary      Pin or unpin a post
// @Tags         forum
// @Security     BearerAuth
// @Produce      json
// @Param        id      path      int     true   "Post ID"
// @Param        pinned  query     bool    false  "Pin state (default true)"
// @Success      200     {object}  Post
// @Failure      404     {object}  gin.H
// @Router       /admin/forum/{id}/pin [patch]
func (h *Handler) PinPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	pinned := c.DefaultQuery("pinned", "true") == "true"

	post, err := h.service.PinPost(c.Request.Context(), id, pinned)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// HidePost godoc
// @Summary      Hide or unhide a post
// @Tags         forum
// @Security     BearerAuth
// @Produce      json
// @Param        id      path      int   true   "Post ID"
// @Param        hidden  query     bool  false  "Hidden state (default true)"
// @Success      200     {object}  Post
// @Failure      404     {object}  gin.H
// @Router       /admin/forum/{id}/hide [patch]
func (h *Handler) HidePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	hidden := c.DefaultQuery("hidden", "true") == "true"

	post, err := h.service.HidePost(c.Request.Context(), id, hidden)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// VotePost godoc
// @Summary      Vote on a post
// @Tags         forum
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int          true  "Post ID"
// @Param        request  body      VoteRequest  true  "Vote direction"
// @Success      200      {object}  Post
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /forum/{id}/vote [post]
func (h *Handler) VotePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.service.Vote(c.Request.Context(), id, req.Direction)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}

	c.JSON(http.StatusOK, post)
}
