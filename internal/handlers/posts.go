package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"volunteerhub/internal/models"
	"volunteerhub/internal/repository"
)

// PostHandler serves the community posts routes.
type PostHandler struct {
	posts repository.PostRepository
}

func NewPostHandler(posts repository.PostRepository) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author" binding:"required"`
	AuthorID string `json:"authorId"`
}

// List returns every post, newest first.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.AllByNewest(c.Request.Context())
	if err != nil {
		slog.Error("post list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch community posts", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Create inserts a new post with zero likes and no comments.
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, content and author are required"})
		return
	}

	post := &models.CommunityPost{
		Title:     req.Title,
		Content:   req.Content,
		Author:    req.Author,
		AuthorID:  req.AuthorID,
		Likes:     0,
		Comments:  []models.PostComment{},
		CreatedAt: time.Now(),
		IsActive:  true,
	}

	postID, err := h.posts.Insert(c.Request.Context(), post)
	if err != nil {
		slog.Error("post insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create post", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"postId":  postID,
		"post":    post,
	})
}
