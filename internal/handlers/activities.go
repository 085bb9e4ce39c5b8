package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"volunteerhub/internal/models"
	"volunteerhub/internal/repository"
)

// ActivityHandler serves the volunteering activities routes.
type ActivityHandler struct {
	activities repository.ActivityRepository
}

func NewActivityHandler(activities repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// flexInt tolerates clients sending counts as JSON numbers or strings with a
// leading integer; anything else decodes to zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		raw = s
	}

	*f = flexInt(leadingInt(raw))
	return nil
}

// leadingInt parses the integer prefix of s: an optional sign followed by
// digits, stopping at the first non-digit. No digits means zero.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}

	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return value
}

type createActivityRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Location        string  `json:"location"`
	MaxParticipants flexInt `json:"maxParticipants"`
}

type joinActivityRequest struct {
	UserID   string `json:"userId" binding:"required"`
	UserName string `json:"userName" binding:"required"`
}

// List returns every activity.
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activities.All(c.Request.Context())
	if err != nil {
		slog.Error("activity list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch activities", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// Create inserts a new activity with an empty participant list.
func (h *ActivityHandler) Create(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Activity name is required"})
		return
	}

	activity := &models.Activity{
		Name:            req.Name,
		Description:     req.Description,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Location:        req.Location,
		MaxParticipants: int(req.MaxParticipants),
		Participants:    []models.Participant{},
		CreatedAt:       time.Now(),
		IsActive:        true,
	}

	activityID, err := h.activities.Insert(c.Request.Context(), activity)
	if err != nil {
		slog.Error("activity insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create activity", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Activity created successfully",
		"activityId": activityID,
		"activity":   activity,
	})
}

// Join adds a volunteer to an activity's participant set.
func (h *ActivityHandler) Join(c *gin.Context) {
	var req joinActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId and userName are required"})
		return
	}

	participant := models.Participant{
		UserID:   req.UserID,
		UserName: req.UserName,
		JoinedAt: time.Now(),
	}

	matched, err := h.activities.AddParticipant(c.Request.Context(), c.Param("id"), participant)
	if err != nil {
		slog.Error("activity join failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to join activity", "error": err.Error()})
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, gin.H{"message": "Activity not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully joined activity"})
}
