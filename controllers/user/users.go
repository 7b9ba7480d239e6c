package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedseem-infohub/Yelo-Backend/models"
	"github.com/vedseem-infohub/Yelo-Backend/store"
)

type UpdateProfileInput struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

// currentUserID reads the id the JWT middleware put on the context.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw, ok := c.Get("user_id")
	if !ok {
		return primitive.NilObjectID, false
	}
	hex, ok := raw.(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// GetMe returns the authenticated user's own record.
// GET /users/me
func GetMe(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token subject"})
			return
		}
		user, err := s.Users.FindByID(c.Request.Context(), id)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		if err != nil {
			failUsers(c, err, "Failed to fetch user")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
	}
}

// UpdateProfile patches the caller's profile fields; only the fields present
// in the body are touched.
// PUT /users/profile
func UpdateProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token subject"})
			return
		}
		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		user, err := s.Users.UpdateProfile(c.Request.Context(), id, store.ProfileUpdate{
			Name:   input.Name,
			Phone:  input.Phone,
			Avatar: input.Avatar,
		})
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		if err == store.ErrDuplicate {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number already in use"})
			return
		}
		if err != nil {
			failUsers(c, err, "Failed to update profile")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
	}
}

// UpdateAddress replaces the caller's saved address.
// PUT /users/address
func UpdateAddress(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token subject"})
			return
		}
		var address models.Address
		if err := c.ShouldBindJSON(&address); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		user, err := s.Users.UpdateAddress(c.Request.Context(), id, address)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		if err != nil {
			failUsers(c, err, "Failed to update address")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
	}
}
