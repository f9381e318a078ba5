package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagefolio/internal/service"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact stores a public contact-form submission.
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "invalid contact payload") {
		return
	}

	contact, err := a.contacts.Create(service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrContactInvalidInput) {
			respondError(c, http.StatusBadRequest, "name, email and message are required")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully",
		"id":      contact.ID,
	})
}

// ListContacts returns every submission, newest first. Admin only.
func (a *API) ListContacts(c *gin.Context) {
	contacts, err := a.contacts.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	out := make([]gin.H, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, gin.H{
			"id":         contact.ID,
			"name":       contact.Name,
			"email":      contact.Email,
			"subject":    contact.Subject,
			"message":    contact.Message,
			"created_at": contact.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"contacts": out})
}

// DeleteContact removes one submission by id. Admin only.
func (a *API) DeleteContact(c *gin.Context) {
	err := a.contacts.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, http.StatusNotFound, "contact not found")
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
