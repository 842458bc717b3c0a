package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iris-j-yan/workout-tracker/internal/observability"
)

// InstallPromptRequest records the user's reply to the deferred
// platform install prompt. The prompt itself is an opaque browser
// signal; only its outcome reaches the server.
type InstallPromptRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=accepted dismissed"`
}

// RecordInstallPrompt handles POST /api/v1/install-prompt.
func RecordInstallPrompt(c *gin.Context) {
	var req InstallPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Outcome must be accepted or dismissed.")
		return
	}

	observability.RecordInstallPromptOutcome(req.Outcome)
	c.JSON(http.StatusOK, gin.H{"outcome": req.Outcome})
}
