package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"property-listings-api/internal/cleanup"
	"property-listings-api/internal/contact"
	"property-listings-api/internal/database"
	"property-listings-api/internal/models"
	"property-listings-api/internal/scheduler"
)

// AdminHandler handles admin-related requests
type AdminHandler struct {
	db             *gorm.DB
	store          *database.GormDB
	cleanupService *cleanup.Service
	scheduler      *scheduler.Scheduler
	contacts       *contact.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store *database.GormDB, cleanupSvc *cleanup.Service, sched *scheduler.Scheduler, contacts *contact.Service) *AdminHandler {
	return &AdminHandler{
		db:             store.DB(),
		store:          store,
		cleanupService: cleanupSvc,
		scheduler:      sched,
		contacts:       contacts,
	}
}

// GetStats returns system statistics
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats := make(map[string]interface{})

	var activeCount, inactiveCount int64
	h.db.Model(&models.Property{}).Where("is_active = ?", true).Count(&activeCount)
	h.db.Model(&models.Property{}).Where("is_active = ?", false).Count(&inactiveCount)

	stats["listings"] = map[string]interface{}{
		"active":   activeCount,
		"inactive": inactiveCount,
		"total":    activeCount + inactiveCount,
	}

	var userCount, pendingCount int64
	h.db.Model(&models.User{}).Count(&userCount)
	h.db.Model(&models.User{}).Where("role = ?", models.RolePendingAgent).Count(&pendingCount)

	stats["users"] = map[string]interface{}{
		"total":          userCount,
		"pending_agents": pendingCount,
	}

	var contactCount int64
	h.db.Model(&models.Contact{}).Count(&contactCount)
	stats["contacts"] = map[string]interface{}{
		"total": contactCount,
	}

	var imageCount int64
	h.db.Model(&models.PropertyImage{}).Count(&imageCount)
	stats["images"] = map[string]interface{}{
		"total": imageCount,
	}

	c.JSON(http.StatusOK, stats)
}

// GetAllUsers lists every account
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := h.store.GetAllUsers()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// GetPendingAgents lists accounts awaiting approval
func (h *AdminHandler) GetPendingAgents(c *gin.Context) {
	users, err := h.store.GetUsersByRole(models.RolePendingAgent)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// ApproveAgent promotes a pending agent to agent
func (h *AdminHandler) ApproveAgent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.store.GetUserByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	if user.Role != models.RolePendingAgent {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user is not a pending agent"})
		return
	}

	user.Role = models.RoleAgent
	if err := h.store.SaveUser(user); err != nil {
		handleError(c, err)
		return
	}

	log.Printf("Admin: agent approved: %s", user.Email)
	c.JSON(http.StatusOK, gin.H{"message": "agent approved", "email": user.Email})
}

// RejectAgent removes a pending agent account
func (h *AdminHandler) RejectAgent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.store.GetUserByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.store.DeleteUser(id); err != nil {
		handleError(c, err)
		return
	}

	log.Printf("Admin: agent rejected and removed: %s", user.Email)
	c.JSON(http.StatusOK, gin.H{"message": "agent rejected", "email": user.Email})
}

// GetRecentContacts lists the latest contact form messages
func (h *AdminHandler) GetRecentContacts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, _ := strconv.Atoi(limitStr)

	contacts, err := h.contacts.Recent(limit)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts, "count": len(contacts)})
}

// RunCleanup executes physical deletion of expired inactive listings
func (h *AdminHandler) RunCleanup(c *gin.Context) {
	var req struct {
		RetentionDays    int  `json:"retention_days"`
		MaxDeletionCount int  `json:"max_deletion_count"`
		DryRun           bool `json:"dry_run"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := cleanup.DefaultConfig()
	if req.RetentionDays > 0 {
		cfg.RetentionDays = req.RetentionDays
	}
	if req.MaxDeletionCount > 0 {
		cfg.MaxDeletionCount = req.MaxDeletionCount
	}
	cfg.DryRun = req.DryRun

	result, err := h.cleanupService.Run(cfg)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCleanupLogs returns the latest purge audit entries
func (h *AdminHandler) GetCleanupLogs(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "100")
	limit, _ := strconv.Atoi(limitStr)

	logs, err := h.cleanupService.RecentLogs(limit)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "count": len(logs)})
}

// Reindex rebuilds the search index from active listings
func (h *AdminHandler) Reindex(c *gin.Context) {
	if h.scheduler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search is not enabled"})
		return
	}

	// Run in goroutine to avoid blocking
	go func() {
		if err := h.scheduler.Reindex(); err != nil {
			log.Printf("Admin: reindex failed: %v", err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"message": "reindex started"})
}
