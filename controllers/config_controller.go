package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reservation-demo/config"
	"reservation-demo/services"
	"reservation-demo/utils"
)

type ConfigController struct {
	cfg   *config.Runtime
	ids   *services.IdentityService
	store *services.ReservationStore
}

func NewConfigController(cfg *config.Runtime, ids *services.IdentityService, store *services.ReservationStore) *ConfigController {
	return &ConfigController{cfg: cfg, ids: ids, store: store}
}

var latencyKnobs = []struct {
	Field    string
	Category string
}{
	{"latency_login", config.CategoryLogin},
	{"latency_menu", config.CategoryMenu},
	{"latency_overview", config.CategoryOverview},
	{"latency_reserve", config.CategoryReserve},
	{"latency_rooms", config.CategoryRooms},
}

func (cc *ConfigController) snapshot() gin.H {
	s := cc.cfg.Snapshot()
	return gin.H{
		"latency":       s.Latency,
		"chaos_percent": s.ChaosPercent,
		"auth_mode":     s.AuthMode,
		"sessions":      cc.ids.SessionCount(),
		"tokens":        cc.ids.TokenCount(),
		"reservations":  cc.store.Len(),
	}
}

// ----------------------------------------------------
// 1. Read config (GET /config)
// ----------------------------------------------------

func (cc *ConfigController) Show(c *gin.Context) {
	c.JSON(http.StatusOK, cc.snapshot())
}

// ----------------------------------------------------
// 2. Update config (POST /config)
// ----------------------------------------------------

// Absent form fields leave their setting untouched. Switching auth_mode
// clears every session and token; all callers re-authenticate.
func (cc *ConfigController) Update(c *gin.Context) {
	for _, k := range latencyKnobs {
		raw := c.PostForm(k.Field)
		if raw == "" {
			continue
		}
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			utils.JSONError(c, http.StatusBadRequest, k.Field+" must be a non-negative integer")
			return
		}
		cc.cfg.SetLatency(k.Category, ms)
	}

	if raw := c.PostForm("chaos_percent"); raw != "" {
		pct, err := strconv.Atoi(raw)
		if err != nil || pct < 0 || pct > 100 {
			utils.JSONError(c, http.StatusBadRequest, "chaos_percent must be an integer between 0 and 100")
			return
		}
		cc.cfg.SetChaosPercent(pct)
		log.Printf("⚠️  Chaos percent set to %d", pct)
	}

	if mode := c.PostForm("auth_mode"); mode != "" {
		if mode != config.AuthModeCookie && mode != config.AuthModeToken {
			utils.JSONError(c, http.StatusBadRequest, "auth_mode must be \"cookie\" or \"token\"")
			return
		}
		if mode != cc.cfg.AuthMode() {
			cc.ids.SwitchMode(mode)
			log.Printf("⚠️  Auth mode switched to %s — all sessions and tokens cleared", mode)
		}
	}

	c.JSON(http.StatusOK, cc.snapshot())
}
