package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"reservation-demo/middleware"
	"reservation-demo/services"
	"reservation-demo/utils"
)

type RoomController struct {
	catalog  *services.CatalogService
	ids      *services.IdentityService
	imageDir string
}

func NewRoomController(catalog *services.CatalogService, ids *services.IdentityService, imageDir string) *RoomController {
	return &RoomController{catalog: catalog, ids: ids, imageDir: imageDir}
}

// ----------------------------------------------------
// 1. Room list (GET /rooms)
// ----------------------------------------------------

func (rc *RoomController) ListRooms(c *gin.Context) {
	if _, ok := requireIdentity(c); !ok {
		return
	}
	token := middleware.CallerToken(c)

	var sb strings.Builder
	sb.WriteString("<ul>\n")
	for _, room := range rc.catalog.All() {
		sb.WriteString(fmt.Sprintf(`<li><a href="%s">%s</a> — %.2f per night</li>`+"\n",
			rc.ids.Link("/rooms/"+strconv.Itoa(room.ID), token), room.Name, room.Price))
	}
	sb.WriteString("</ul>\n")
	sb.WriteString(fmt.Sprintf(`<p><a href="%s">Back to menu</a></p>`, rc.ids.Link("/menu", token)))

	utils.HTMLPage(c, http.StatusOK, "Rooms", sb.String())
}

// ----------------------------------------------------
// 2. Room detail (GET /rooms/:id)
// ----------------------------------------------------

func (rc *RoomController) RoomDetail(c *gin.Context) {
	if _, ok := requireIdentity(c); !ok {
		return
	}
	token := middleware.CallerToken(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorPage(c, http.StatusNotFound, "no such room")
		return
	}
	room, found := rc.catalog.ByID(id)
	if !found {
		utils.ErrorPage(c, http.StatusNotFound, fmt.Sprintf("room %d not found", id))
		return
	}

	body := fmt.Sprintf(`<p>%s</p>
<p>%.2f per night</p>`, room.Description, room.Price)
	if room.Image != "" {
		body = fmt.Sprintf(`<img src="/img/%s" alt="%s">`+"\n", room.Image, room.Name) + body
	}
	body += fmt.Sprintf(`<p><a href="%s">Reserve</a> | <a href="%s">Back to rooms</a></p>`,
		rc.ids.Link("/reserve", token), rc.ids.Link("/rooms", token))

	utils.HTMLPage(c, http.StatusOK, room.Name, body)
}

// ----------------------------------------------------
// 3. Room images (GET /img/:file)
// ----------------------------------------------------

func (rc *RoomController) RoomImage(c *gin.Context) {
	// filepath.Base strips any traversal attempt.
	name := filepath.Base(c.Param("file"))

	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		utils.ErrorPage(c, http.StatusNotFound, "not an image")
		return
	}

	path := filepath.Join(rc.imageDir, name)
	if _, err := os.Stat(path); err != nil {
		utils.ErrorPage(c, http.StatusNotFound, "image not found")
		return
	}
	c.File(path)
}
