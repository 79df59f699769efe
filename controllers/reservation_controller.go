package controllers

import (
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"reservation-demo/config"
	"reservation-demo/middleware"
	"reservation-demo/services"
	"reservation-demo/utils"
)

const maxNights = 14

type ReservationController struct {
	cfg     *config.Runtime
	store   *services.ReservationStore
	catalog *services.CatalogService
	ids     *services.IdentityService
}

func NewReservationController(cfg *config.Runtime, store *services.ReservationStore, catalog *services.CatalogService, ids *services.IdentityService) *ReservationController {
	return &ReservationController{cfg: cfg, store: store, catalog: catalog, ids: ids}
}

// ----------------------------------------------------
// 1. Reservation form (GET /reserve)
// ----------------------------------------------------

func (rc *ReservationController) ShowForm(c *gin.Context) {
	who, ok := requireIdentity(c)
	if !ok {
		return
	}
	token := middleware.CallerToken(c)

	var sb strings.Builder
	sb.WriteString(`<form method="post" action="/reserve">` + "\n")
	if rc.cfg.AuthMode() == config.AuthModeToken {
		sb.WriteString(fmt.Sprintf(`<input type="hidden" name="token" value="%s">`+"\n", token))
	}
	sb.WriteString(fmt.Sprintf(`<label>Guest name <input type="text" name="guest" value="%s"></label>`+"\n", html.EscapeString(who)))
	sb.WriteString(`<label>Room <select name="room">` + "\n")
	for _, room := range rc.catalog.All() {
		sb.WriteString(fmt.Sprintf(`<option value="%s">%s</option>`+"\n", html.EscapeString(room.Name), room.Name))
	}
	sb.WriteString(`</select></label>
<label>Check-in <input type="date" name="checkIn"></label>
<label>Nights <input type="number" name="nights" min="1" max="14" value="1"></label>
<button type="submit">Reserve</button>
</form>`)
	sb.WriteString(fmt.Sprintf("\n"+`<p><a href="%s">Back to menu</a></p>`, rc.ids.Link("/menu", token)))

	utils.HTMLPage(c, http.StatusOK, "Reserve a room", sb.String())
}

// ----------------------------------------------------
// 2. Create reservation (POST /reserve)
// ----------------------------------------------------

// Validation order matters and each step stops the request on its own: missing
// fields, then date shape and calendar validity, then the not-in-the-past
// rule (all 400), then availability (409). Only then is the record appended.
func (rc *ReservationController) Create(c *gin.Context) {
	who, ok := requireIdentity(c)
	if !ok {
		return
	}

	guest := strings.TrimSpace(c.PostForm("guest"))
	roomName := strings.TrimSpace(c.PostForm("room"))
	nightsRaw := strings.TrimSpace(c.PostForm("nights"))
	checkInRaw := strings.TrimSpace(c.PostForm("checkIn"))

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"guest", guest}, {"room", roomName}, {"nights", nightsRaw}, {"checkIn", checkInRaw},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		utils.ErrorPage(c, http.StatusBadRequest,
			"missing required fields: "+strings.Join(missing, ", "))
		return
	}

	nights, err := strconv.Atoi(nightsRaw)
	if err != nil || nights < 1 {
		utils.ErrorPage(c, http.StatusBadRequest, "nights must be a positive integer")
		return
	}
	if nights > maxNights {
		utils.ErrorPage(c, http.StatusBadRequest,
			fmt.Sprintf("nights must be at most %d", maxNights))
		return
	}

	// time.Parse rejects impossible dates like 2026-02-30 instead of
	// normalizing them.
	checkIn, err := time.Parse(dateLayout, checkInRaw)
	if err != nil {
		utils.ErrorPage(c, http.StatusBadRequest,
			fmt.Sprintf("checkIn %q is not a valid YYYY-MM-DD date", checkInRaw))
		return
	}

	today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
	if checkIn.Before(today) {
		utils.ErrorPage(c, http.StatusBadRequest, "checkIn must not be in the past")
		return
	}

	r, err := rc.store.Create(html.EscapeString(guest), html.EscapeString(roomName), checkIn, nights, who)
	if err != nil {
		if errors.Is(err, services.ErrRoomUnavailable) {
			utils.ErrorPage(c, http.StatusConflict,
				fmt.Sprintf("%s is already booked for those dates", html.EscapeString(roomName)))
			return
		}
		utils.ErrorPage(c, http.StatusInternalServerError, "could not save reservation")
		return
	}

	log.Printf("✅ Reservation %d: %s, %s, %s, %d night(s), by %s",
		r.ID, r.GuestName, r.RoomName, r.CheckIn.Format(dateLayout), r.Nights, who)
	c.Redirect(http.StatusSeeOther, rc.ids.Link("/overview", middleware.CallerToken(c)))
}

// ----------------------------------------------------
// 3. Reservation overview (GET /overview)
// ----------------------------------------------------

func (rc *ReservationController) Overview(c *gin.Context) {
	who, ok := requireIdentity(c)
	if !ok {
		return
	}
	token := middleware.CallerToken(c)

	mine := rc.store.ByUser(who)

	var sb strings.Builder
	if len(mine) == 0 {
		sb.WriteString("<p>No reservations yet.</p>\n")
	} else {
		sb.WriteString("<table>\n<tr><th>#</th><th>Guest</th><th>Room</th><th>Check-in</th><th>Check-out</th><th>Nights</th><th>Booked</th></tr>\n")
		for _, r := range mine {
			sb.WriteString(fmt.Sprintf("<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>\n",
				r.ID, r.GuestName, r.RoomName, r.CheckIn.Format(dateLayout),
				r.CheckOut().Format(dateLayout), r.Nights,
				r.CreatedAt.Format(time.RFC3339)))
		}
		sb.WriteString("</table>\n")
	}
	sb.WriteString(fmt.Sprintf(`<p><a href="%s">Make another reservation</a> | <a href="%s">Back to menu</a></p>`,
		rc.ids.Link("/reserve", token), rc.ids.Link("/menu", token)))

	utils.HTMLPage(c, http.StatusOK, "My reservations", sb.String())
}
