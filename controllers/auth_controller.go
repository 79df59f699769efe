package controllers

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"reservation-demo/config"
	"reservation-demo/middleware"
	"reservation-demo/services"
	"reservation-demo/utils"
)

type AuthController struct {
	cfg *config.Runtime
	ids *services.IdentityService
}

func NewAuthController(cfg *config.Runtime, ids *services.IdentityService) *AuthController {
	return &AuthController{cfg: cfg, ids: ids}
}

// Fixed demo credentials: admin/password, or user<N>/Password<N> for any
// positive integer N. No leading zeros: user07 is not a valid account.
var numberedUserPattern = regexp.MustCompile(`^user([1-9][0-9]*)$`)

func validCredentials(username, password string) bool {
	if username == "admin" && password == "password" {
		return true
	}
	m := numberedUserPattern.FindStringSubmatch(username)
	if m == nil {
		return false
	}
	return password == "Password"+m[1]
}

func loginForm(notice string) string {
	var sb strings.Builder
	if notice != "" {
		sb.WriteString("<p>" + notice + "</p>\n")
	}
	sb.WriteString(`<form method="post" action="/login">
<label>Username <input type="text" name="username"></label>
<label>Password <input type="password" name="password"></label>
<button type="submit">Log in</button>
</form>`)
	return sb.String()
}

// ----------------------------------------------------
// 1. Login page (GET /)
// ----------------------------------------------------

func (a *AuthController) ShowLogin(c *gin.Context) {
	if who := middleware.CallerIdentity(c); who != "" {
		c.Redirect(http.StatusFound, a.ids.Link("/menu", middleware.CallerToken(c)))
		return
	}
	utils.HTMLPage(c, http.StatusOK, "Welcome", loginForm(""))
}

// ----------------------------------------------------
// 2. Login (POST /login)
// ----------------------------------------------------

func (a *AuthController) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if !validCredentials(username, password) {
		log.Printf("❌ Login failed for username %q", username)
		// Failed logins stay on a 200 page; only the body says it failed.
		utils.HTMLPage(c, http.StatusOK, "Login failed",
			loginForm("Invalid username or password."))
		return
	}

	token, err := a.ids.Login(username)
	if err != nil {
		log.Printf("❌ Could not establish identity for %s: %v", username, err)
		utils.ErrorPage(c, http.StatusInternalServerError, "failed to establish identity")
		return
	}

	if a.cfg.AuthMode() == config.AuthModeCookie {
		c.SetCookie(middleware.SessionCookie, username, 0, "/", "", false, true)
	}

	log.Printf("✅ %s logged in (%s mode)", username, a.cfg.AuthMode())
	c.Redirect(http.StatusSeeOther, a.ids.Link("/menu", token))
}

// ----------------------------------------------------
// 3. Logout (GET /logout)
// ----------------------------------------------------

func (a *AuthController) Logout(c *gin.Context) {
	who := middleware.CallerIdentity(c)
	token := middleware.CallerToken(c)

	a.ids.Logout(who, token)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	if who != "" {
		log.Printf("✅ %s logged out", who)
	}
	c.Redirect(http.StatusFound, "/")
}

// ----------------------------------------------------
// 4. Menu (GET /menu)
// ----------------------------------------------------

func (a *AuthController) Menu(c *gin.Context) {
	who, ok := requireIdentity(c)
	if !ok {
		return
	}
	token := middleware.CallerToken(c)

	body := fmt.Sprintf(`<p>Signed in as %s.</p>
<ul>
<li><a href="%s">Rooms</a></li>
<li><a href="%s">Make a reservation</a></li>
<li><a href="%s">My reservations</a></li>
<li><a href="%s">Log out</a></li>
</ul>`,
		who,
		a.ids.Link("/rooms", token),
		a.ids.Link("/reserve", token),
		a.ids.Link("/overview", token),
		a.ids.Link("/logout", token),
	)
	utils.HTMLPage(c, http.StatusOK, "Menu", body)
}
