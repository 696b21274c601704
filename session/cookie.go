package session

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

// CookieName is the cookie carrying the session token.
const CookieName = "authToken"

// Cookies reads and writes the session cookie. With a hash key the token is
// signed (and with a block key also encrypted) by securecookie; without one
// the raw token is stored.
type Cookies struct {
	codec  *securecookie.SecureCookie
	secure bool
}

func NewCookies(hashKey, blockKey []byte, secure bool) *Cookies {
	c := &Cookies{secure: secure}
	if len(hashKey) > 0 {
		// MaxAge 0 turns off securecookie's timestamp check: tokens never expire.
		c.codec = securecookie.New(hashKey, blockKey).MaxAge(0)
	}
	return c
}

// Token returns the session token sent with r, or "" when there is none or
// the cookie fails verification.
func (c *Cookies) Token(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	if c.codec == nil {
		return cookie.Value
	}

	var token string
	if err := c.codec.Decode(CookieName, cookie.Value, &token); err != nil {
		logrus.WithError(err).Debug("Rejected session cookie")
		return ""
	}
	return token
}

// SetToken writes a long-lived session cookie for token.
func (c *Cookies) SetToken(w http.ResponseWriter, token string) error {
	value := token
	if c.codec != nil {
		encoded, err := c.codec.Encode(CookieName, token)
		if err != nil {
			return err
		}
		value = encoded
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiry(time.Now()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear tells the browser to drop the session cookie.
func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// expiry moves now into the year 2050.
func expiry(now time.Time) time.Time {
	return now.AddDate(2050-now.Year(), 0, 0)
}
