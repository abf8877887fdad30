package auth

import (
	"net/http"
	"time"
)

const sessionCookie = "_session"

func VerifyUser(r *http.Request, secret []byte) (string, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", err
	}
	return GetUser(cookie.Value, secret)
}

func SetAuthCookie(username string, w http.ResponseWriter, secret []byte, TTLSeconds int) error {

	ttl := time.Duration(TTLSeconds) * time.Second
	token, err := BuildJWTString(username, secret, ttl)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   TTLSeconds,
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)
	return nil
}

// ClearAuthCookie expires the session cookie immediately.
func ClearAuthCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)
}
