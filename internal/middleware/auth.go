package middleware

import (
	"net/http"
	"time"

	"github.com/mmynk/splitdesk/internal/auth"
)

// BearerAuth attaches token as "Authorization: Bearer <token>". A token the
// client can see has expired is not sent; the request fails with
// auth.ErrTokenExpired instead. A nil token leaves requests untouched.
func BearerAuth(token *auth.Token) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		if token == nil {
			return next
		}
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := token.Check(time.Now()); err != nil {
				return nil, err
			}

			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token.String())
			return next.RoundTrip(req)
		})
	}
}
