package handler

import (
	"errors"   // sentinel comparisons
	"net/http" // HTTP status codes and primitives
	"time"     // token expiry in responses

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/rifadigital/raffle/internal/auth"    // credential verification
	"github.com/rifadigital/raffle/internal/config"  // app configuration
	"github.com/rifadigital/raffle/internal/session" // per-seller session registry
	"github.com/rifadigital/raffle/internal/utils"   // token issuing
)

// AuthHandler bundles dependencies for auth endpoints. Login resolves
// credentials to a SellerID, creates the per-seller session (with its own
// ledger cache) and issues an access token bound to that session. Logout
// drops the session, which invalidates the token.
type AuthHandler struct {
	Cfg      config.Config
	Registry *auth.Registry
	Sessions *session.Manager
}

func NewAuthHandler(cfg config.Config, reg *auth.Registry, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Registry: reg, Sessions: sessions}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type sellerPart struct {
	Seller  string `json:"seller"`
	Display string `json:"display_name"`
	Role    string `json:"role"`
}
type authResp struct {
	Seller sellerPart `json:"seller"`
	Access tokenPart  `json:"access"`
}

// Login verifies credentials and opens a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	seller, err := h.Registry.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "authentication failed"})
	}

	sess, err := h.Sessions.Create(seller)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create session failed"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, string(seller), seller.Role(), sess.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		h.Sessions.Drop(sess.ID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Seller: sellerPart{Seller: string(seller), Display: seller.DisplayName(), Role: seller.Role()},
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout discards the current session (protected route).
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, _ := c.Get("sid").(string)
	if sid == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no active session"})
	}
	h.Sessions.Drop(sid)
	return c.NoContent(http.StatusNoContent)
}

// Me is a simple protected endpoint returning the session identity.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"seller": c.Get("seller"),
		"role":   c.Get("role"),
	})
}
