package handler

import (
	"net/http"
	"strconv"

	"flappypro/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" form:"username" binding:"required,max=50" example:"alice"`
	Password string `json:"password" form:"password" binding:"required" example:"pw1"`
	Nickname string `json:"nickname" form:"nickname" binding:"max=50" example:"Alice"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required" example:"alice"`
	Password string `json:"password" form:"password" binding:"required" example:"pw1"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string              `json:"message" example:"Registration successful, please log in"`
	User    PrivateUserResponse `json:"user"`
}

// LoginResponse carries the session token and the logged in user.
type LoginResponse struct {
	Token string              `json:"token"`
	User  PrivateUserResponse `json:"user"`
}

// SessionResponse reports whether the caller has a valid session.
type SessionResponse struct {
	Authenticated bool                 `json:"authenticated"`
	User          *PrivateUserResponse `json:"user,omitempty"`
}

// ProfileResponse defines the structure for the profile page.
type ProfileResponse struct {
	User      PrivateUserResponse  `json:"user"`
	GameCount int64                `json:"gameCount" example:"12"`
	Records   []GameRecordResponse `json:"records"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new account. The user has to log in afterwards.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  RegisterResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Username already exists"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), input.Username, input.Password, input.Nickname)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "Registration successful, please log in",
		User:    newPrivateUserResponse(*user),
	})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with username and password, sets the session cookie and returns a token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Wrong password"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.StartSession(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: newPrivateUserResponse(*user)})
}

// LogoutUser godoc
// @Summary      Log out
// @Description  Clears the session cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string "{"message": "Logged out"}"
// @Router       /auth/logout [post]
func (h *Handler) LogoutUser(c *gin.Context) {
	auth.EndSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetSession godoc
// @Summary      Current session
// @Description  Reports whether the caller is logged in and, if so, the user as currently stored.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Router       /session [get]
func (h *Handler) GetSession(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
		return
	}

	response := newPrivateUserResponse(*user)
	c.JSON(http.StatusOK, SessionResponse{Authenticated: true, User: &response})
}

// endregion

// region --- User Handlers ---

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the authenticated user with their game count and full game history, most recent first.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	user := auth.CurrentUser(c)
	ctx := c.Request.Context()

	records, err := h.records.GetUserRecords(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	gameCount, err := h.records.GetUserGameCount(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		User:      newPrivateUserResponse(*user),
		GameCount: gameCount,
		Records:   newGameRecordResponses(records),
	})
}

// GetMyRecords godoc
// @Summary      Get current user's game history
// @Description  Retrieves the authenticated user's games, most recent first, one page at a time.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  Page[GameRecordResponse]
// @Failure      401   {object}  ErrorResponse
// @Router       /users/me/records [get]
func (h *Handler) GetMyRecords(c *gin.Context) {
	user := auth.CurrentUser(c)
	page, limit := pageParams(c)

	records, total, err := h.records.GetUserRecordsPage(c.Request.Context(), user.ID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPage(newGameRecordResponses(records), total, page, limit))
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the public profile for a specific user by their ID.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  PublicUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUserByID(c *gin.Context) {
	targetUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), uint(targetUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, newPublicUserResponse(*user))
}

// endregion
