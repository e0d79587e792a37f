package controllers

import (
	"errors"
	"time"

	"vocabgame/backend/config"
	"vocabgame/backend/middleware"
	"vocabgame/backend/models"
	"vocabgame/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new free-tier account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body credentialsInput true "Registration data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Username == "" || input.Password == "" {
		return utils.BadRequest(c, "Missing username or password")
	}
	if len(input.Username) < 3 || len(input.Username) > 20 {
		return utils.BadRequest(c, "Username must be 3-20 characters")
	}
	if len(input.Password) < 6 {
		return utils.BadRequest(c, "Password must be at least 6 characters")
	}

	var existing models.User
	err := ac.DB.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		return utils.BadRequest(c, "Username already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: utils.HashPassword(input.Password),
		IsPro:        false,
		Avatar:       models.DefaultAvatar,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	return utils.JSONSuccess(c, fiber.Map{
		"message": "Registration successful! Please log in.",
	})
}

// invalidCredentials is shared by the missing-user and wrong-password
// paths so the two cases are indistinguishable to the caller.
const invalidCredentials = "Invalid username or password"

// Login godoc
// @Summary User login
// @Description Verifies credentials and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body credentialsInput true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Username == "" || input.Password == "" {
		return utils.BadRequest(c, "Missing username or password")
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, invalidCredentials)
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if user.PasswordHash != utils.HashPassword(input.Password) {
		return utils.Unauthorized(c, invalidCredentials)
	}

	token, err := utils.GenerateSessionToken(user.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	session := models.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(ac.Cfg.SessionLifetime),
	}
	if err := ac.DB.Create(&session).Error; err != nil {
		return utils.InternalServerError(c, "Could not create session")
	}

	return utils.JSONSuccess(c, fiber.Map{
		"message": "Login successful!",
		"token":   token,
		"user":    user.Public(),
	})
}

// GetUser godoc
// @Summary Get current user
// @Description Returns the account snapshot for the session's owner
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /api/user [get]
func (ac *AuthController) GetUser(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.JSONSuccess(c, fiber.Map{
		"user": user.Public(),
	})
}
