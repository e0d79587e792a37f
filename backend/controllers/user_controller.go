package controllers

import (
	"vocabgame/backend/config"
	"vocabgame/backend/middleware"
	"vocabgame/backend/models"
	"vocabgame/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

// Upgrade godoc
// @Summary Upgrade to pro
// @Description Flips the pro flag on the session's account
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /api/user/upgrade [post]
func (uc *UserController) Upgrade(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	result := uc.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_pro", true)
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not update user")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "User not found")
	}

	return utils.JSONSuccess(c, fiber.Map{
		"message": "Upgrade successful! Account is now pro.",
	})
}

// UpdateStats godoc
// @Summary Update gameplay stats
// @Description Replaces the account's stats block
// @Tags users
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Stats payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /api/user/stats [put]
func (uc *UserController) UpdateStats(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input struct {
		Stats models.Stats `json:"stats"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	err := uc.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_words":      input.Stats.TotalWords,
			"correct_answers":  input.Stats.CorrectAnswers,
			"wrong_answers":    input.Stats.WrongAnswers,
			"accuracy":         input.Stats.Accuracy,
			"streak":           input.Stats.Streak,
			"last_played_date": input.Stats.LastPlayedDate,
		}).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not update stats")
	}

	return utils.JSONSuccess(c, fiber.Map{})
}

// UpdateQuestionCount godoc
// @Summary Sync the question counter
// @Description Persists the client's question count. The counter never
// decreases; a stale client cannot lower the stored value, and the
// update is a single atomic statement.
// @Tags users
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Counter payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /api/user/question-count [put]
func (uc *UserController) UpdateQuestionCount(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input struct {
		Count int `json:"count"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Count < 0 {
		return utils.BadRequest(c, "Count must not be negative")
	}

	err := uc.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("question_count", gorm.Expr("GREATEST(question_count, ?)", input.Count)).
		Error
	if err != nil {
		return utils.InternalServerError(c, "Could not update question count")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.JSONSuccess(c, fiber.Map{
		"count": user.QuestionCount,
	})
}

// UpdateAvatar godoc
// @Summary Update avatar
// @Tags users
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Avatar payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /api/user/avatar [put]
func (uc *UserController) UpdateAvatar(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input struct {
		Avatar string `json:"avatar"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Avatar == "" {
		return utils.BadRequest(c, "Missing avatar")
	}

	err := uc.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar", input.Avatar).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not update avatar")
	}

	return utils.JSONSuccess(c, fiber.Map{})
}
