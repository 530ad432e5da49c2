package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "pelayananku_backend/internals/helpers"
)

// ActorFromCtx membangun Actor dari klaim yang disimpan AuthMiddleware.
func ActorFromCtx(c *fiber.Ctx) (Actor, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return Actor{}, err
	}
	return Actor{
		ID:   userID,
		Role: helper.GetUserRoleFromToken(c),
	}, nil
}
