package server

import (
	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/posts/:postId/likes?userId=
// Succeeds only when the post exists and the user has not already liked
// it; a duplicate like is a 409.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	userID, err := s.parseUserID(c)
	if err != nil {
		return nil
	}

	like, err := s.likeService.LikePost(c.Context(), postID, userID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// UnlikePost handles DELETE /api/posts/:postId/likes?userId=
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	userID, err := s.parseUserID(c)
	if err != nil {
		return nil
	}

	if err := s.likeService.UnlikePost(c.Context(), postID, userID); err != nil {
		return s.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetLikeCount handles GET /api/posts/:postId/likes/count
func (s *Server) GetLikeCount(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	count, err := s.likeService.CountLikes(c.Context(), postID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"post_id": postID, "like_count": count})
}

// CheckLike handles GET /api/posts/:postId/likes/check?userId=
func (s *Server) CheckLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	userID, err := s.parseUserID(c)
	if err != nil {
		return nil
	}

	liked, err := s.likeService.HasLiked(c.Context(), postID, userID)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"post_id": postID, "user_id": userID, "liked": liked})
}
