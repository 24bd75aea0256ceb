package server

import (
	"strings"

	"pinboard/internal/models"
	"pinboard/internal/repository"
	"pinboard/internal/service"
	"pinboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required,max=50"`
}

type updatePostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if fields := validation.Struct(req); fields != nil {
		return models.RespondWithFieldErrors(c, fields)
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts?page&size&sortBy&direction
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page, err := s.postService.ListPosts(c.Context(), parsePage(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.detailService.GetDetail(c.Context(), id)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(detail)
}

// GetPostDetailSync handles GET /api/posts/:id/sync — the sequential
// aggregation strategy. Payload is identical to the /async variant; the
// pair exists for external timing comparison.
func (s *Server) GetPostDetailSync(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.detailService.GetDetail(c.Context(), id)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(detail)
}

// GetPostDetailAsync handles GET /api/posts/:id/async — the concurrent
// aggregation strategy.
func (s *Server) GetPostDetailAsync(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.detailService.GetDetailConcurrent(c.Context(), id)
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(detail)
}

// SearchPosts handles GET /api/posts/search. All provided predicates are
// conjoined; absent parameters impose no constraint.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	criteria := repository.PostSearchCriteria{
		Title:           optString(c, "title"),
		Content:         optString(c, "content"),
		Author:          optString(c, "author"),
		CreatedFrom:     optTime(c, "createdFrom"),
		CreatedTo:       optTime(c, "createdTo"),
		UpdatedFrom:     optTime(c, "updatedFrom"),
		UpdatedTo:       optTime(c, "updatedTo"),
		MinCommentCount: optInt(c, "minCommentCount"),
		MaxCommentCount: optInt(c, "maxCommentCount"),
		Keyword:         optString(c, "keyword"),
	}
	if authors := c.Query("authors"); authors != "" {
		for _, a := range strings.Split(authors, ",") {
			if a = strings.TrimSpace(a); a != "" {
				criteria.Authors = append(criteria.Authors, a)
			}
		}
	}

	page, err := s.postService.SearchPosts(c.Context(), criteria, parsePage(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetAuthorStats handles GET /api/posts/stats/authors
func (s *Server) GetAuthorStats(c *fiber.Ctx) error {
	counts, err := s.postService.CountByAuthor(c.Context())
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(counts)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req updatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if fields := validation.Struct(req); fields != nil {
		return models.RespondWithFieldErrors(c, fields)
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		PostID:  id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), id); err != nil {
		return s.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
