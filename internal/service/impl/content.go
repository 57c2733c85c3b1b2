package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/domain"
	"github.com/sidereusnuntius/zblog/internal/service"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func validateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: empty slug", service.ErrInvalidInput)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: slug may only contain lowercase letters, digits and hyphens", service.ErrInvalidInput)
	}
	return nil
}

func (s *AppService) ListPosts(ctx context.Context, tagSlug string, page, size int) ([]domain.Post, int64, error) {
	page, size = clampPage(page, size, 10, 50)
	return s.DB.ListPosts(ctx, db.PostFilter{State: domain.PostPublished, TagSlug: tagSlug}, page, size)
}

func (s *AppService) GetPost(ctx context.Context, slug string) (domain.Post, error) {
	post, err := s.DB.GetPostBySlug(ctx, slug)
	if err != nil {
		return domain.Post{}, err
	}
	if post.State != domain.PostPublished {
		// Drafts are invisible on the public side.
		return domain.Post{}, db.ErrNotFound
	}

	if err := s.DB.IncrementViewCount(ctx, post.ID); err != nil {
		// The read itself succeeded; losing one view is not worth a 500.
		log.Warn().Err(err).Int64("post", post.ID).Msg("failed to count view")
	} else {
		post.ViewCount++
	}
	return post, nil
}

func (s *AppService) GetPage(ctx context.Context, slug string) (domain.Page, error) {
	return s.DB.GetPage(ctx, slug)
}

func (s *AppService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.DB.ListTags(ctx)
}

func (s *AppService) GetSiteConfig(ctx context.Context) (map[string]string, error) {
	return s.DB.GetSiteConfig(ctx)
}

func (s *AppService) ListAllPosts(ctx context.Context, filter db.PostFilter, page, size int) ([]domain.Post, int64, error) {
	page, size = clampPage(page, size, 20, 100)
	return s.DB.ListPosts(ctx, filter, page, size)
}

func (s *AppService) CreatePost(ctx context.Context, input service.PostInput) (domain.Post, error) {
	post, err := postFromInput(input)
	if err != nil {
		return domain.Post{}, err
	}
	return s.DB.InsertPost(ctx, post, input.TagIDs)
}

func (s *AppService) UpdatePost(ctx context.Context, id int64, input service.PostInput) error {
	post, err := postFromInput(input)
	if err != nil {
		return err
	}
	post.ID = id
	return s.DB.UpdatePost(ctx, post, input.TagIDs)
}

func postFromInput(input service.PostInput) (domain.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Post{}, fmt.Errorf("%w: empty title", service.ErrInvalidInput)
	}
	if err := validateSlug(input.Slug); err != nil {
		return domain.Post{}, err
	}
	return domain.Post{
		Title:      title,
		Slug:       input.Slug,
		Excerpt:    strings.TrimSpace(input.Excerpt),
		CoverImage: strings.TrimSpace(input.CoverImage),
		Content:    input.Content,
	}, nil
}

func (s *AppService) DeletePost(ctx context.Context, id int64) error {
	return s.DB.DeletePost(ctx, id)
}

func (s *AppService) SetPostPublished(ctx context.Context, id int64, published bool) error {
	state := domain.PostDraft
	if published {
		state = domain.PostPublished
	}
	return s.DB.SetPostState(ctx, id, state)
}

func (s *AppService) CreateTag(ctx context.Context, name, slug string) (domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Tag{}, fmt.Errorf("%w: empty tag name", service.ErrInvalidInput)
	}
	if err := validateSlug(slug); err != nil {
		return domain.Tag{}, err
	}
	return s.DB.InsertTag(ctx, domain.Tag{Name: name, Slug: slug})
}

func (s *AppService) DeleteTag(ctx context.Context, id int64) error {
	return s.DB.DeleteTag(ctx, id)
}

func (s *AppService) SavePage(ctx context.Context, slug, title, content string) (domain.Page, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Page{}, fmt.Errorf("%w: empty title", service.ErrInvalidInput)
	}
	if err := validateSlug(slug); err != nil {
		return domain.Page{}, err
	}
	return s.DB.UpsertPage(ctx, domain.Page{Slug: slug, Title: title, Content: content})
}

func (s *AppService) SetSiteConfig(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no configuration values given", service.ErrInvalidInput)
	}
	return s.DB.SetSiteConfig(ctx, values)
}

func (s *AppService) GetStats(ctx context.Context) (domain.Stats, error) {
	return s.DB.GetStats(ctx)
}
