package impl

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/domain"
)

const postColumns = `p.id, p.title, p.slug, p.excerpt, p.cover_image, p.content, p.status, p.view_count, p.created_at, p.updated_at, p.published_at`

func (d *dbImpl) ListPosts(ctx context.Context, filter db.PostFilter, page, size int) ([]domain.Post, int64, error) {
	var conds []string
	var args []any

	if filter.TagSlug != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM post_tags pt
			JOIN tags t ON t.id = pt.tag_id
			WHERE pt.post_id = p.id AND t.slug = ?)`)
		args = append(args, filter.TagSlug)
	}
	if filter.State != "" {
		conds = append(conds, "p.status = ?")
		args = append(args, filter.State)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts p`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, d.HandleError(err)
	}

	rows, err := d.db.QueryContext(ctx,
		`SELECT `+postColumns+` FROM posts p`+where+
			` ORDER BY COALESCE(p.published_at, p.created_at) DESC, p.id DESC LIMIT ? OFFSET ?`,
		append(args, size, (page-1)*size)...)
	if err != nil {
		return nil, 0, d.HandleError(err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := d.scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, d.HandleError(err)
	}

	for i := range posts {
		if posts[i].Tags, err = d.postTags(ctx, posts[i].ID); err != nil {
			return nil, 0, err
		}
	}
	return posts, total, nil
}

func (d *dbImpl) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts p WHERE p.slug = ?`, slug)
	return d.getPost(ctx, row)
}

func (d *dbImpl) GetPostByID(ctx context.Context, id int64) (domain.Post, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts p WHERE p.id = ?`, id)
	return d.getPost(ctx, row)
}

func (d *dbImpl) getPost(ctx context.Context, row scanner) (domain.Post, error) {
	p, err := d.scanPost(row)
	if err != nil {
		return domain.Post{}, err
	}
	if p.Tags, err = d.postTags(ctx, p.ID); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

func (d *dbImpl) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE posts SET view_count = view_count + 1 WHERE id = ?`, id)
	return d.HandleError(err)
}

func (d *dbImpl) InsertPost(ctx context.Context, post domain.Post, tagIDs []int64) (domain.Post, error) {
	now := time.Now().UTC()
	post.Created = now
	post.Updated = now
	if post.State == "" {
		post.State = domain.PostDraft
	}

	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO posts (title, slug, excerpt, cover_image, content, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			post.Title, post.Slug, post.Excerpt, post.CoverImage, post.Content, post.State, now, now)
		if err != nil {
			return err
		}
		if post.ID, err = res.LastInsertId(); err != nil {
			return err
		}
		return replacePostTags(ctx, tx, post.ID, tagIDs)
	})
	if err != nil {
		return domain.Post{}, err
	}

	post.Tags, err = d.postTags(ctx, post.ID)
	return post, err
}

func (d *dbImpl) UpdatePost(ctx context.Context, post domain.Post, tagIDs []int64) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE posts SET title = ?, slug = ?, excerpt = ?, cover_image = ?, content = ?, updated_at = ?
			 WHERE id = ?`,
			post.Title, post.Slug, post.Excerpt, post.CoverImage, post.Content, time.Now().UTC(), post.ID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return db.ErrNotFound
		}
		return replacePostTags(ctx, tx, post.ID, tagIDs)
	})
}

func replacePostTags(ctx context.Context, tx *sql.Tx, postID int64, tagIDs []int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = ?`, postID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_tags (post_id, tag_id) VALUES (?, ?)`, postID, tagID); err != nil {
			return err
		}
	}
	return nil
}

func (d *dbImpl) DeletePost(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return d.HandleError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return d.HandleError(err)
	} else if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (d *dbImpl) SetPostState(ctx context.Context, id int64, state domain.PostState) error {
	res, err := d.db.ExecContext(ctx,
		`UPDATE posts SET status = ?,
		        published_at = CASE WHEN ? = ? AND published_at IS NULL THEN ? ELSE published_at END,
		        updated_at = ?
		 WHERE id = ?`,
		state, state, domain.PostPublished, time.Now().UTC(), time.Now().UTC(), id)
	if err != nil {
		return d.HandleError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return d.HandleError(err)
	} else if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (d *dbImpl) scanPost(row scanner) (domain.Post, error) {
	var (
		p         domain.Post
		published sql.NullTime
	)
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.CoverImage,
		&p.Content, &p.State, &p.ViewCount, &p.Created, &p.Updated, &published)
	if err != nil {
		return domain.Post{}, d.HandleError(err)
	}
	if published.Valid {
		t := published.Time
		p.Published = &t
	}
	return p, nil
}

func (d *dbImpl) postTags(ctx context.Context, postID int64) ([]domain.Tag, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT t.id, t.name, t.slug FROM tags t
		 JOIN post_tags pt ON pt.tag_id = t.id
		 WHERE pt.post_id = ? ORDER BY t.name`, postID)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, d.HandleError(err)
		}
		tags = append(tags, t)
	}
	return tags, d.HandleError(rows.Err())
}

func (d *dbImpl) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, name, slug FROM tags ORDER BY name`)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, d.HandleError(err)
		}
		tags = append(tags, t)
	}
	return tags, d.HandleError(rows.Err())
}

func (d *dbImpl) InsertTag(ctx context.Context, tag domain.Tag) (domain.Tag, error) {
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO tags (name, slug) VALUES (?, ?)`, tag.Name, tag.Slug)
	if err != nil {
		return domain.Tag{}, d.HandleError(err)
	}
	if tag.ID, err = res.LastInsertId(); err != nil {
		return domain.Tag{}, d.HandleError(err)
	}
	return tag, nil
}

func (d *dbImpl) DeleteTag(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return d.HandleError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return d.HandleError(err)
	} else if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (d *dbImpl) GetPage(ctx context.Context, slug string) (domain.Page, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT id, slug, title, content, updated_at FROM pages WHERE slug = ?`, slug)

	var p domain.Page
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.Updated)
	if err != nil {
		return domain.Page{}, d.HandleError(err)
	}
	return p, nil
}

func (d *dbImpl) UpsertPage(ctx context.Context, page domain.Page) (domain.Page, error) {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO pages (slug, title, content, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET title = excluded.title, content = excluded.content, updated_at = excluded.updated_at`,
		page.Slug, page.Title, page.Content, time.Now().UTC())
	if err != nil {
		return domain.Page{}, d.HandleError(err)
	}
	return d.GetPage(ctx, page.Slug)
}

func (d *dbImpl) GetSiteConfig(ctx context.Context) (map[string]string, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT key, value FROM site_config`)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, d.HandleError(err)
		}
		values[k] = v
	}
	return values, d.HandleError(rows.Err())
}

func (d *dbImpl) SetSiteConfig(ctx context.Context, values map[string]string) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for k, v := range values {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO site_config (key, value) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *dbImpl) GetStats(ctx context.Context) (domain.Stats, error) {
	var s domain.Stats
	err := d.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(view_count), 0),
		        COUNT(*),
		        COUNT(CASE WHEN status = ? THEN 1 END)
		 FROM posts`, domain.PostPublished).
		Scan(&s.TotalViews, &s.PostCount, &s.PublishedPostCount)
	if err != nil {
		return domain.Stats{}, d.HandleError(err)
	}

	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&s.CommentCount); err != nil {
		return domain.Stats{}, d.HandleError(err)
	}
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tags`).Scan(&s.TagCount); err != nil {
		return domain.Stats{}, d.HandleError(err)
	}
	return s, nil
}
