package impl

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/domain"
)

const commentColumns = `id, post_id, page_slug, parent_id, author_name, author_email, content, status, ip, user_agent, created_at`

func (d *dbImpl) InsertComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	postID, pageSlug := targetColumns(comment.Target)
	parent := sql.NullInt64{Int64: comment.ParentID, Valid: comment.ParentID != 0}
	created := time.Now().UTC()

	res, err := d.db.ExecContext(ctx,
		`INSERT INTO comments (post_id, page_slug, parent_id, author_name, author_email, content, status, ip, user_agent, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		postID, pageSlug, parent,
		comment.AuthorName, comment.AuthorEmail, comment.Body, comment.State,
		comment.SourceAddr, comment.UserAgent, created)
	if err != nil {
		return domain.Comment{}, d.HandleError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, d.HandleError(err)
	}
	comment.ID = id
	comment.Created = created
	return comment, nil
}

func (d *dbImpl) GetComment(ctx context.Context, id int64) (domain.Comment, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = ?`, id)
	return d.scanComment(row)
}

func (d *dbImpl) UpdateCommentState(ctx context.Context, id int64, state domain.CommentState) error {
	res, err := d.db.ExecContext(ctx,
		`UPDATE comments SET status = ? WHERE id = ?`, state, id)
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

func (d *dbImpl) DeleteComment(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
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

func (d *dbImpl) ListComments(ctx context.Context, filter domain.CommentFilter, page, size int) ([]domain.Comment, int64, error) {
	var conds []string
	var args []any

	if id, ok := filter.Target.PostID(); ok {
		conds = append(conds, "post_id = ?")
		args = append(args, id)
	} else if slug, ok := filter.Target.PageSlug(); ok {
		conds = append(conds, "page_slug = ?")
		args = append(args, slug)
	}
	if filter.State != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.State)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	return d.listComments(ctx, where, "ORDER BY created_at DESC, id DESC", args, page, size)
}

func (d *dbImpl) ListPublicComments(ctx context.Context, target domain.CommentTarget, page, size int) ([]domain.Comment, int64, error) {
	var cond string
	var args []any

	if id, ok := target.PostID(); ok {
		cond = "post_id = ?"
		args = append(args, id)
	} else if slug, ok := target.PageSlug(); ok {
		cond = "page_slug = ?"
		args = append(args, slug)
	}
	where := " WHERE " + cond + " AND status = ?"
	args = append(args, domain.CommentApproved)

	return d.listComments(ctx, where, "ORDER BY created_at ASC, id ASC", args, page, size)
}

func (d *dbImpl) listComments(ctx context.Context, where, order string, args []any, page, size int) ([]domain.Comment, int64, error) {
	var total int64
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, d.HandleError(err)
	}

	query := `SELECT ` + commentColumns + ` FROM comments` + where + ` ` + order + ` LIMIT ? OFFSET ?`
	rows, err := d.db.QueryContext(ctx, query, append(args, size, (page-1)*size)...)
	if err != nil {
		return nil, 0, d.HandleError(err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		c, err := d.scanComment(rows)
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, c)
	}
	return comments, total, d.HandleError(rows.Err())
}

type scanner interface {
	Scan(dest ...any) error
}

func (d *dbImpl) scanComment(row scanner) (domain.Comment, error) {
	var (
		c        domain.Comment
		postID   sql.NullInt64
		pageSlug sql.NullString
		parentID sql.NullInt64
		ip       sql.NullString
		ua       sql.NullString
	)
	err := row.Scan(&c.ID, &postID, &pageSlug, &parentID,
		&c.AuthorName, &c.AuthorEmail, &c.Body, &c.State, &ip, &ua, &c.Created)
	if err != nil {
		return domain.Comment{}, d.HandleError(err)
	}

	if postID.Valid {
		c.Target = domain.PostTarget(postID.Int64)
	} else if pageSlug.Valid {
		c.Target = domain.PageTarget(pageSlug.String)
	}
	c.ParentID = parentID.Int64
	c.SourceAddr = ip.String
	c.UserAgent = ua.String
	return c, nil
}

func targetColumns(t domain.CommentTarget) (sql.NullInt64, sql.NullString) {
	var postID sql.NullInt64
	var pageSlug sql.NullString

	if id, ok := t.PostID(); ok {
		postID = sql.NullInt64{Int64: id, Valid: true}
	}
	if slug, ok := t.PageSlug(); ok {
		pageSlug = sql.NullString{String: slug, Valid: true}
	}
	return postID, pageSlug
}
