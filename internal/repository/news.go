package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
)

var ErrNewsNotFound = errors.New("news not found")

const newsColumns = `n.id, n.title, n.content, n.created_date, n.is_private, n.user_id, u.name`

// NewsRepository handles news and news_categories persistence operations.
type NewsRepository struct {
	db *sql.DB
}

// NewNewsRepository creates a new NewsRepository.
func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// ListPublic returns all non-private news in insertion order, with categories attached.
func (r *NewsRepository) ListPublic(ctx context.Context) ([]model.News, error) {
	query := `SELECT ` + newsColumns + `
		FROM news n JOIN users u ON u.id = n.user_id
		WHERE n.is_private = ? ORDER BY n.id ASC`

	rows, err := r.db.QueryContext(ctx, query, false)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.News{}
	for rows.Next() {
		var n model.News
		if err := scanNews(rows, &n); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := attachCategoryLists(ctx, r.db, list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID retrieves a single news item with its categories, regardless of visibility.
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*model.News, error) {
	query := `SELECT ` + newsColumns + `
		FROM news n JOIN users u ON u.id = n.user_id
		WHERE n.id = ?`

	var n model.News
	if err := scanNews(r.db.QueryRowContext(ctx, query, id), &n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	list := []model.News{n}
	if err := attachCategoryLists(ctx, r.db, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// Create inserts the news row and its category associations in one transaction.
// Category ids that do not exist are skipped.
func (r *NewsRepository) Create(ctx context.Context, n *model.News, categoryIDs []int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO news (title, content, created_date, is_private, user_id) VALUES (?, ?, ?, ?, ?)`,
			n.Title, n.Content, n.CreatedDate, n.IsPrivate, n.UserID,
		)
		if err != nil {
			return fmt.Errorf("insert news: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		n.ID = id

		return attachCategories(ctx, tx, id, categoryIDs)
	})
}

// Update overwrites title, content and visibility and replaces the whole
// category set in one transaction. Owner and creation date never change.
func (r *NewsRepository) Update(ctx context.Context, n *model.News, categoryIDs []int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE news SET title = ?, content = ?, is_private = ? WHERE id = ?`,
			n.Title, n.Content, n.IsPrivate, n.ID,
		)
		if err != nil {
			return fmt.Errorf("update news: %w", err)
		}
		if err := requireAffected(result, ErrNewsNotFound); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM news_categories WHERE news_id = ?`, n.ID); err != nil {
			return fmt.Errorf("clear news categories: %w", err)
		}
		return attachCategories(ctx, tx, n.ID, categoryIDs)
	})
}

// Delete removes the news row and its association rows.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM news_categories WHERE news_id = ?`, id); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM news WHERE id = ?`, id)
		if err != nil {
			return err
		}
		return requireAffected(result, ErrNewsNotFound)
	})
}

// attachCategories links newsID to every existing category in ids. The
// INSERT ... SELECT form inserts nothing for unknown ids.
func attachCategories(ctx context.Context, q querier, newsID int64, ids []int64) error {
	seen := make(map[int64]bool, len(ids))
	for _, cid := range ids {
		if seen[cid] {
			continue
		}
		seen[cid] = true

		if _, err := q.ExecContext(ctx,
			`INSERT INTO news_categories (news_id, category_id) SELECT ?, id FROM categories WHERE id = ?`,
			newsID, cid,
		); err != nil {
			return fmt.Errorf("attach category %d: %w", cid, err)
		}
	}
	return nil
}

// categoryBatchSize bounds how many news ids are bound in one IN (...) list.
// SQLite and MySQL both cap the number of placeholders per statement.
var categoryBatchSize = 500

// attachCategoryLists fills Categories on every item of list, querying the
// join table once per batch of ids.
func attachCategoryLists(ctx context.Context, q querier, list []model.News) error {
	index := make(map[int64]int, len(list))
	for i := range list {
		index[list[i].ID] = i
		list[i].Categories = []model.Category{}
	}

	for start := 0; start < len(list); start += categoryBatchSize {
		end := min(start+categoryBatchSize, len(list))
		if err := loadCategoryBatch(ctx, q, list, index, list[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func loadCategoryBatch(ctx context.Context, q querier, list []model.News, index map[int64]int, batch []model.News) error {
	args := make([]any, len(batch))
	for i := range batch {
		args[i] = batch[i].ID
	}

	query := `SELECT nc.news_id, c.id, c.name
		FROM news_categories nc JOIN categories c ON c.id = nc.category_id
		WHERE nc.news_id IN (` + placeholders(len(args)) + `)
		ORDER BY c.id ASC`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var newsID int64
		var c model.Category
		if err := rows.Scan(&newsID, &c.ID, &c.Name); err != nil {
			return err
		}
		i := index[newsID]
		list[i].Categories = append(list[i].Categories, c)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNews(s rowScanner, n *model.News) error {
	return s.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedDate, &n.IsPrivate, &n.UserID, &n.AuthorName)
}
