// Package store persists the category tree in a local sqlite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkraev/kopilka"
	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at dbPath and brings
// its schema up to date.
func Open(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

type categoryRow struct {
	id       string
	parentID sql.NullString
	name     string
	icon     string
	scope    string
	position int
}

// LoadTree implements kopilka.TreeRepository. A database with no rows
// yields an empty tree, not nil.
func (r *SQLiteRepository) LoadTree() (*kopilka.CategoryTree, error) {
	rows, err := r.db.Query(`SELECT id, parent_id, name, icon, scope, position FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	nodes := make(map[string]*kopilka.CategoryNode)
	var order []categoryRow
	for rows.Next() {
		var row categoryRow
		if err := rows.Scan(&row.id, &row.parentID, &row.name, &row.icon, &row.scope, &row.position); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		nodes[row.id] = &kopilka.CategoryNode{
			ID:    row.id,
			Name:  row.name,
			Icon:  row.icon,
			Scope: kopilka.ParseCategoryScope(row.scope),
		}
		order = append(order, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}

	tree := &kopilka.CategoryTree{}
	for _, row := range order {
		node := nodes[row.id]
		if row.parentID.Valid {
			parent, ok := nodes[row.parentID.String]
			if !ok {
				return nil, fmt.Errorf("category %s references unknown parent %s", row.id, row.parentID.String)
			}
			parent.Children = append(parent.Children, node)
		} else {
			tree.Roots = append(tree.Roots, node)
		}
	}
	return tree, nil
}

// SaveTree implements kopilka.TreeRepository. The whole tree is replaced
// in one transaction.
func (r *SQLiteRepository) SaveTree(tree *kopilka.CategoryTree) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	position := 0
	var insert func(nodes []*kopilka.CategoryNode, parentID sql.NullString) error
	insert = func(nodes []*kopilka.CategoryNode, parentID sql.NullString) error {
		for _, n := range nodes {
			_, err := tx.Exec(
				`INSERT INTO categories (id, parent_id, name, icon, scope, position) VALUES (?, ?, ?, ?, ?, ?)`,
				n.ID, parentID, n.Name, n.Icon, n.Scope.String(), position,
			)
			if err != nil {
				return fmt.Errorf("insert category %q: %w", n.Name, err)
			}
			position++
			if err := insert(n.Children, sql.NullString{String: n.ID, Valid: true}); err != nil {
				return err
			}
		}
		return nil
	}
	if err := insert(tree.Roots, sql.NullString{}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
