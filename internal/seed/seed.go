package seed

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dkovalev/creditplan/internal/pg"
)

// Loader fills an empty database from a directory of tab-separated
// fixture files. Files are read concurrently, inserted in foreign-key
// order inside one transaction. A table that already holds rows is
// left untouched, so running the loader twice is harmless.
type Loader struct {
	db        pg.Database
	txManager pg.TXManager
	dir       string
}

func New(db pg.Database, txManager pg.TXManager, dir string) *Loader {
	return &Loader{
		db:        db,
		txManager: txManager,
		dir:       dir,
	}
}

const dateLayout = "02.01.2006"

// tables lists the seed files in insert order and the columns each one
// may carry. Header names outside this set reject the file.
var tables = []struct {
	name    string
	columns map[string]bool
}{
	{"users", map[string]bool{"id": true, "login": true, "registration_date": true}},
	{"dictionary", map[string]bool{"id": true, "name": true}},
	{"credits", map[string]bool{"id": true, "user_id": true, "issuance_date": true, "return_date": true, "actual_return_date": true, "body": true, "percent": true}},
	{"plans", map[string]bool{"id": true, "period": true, "sum": true, "category_id": true}},
	{"payments", map[string]bool{"id": true, "credit_id": true, "payment_date": true, "sum": true, "type_id": true}},
}

type tableData struct {
	name    string
	columns []string
	rows    [][]interface{}
}

func (l *Loader) Run(ctx context.Context) error {
	parsed := make([]*tableData, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	for i, table := range tables {
		i, table := i, table
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := l.readFile(table.name, table.columns)
			if err != nil {
				return err
			}
			parsed[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return l.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, data := range parsed {
			if data == nil {
				continue
			}
			empty, err := l.tableIsEmpty(ctx, data.name)
			if err != nil {
				return err
			}
			if !empty {
				zap.L().Info("table already seeded, skipping", zap.String("table", data.name))
				continue
			}
			if err := l.insert(ctx, data); err != nil {
				return err
			}
			zap.L().Info("table seeded", zap.String("table", data.name), zap.Int("rows", len(data.rows)))
		}
		return nil
	})
}

// readFile parses <dir>/<table>.tsv: a header line naming columns,
// then one tab-separated row per line. Empty fields become NULL,
// DD.MM.YYYY fields become dates. A missing file is not an error.
func (l *Loader) readFile(table string, allowed map[string]bool) (*tableData, error) {
	path := filepath.Join(l.dir, table+".tsv")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		zap.L().Info("seed file not found, skipping", zap.String("file", path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't open seed file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("seed file %s has no header", path)
	}
	columns := strings.Split(strings.TrimRight(scanner.Text(), "\r"), "\t")
	for _, column := range columns {
		if !allowed[column] {
			return nil, fmt.Errorf("seed file %s: unknown column %q", path, column)
		}
	}

	data := &tableData{name: table, columns: columns}
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != len(columns) {
			return nil, fmt.Errorf("seed file %s: line %d has %d fields, want %d", path, line, len(fields), len(columns))
		}
		row := make([]interface{}, len(fields))
		for i, field := range fields {
			row[i] = convertField(field)
		}
		data.rows = append(data.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("can't read seed file %s: %w", path, err)
	}
	return data, nil
}

func convertField(field string) interface{} {
	if field == "" {
		return nil
	}
	if strings.Count(field, ".") == 2 {
		if date, err := time.Parse(dateLayout, field); err == nil {
			return date
		}
	}
	return field
}

func (l *Loader) tableIsEmpty(ctx context.Context, table string) (bool, error) {
	var exists bool
	err := l.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM "+table+")").Scan(&exists)
	if err != nil {
		zap.L().Error("can't check seed table", zap.String("table", table), zap.Error(err))
		return false, err
	}
	return !exists, nil
}

func (l *Loader) insert(ctx context.Context, data *tableData) error {
	placeholders := make([]string, len(data.columns))
	for i := range data.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		data.name, strings.Join(data.columns, ", "), strings.Join(placeholders, ", "))

	for _, row := range data.rows {
		if _, err := l.db.Exec(ctx, query, row...); err != nil {
			zap.L().Error("can't insert seed row", zap.String("table", data.name), zap.Error(err))
			return err
		}
	}
	return nil
}
