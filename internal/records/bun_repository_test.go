package records_test

import (
	"context"
	"testing"
	"time"

	"github.com/carnelle/portfolio/internal/records"
	"github.com/carnelle/portfolio/pkg/testsupport"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestArticleRepository_WithBunAndCache(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if _, err := bunDB.NewCreateTable().Model((*records.Article)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create articles table: %v", err)
	}

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheSvc, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()

	repo := records.NewBunArticleRepositoryWithCache(bunDB, cacheSvc, keySerializer)

	first, err := repo.Insert(ctx, records.Record[records.ArticleLocale]{
		Status:    records.StatusPublished,
		SortIndex: 2,
		Content: records.LocalizedContent[records.ArticleLocale]{
			FR: records.ArticleLocale{Title: "Entretien", Category: "Presse", ReadTime: "6 min", Date: "2026-01-12", Summary: "Un entretien au long cours."},
			EN: records.ArticleLocale{Title: "Interview", Category: "Press", ReadTime: "6 min", Date: "2026-01-12", Summary: "A long form interview."},
		},
	})
	if err != nil {
		t.Fatalf("insert first: %v", err)
	}

	second, err := repo.Insert(ctx, records.Record[records.ArticleLocale]{
		Status:    records.StatusDraft,
		SortIndex: 1,
		Content: records.LocalizedContent[records.ArticleLocale]{
			FR: records.ArticleLocale{Title: "Chronique", Category: "Radio", ReadTime: "3 min", Date: "2026-02-20", Summary: "Une chronique musicale."},
			EN: records.ArticleLocale{Title: "Column", Category: "Radio", ReadTime: "3 min", Date: "2026-02-20", Summary: "A short music column."},
		},
	})
	if err != nil {
		t.Fatalf("insert second: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	// Storage order is sort index ascending.
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected sort_index ordering, got %v then %v", list[0].SortIndex, list[1].SortIndex)
	}
	if list[1].Content.FR.Title != "Entretien" {
		t.Fatalf("expected decoded french content, got %q", list[1].Content.FR.Title)
	}

	first.Status = records.StatusDraft
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	if list[1].Status != records.StatusDraft {
		t.Fatalf("expected draft status after update, got %q", list[1].Status)
	}

	if err := repo.Delete(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(list) != 1 || list[0].ID != first.ID {
		t.Fatalf("expected one remaining record, got %d", len(list))
	}
}
