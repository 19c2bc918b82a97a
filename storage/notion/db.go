package notiondb

import (
	"context"
	"net/http"

	"github.com/jomei/notionapi"
	"github.com/pkg/errors"

	"github.com/jaykayhn/jindo/core"
)

// DB wraps the hosted document-database HTTP client. It is stateless and safe
// for concurrent use; the integration token is long-lived, so there is no
// token cache to refresh.
type DB struct {
	client *notionapi.Client
	conf   *core.Config
}

func Open(conf *core.Config) (*DB, error) {
	if conf.Notion.Token == "" {
		return nil, errors.New("notion: missing integration token")
	}
	return &DB{
		client: notionapi.NewClient(notionapi.Token(conf.Notion.Token)),
		conf:   conf,
	}, nil
}

// tokenGuard escalates a rejected integration token. With no valid token
// every store call fails the same way, so the error calls for a shutdown.
func tokenGuard(err error) error {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		return core.NewShutdownError("notion: " + apiErr.Message)
	}
	return err
}

// queryAll drains a database query across result pages. Single-shot per
// request: any failure surfaces immediately, no retries.
func (db *DB) queryAll(ctx context.Context, dbID string, req *notionapi.DatabaseQueryRequest) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	for {
		resp, err := db.client.Database.Query(ctx, notionapi.DatabaseID(dbID), req)
		if err != nil {
			return nil, errors.Wrap(tokenGuard(err), "querying database")
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			return pages, nil
		}
		req.StartCursor = notionapi.Cursor(resp.NextCursor)
	}
}

// queryFirst returns the first match of a query, or ok=false.
func (db *DB) queryFirst(ctx context.Context, dbID string, filter notionapi.Filter) (notionapi.Page, bool, error) {
	resp, err := db.client.Database.Query(ctx, notionapi.DatabaseID(dbID), &notionapi.DatabaseQueryRequest{
		Filter:   filter,
		PageSize: 1,
	})
	if err != nil {
		return notionapi.Page{}, false, errors.Wrap(tokenGuard(err), "querying database")
	}
	if len(resp.Results) == 0 {
		return notionapi.Page{}, false, nil
	}
	return resp.Results[0], true, nil
}

func (db *DB) createPage(ctx context.Context, dbID string, props notionapi.Properties) (*notionapi.Page, error) {
	page, err := db.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(dbID),
		},
		Properties: props,
	})
	return page, errors.Wrap(tokenGuard(err), "creating page")
}

func (db *DB) updatePage(ctx context.Context, pageID string, props notionapi.Properties) (*notionapi.Page, error) {
	page, err := db.client.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Properties: props,
	})
	return page, errors.Wrap(tokenGuard(err), "updating page")
}
