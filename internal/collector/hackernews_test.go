package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newHNTestServer(t *testing.T, ids []int, items map[int]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "[")
		for i, id := range ids {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, "%d", id)
		}
		fmt.Fprint(w, "]")
	})
	for id, body := range items {
		body := body
		mux.HandleFunc(fmt.Sprintf("/item/%d.json", id), func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, body)
		})
	}
	return httptest.NewServer(mux)
}

func TestHackerNewsFetchBasic(t *testing.T) {
	srv := newHNTestServer(t, []int{1, 2, 3}, map[int]string{
		1: `{"id":1,"title":"Go 1.25 released","url":"https://go.dev/blog","score":320,"descendants":180,"type":"story"}`,
		2: `{"id":2,"title":"Ask HN: favorite editor?","score":90,"descendants":400,"type":"story"}`,
		3: `{"id":3,"title":"Third story","url":"https://example.com/3","score":10,"descendants":1,"type":"story"}`,
	})
	defer srv.Close()

	f := NewHackerNewsFetcher(WithHackerNewsBaseURL(srv.URL))
	items := f.Fetch(context.Background(), 2)

	if len(items) != 2 {
		t.Fatalf("expected 2 items (limit), got %d", len(items))
	}
	if items[0].Title != "Go 1.25 released" || items[0].Score != 320 || items[0].Comments != 180 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	// 无外链的帖子应退回评论页
	if items[1].URL != "https://news.ycombinator.com/item?id=2" {
		t.Fatalf("expected comments page fallback URL, got %q", items[1].URL)
	}
}

func TestHackerNewsFetchSkipsBadItems(t *testing.T) {
	// id=2 详情缺失（404），id=3 标题为空；都应跳过且不影响其它条目
	srv := newHNTestServer(t, []int{1, 2, 3}, map[int]string{
		1: `{"id":1,"title":"Good story","url":"https://example.com/1","score":5,"descendants":0,"type":"story"}`,
		3: `{"id":3,"title":"","url":"https://example.com/3","score":7,"descendants":2,"type":"story"}`,
	})
	defer srv.Close()

	f := NewHackerNewsFetcher(WithHackerNewsBaseURL(srv.URL))
	items := f.Fetch(context.Background(), 3)

	if len(items) != 1 {
		t.Fatalf("expected 1 item after skipping bad ids, got %d", len(items))
	}
	if items[0].Title != "Good story" {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}

func TestHackerNewsFetchTotalFailureReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewHackerNewsFetcher(WithHackerNewsBaseURL(srv.URL))
	if items := f.Fetch(context.Background(), 5); len(items) != 0 {
		t.Fatalf("expected empty result on total failure, got %d items", len(items))
	}
}
