package highlights

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const maxPerFeed = 50

// Channel is a video channel feed.
type Channel struct {
	URL  string
	Name string
}

// Video is one parsed feed entry.
type Video struct {
	ID        string
	Title     string
	Published time.Time
	Channel   string
}

func fetchVideos(ctx context.Context, parser *gofeed.Parser, ch Channel) ([]Video, error) {
	feed, err := parser.ParseURLWithContext(ch.URL, ctx)
	if err != nil {
		return nil, err
	}
	return parseItems(feed.Items, channelName(ch)), nil
}

func parseItems(items []*gofeed.Item, channel string) []Video {
	var videos []Video
	for _, item := range items {
		if len(videos) >= maxPerFeed {
			break
		}
		if v := parseItem(item, channel); v != nil {
			videos = append(videos, *v)
		}
	}
	return videos
}

func parseItem(item *gofeed.Item, channel string) *Video {
	id := videoID(item)
	title := strings.TrimSpace(item.Title)
	if id == "" || title == "" {
		return nil
	}

	var published time.Time
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	return &Video{ID: id, Title: title, Published: published.UTC(), Channel: channel}
}

// videoID reads yt:videoId, then the watch or short link.
func videoID(item *gofeed.Item) string {
	if yt, ok := item.Extensions["yt"]; ok {
		if ids := yt["videoId"]; len(ids) > 0 && ids[0].Value != "" {
			return ids[0].Value
		}
	}

	u, err := url.Parse(item.Link)
	if err != nil {
		return ""
	}
	if v := u.Query().Get("v"); v != "" {
		return v
	}
	if strings.HasSuffix(u.Hostname(), "youtu.be") {
		return strings.Trim(u.Path, "/")
	}
	if rest, ok := strings.CutPrefix(u.Path, "/shorts/"); ok {
		return strings.Trim(rest, "/")
	}
	return ""
}

func channelName(ch Channel) string {
	if ch.Name != "" {
		return ch.Name
	}
	u, err := url.Parse(ch.URL)
	if err != nil || u.Hostname() == "" {
		return ch.URL
	}
	if id := u.Query().Get("channel_id"); id != "" {
		return id
	}
	host := strings.ToLower(u.Hostname())
	for _, prefix := range []string{"www.", "m.", "feeds."} {
		host = strings.TrimPrefix(host, prefix)
	}
	return host
}
