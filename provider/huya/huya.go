// Package huya implements the Huya adapter.
//
// Huya has no public room API. Room state is scraped from the global
// HNF_GLOBAL_INIT object embedded in the mobile room page.
package huya

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seam-cli/seam/constant"
	"github.com/seam-cli/seam/live"
	"github.com/seam-cli/seam/log"
	"github.com/seam-cli/seam/network"
)

// Key is the registry key of the adapter.
const Key = "huya"

const (
	defaultSite = "https://m.huya.com"
	marker      = "HNF_GLOBAL_INIT"
	statusLive  = 2
)

var defaultHeaders = map[string]string{
	"User-Agent": constant.MobileUserAgent,
	"Referer":    "https://m.huya.com/",
}

// Live scrapes rooms from m.huya.com.
type Live struct {
	site   string
	client *http.Client
}

// Option customizes a Live at construction.
type Option func(*Live)

// WithSite overrides the site base URL.
func WithSite(base string) Option {
	return func(l *Live) { l.site = base }
}

// WithClient sets the HTTP client used for every request.
func WithClient(c *http.Client) Option {
	return func(l *Live) { l.client = c }
}

// New returns an adapter targeting the production site.
func New(opts ...Option) *Live {
	l := &Live{site: defaultSite}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type globalInit struct {
	RoomInfo *struct {
		ELiveStatus  int `json:"eLiveStatus"`
		TProfileInfo struct {
			LUID       int64  `json:"lUid"`
			SNick      string `json:"sNick"`
			SAvatar180 string `json:"sAvatar180"`
		} `json:"tProfileInfo"`
		TLiveInfo struct {
			SRoomName   string `json:"sRoomName"`
			SScreenshot string `json:"sScreenshot"`
			TLiveStreamInfo struct {
				VStreamInfo struct {
					Value []streamInfo `json:"value"`
				} `json:"vStreamInfo"`
			} `json:"tLiveStreamInfo"`
		} `json:"tLiveInfo"`
	} `json:"roomInfo"`
}

type streamInfo struct {
	SStreamName   string `json:"sStreamName"`
	SFlvURL       string `json:"sFlvUrl"`
	SFlvURLSuffix string `json:"sFlvUrlSuffix"`
	SFlvAntiCode  string `json:"sFlvAntiCode"`
	SHlsURL       string `json:"sHlsUrl"`
	SHlsURLSuffix string `json:"sHlsUrlSuffix"`
	SHlsAntiCode  string `json:"sHlsAntiCode"`
}

// Get implements live.Live.
func (l *Live) Get(ctx context.Context, rid string, headers map[string]string) (*live.Node, error) {
	logger := log.Platform(Key).WithField("rid", rid)

	req, err := network.NewRequest(ctx, http.MethodGet, l.site+"/"+url.PathEscape(rid), nil, defaultHeaders, headers)
	if err != nil {
		return nil, err
	}
	body, err := network.Fetch(l.httpClient(), req)
	if err != nil {
		return nil, err
	}

	raw, err := extract(body)
	if err != nil {
		return nil, err
	}

	var data globalInit
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return nil, live.Parse(err, "huya room %s: decode %s", rid, marker)
	}

	room := data.RoomInfo
	if room == nil || room.TProfileInfo.LUID == 0 {
		return nil, live.NotFound("huya room %s does not exist", rid)
	}

	node := &live.Node{
		RID:    rid,
		Title:  room.TLiveInfo.SRoomName,
		Cover:  room.TLiveInfo.SScreenshot,
		Anchor: room.TProfileInfo.SNick,
		Head:   room.TProfileInfo.SAvatar180,
		URLs:   []live.Url{},
	}

	if room.ELiveStatus != statusLive {
		logger.Debug("room is offline")
		return node, nil
	}

	node.URLs = streamURLs(room.TLiveInfo.TLiveStreamInfo.VStreamInfo.Value)
	logger.Debugf("found %d urls", len(node.URLs))
	return node, nil
}

// extract returns the JSON literal assigned to HNF_GLOBAL_INIT in page.
func extract(page []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, live.Parse(err, "huya page")
	}

	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := s.Text(); strings.Contains(text, marker) {
			script = text
			return false
		}
		return true
	})
	if script == "" {
		return nil, live.Parse(nil, "huya page has no %s", marker)
	}

	_, rest, _ := strings.Cut(script, marker)
	_, value, ok := strings.Cut(rest, "=")
	if !ok {
		return nil, live.Parse(nil, "huya %s has no assignment", marker)
	}
	value = strings.TrimRight(strings.TrimSpace(value), ";")
	return []byte(strings.TrimSpace(value)), nil
}

// streamURLs lists every flv url, then every hls url.
func streamURLs(streams []streamInfo) []live.Url {
	urls := make([]live.Url, 0, 2*len(streams))
	for _, s := range streams {
		if s.SFlvURL == "" {
			continue
		}
		urls = append(urls, live.Url{
			Format: live.Flv,
			URL:    s.SFlvURL + "/" + s.SStreamName + "." + s.SFlvURLSuffix + "?" + html.UnescapeString(s.SFlvAntiCode),
		})
	}
	for _, s := range streams {
		if s.SHlsURL == "" {
			continue
		}
		urls = append(urls, live.Url{
			Format: live.M3U,
			URL:    s.SHlsURL + "/" + s.SStreamName + "." + s.SHlsURLSuffix + "?" + html.UnescapeString(s.SHlsAntiCode),
		})
	}
	return urls
}

func (l *Live) httpClient() *http.Client {
	if l.client != nil {
		return l.client
	}
	return network.Default()
}
