// Package bili implements the Bilibili Live adapter.
package bili

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/seam-cli/seam/live"
	"github.com/seam-cli/seam/log"
	"github.com/seam-cli/seam/network"
	"golang.org/x/sync/errgroup"
)

// Key is the registry key of the adapter.
const Key = "bili"

const defaultAPI = "https://api.live.bilibili.com"

// statusLive is the live_status value of a broadcasting room.
const statusLive = 1

var defaultHeaders = map[string]string{
	"Referer": "https://live.bilibili.com/",
	"Origin":  "https://live.bilibili.com",
}

// Live fetches rooms from api.live.bilibili.com.
// A Live holds no mutable state and is safe for concurrent use.
type Live struct {
	api    string
	client *http.Client
}

// Option customizes a Live at construction.
type Option func(*Live)

// WithAPI overrides the API base URL.
func WithAPI(base string) Option {
	return func(l *Live) { l.api = base }
}

// WithClient sets the HTTP client used for every request.
func WithClient(c *http.Client) Option {
	return func(l *Live) { l.client = c }
}

// New returns an adapter targeting the production API.
func New(opts ...Option) *Live {
	l := &Live{api: defaultAPI}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// envelope is the common wrapper of every api.live.bilibili.com response.
type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type roomInit struct {
	RoomID     int64 `json:"room_id"`
	LiveStatus int   `json:"live_status"`
}

type roomInfo struct {
	Title     string `json:"title"`
	UserCover string `json:"user_cover"`
}

type anchorInfo struct {
	Info struct {
		Uname string `json:"uname"`
		Face  string `json:"face"`
	} `json:"info"`
}

type playInfo struct {
	PlayurlInfo struct {
		Playurl struct {
			Stream []struct {
				ProtocolName string `json:"protocol_name"`
				Format       []struct {
					FormatName string `json:"format_name"`
					Codec      []struct {
						CodecName string `json:"codec_name"`
						BaseURL   string `json:"base_url"`
						URLInfo   []struct {
							Host  string `json:"host"`
							Extra string `json:"extra"`
						} `json:"url_info"`
					} `json:"codec"`
				} `json:"format"`
			} `json:"stream"`
		} `json:"playurl"`
	} `json:"playurl_info"`
}

// Get implements live.Live.
func (l *Live) Get(ctx context.Context, rid string, headers map[string]string) (*live.Node, error) {
	logger := log.Platform(Key).WithField("rid", rid)

	var init envelope[roomInit]
	if err := l.call(ctx, "/room/v1/Room/room_init", url.Values{"id": {rid}}, headers, &init); err != nil {
		return nil, err
	}
	if init.Code != 0 || init.Data.RoomID == 0 {
		return nil, live.NotFound("bili room %s: %s (code %d)", rid, init.Message, init.Code)
	}

	roomID := strconv.FormatInt(init.Data.RoomID, 10)
	logger.Debugf("resolved room id %s, live status %d", roomID, init.Data.LiveStatus)

	var (
		info   envelope[roomInfo]
		anchor envelope[anchorInfo]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.call(gctx, "/room/v1/Room/get_info", url.Values{"room_id": {roomID}}, headers, &info)
	})
	g.Go(func() error {
		return l.call(gctx, "/live_user/v1/UserInfo/get_anchor_in_room", url.Values{"roomid": {roomID}}, headers, &anchor)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if info.Code != 0 {
		return nil, live.NotFound("bili room %s info: %s (code %d)", rid, info.Message, info.Code)
	}

	node := &live.Node{
		RID:    rid,
		Title:  info.Data.Title,
		Cover:  info.Data.UserCover,
		Anchor: anchor.Data.Info.Uname,
		Head:   anchor.Data.Info.Face,
		URLs:   []live.Url{},
	}

	if init.Data.LiveStatus != statusLive {
		logger.Debug("room is offline")
		return node, nil
	}

	urls, err := l.playURLs(ctx, roomID, headers)
	if err != nil {
		return nil, err
	}
	node.URLs = urls
	return node, nil
}

func (l *Live) playURLs(ctx context.Context, roomID string, headers map[string]string) ([]live.Url, error) {
	query := url.Values{
		"room_id":  {roomID},
		"protocol": {"0,1"},
		"format":   {"0,1,2"},
		"codec":    {"0"},
		"qn":       {"10000"},
		"platform": {"web"},
		"ptype":    {"8"},
	}

	var play envelope[playInfo]
	if err := l.call(ctx, "/xlive/web-room/v2/index/getRoomPlayInfo", query, headers, &play); err != nil {
		return nil, err
	}
	if play.Code != 0 {
		return nil, live.Parse(nil, "bili play info: %s (code %d)", play.Message, play.Code)
	}

	var urls []live.Url
	for _, stream := range play.Data.PlayurlInfo.Playurl.Stream {
		for _, format := range stream.Format {
			f := classify(format.FormatName)
			for _, codec := range format.Codec {
				for _, info := range codec.URLInfo {
					urls = append(urls, live.Url{
						Format: f,
						URL:    info.Host + codec.BaseURL + info.Extra,
					})
				}
			}
		}
	}
	if len(urls) == 0 {
		return nil, live.Parse(nil, "bili play info for room %s has no streams", roomID)
	}
	return urls, nil
}

// classify maps a Bilibili format_name to a Format.
func classify(name string) live.Format {
	switch name {
	case "flv":
		return live.Flv
	case "ts", "fmp4":
		return live.M3U
	default:
		return live.Other(name)
	}
}

func (l *Live) call(ctx context.Context, path string, query url.Values, headers map[string]string, v any) error {
	req, err := network.NewRequest(ctx, http.MethodGet, l.api+path+"?"+query.Encode(), nil, defaultHeaders, headers)
	if err != nil {
		return err
	}
	return network.FetchJSON(l.httpClient(), req, v)
}

func (l *Live) httpClient() *http.Client {
	if l.client != nil {
		return l.client
	}
	return network.Default()
}
