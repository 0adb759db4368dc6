// Package afreeca implements the AfreecaTV (SOOP) adapter.
package afreeca

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/seam-cli/seam/live"
	"github.com/seam-cli/seam/log"
	"github.com/seam-cli/seam/network"
)

// Key is the registry key of the adapter.
const Key = "afreeca"

const (
	defaultLive  = "https://live.afreecatv.com"
	defaultImg   = "https://liveimg.afreecatv.com"
	defaultStimg = "https://stimg.afreecatv.com"
)

var defaultHeaders = map[string]string{
	"Referer": "https://play.afreecatv.com/",
	"Origin":  "https://play.afreecatv.com",
}

// Live fetches channels from the AfreecaTV player API.
type Live struct {
	live   string
	img    string
	stimg  string
	client *http.Client
}

// Option customizes a Live at construction.
type Option func(*Live)

// WithLive overrides the player API base URL.
func WithLive(base string) Option {
	return func(l *Live) { l.live = base }
}

// WithImages overrides the cover and profile image base URLs.
func WithImages(img, stimg string) Option {
	return func(l *Live) {
		l.img = img
		l.stimg = stimg
	}
}

// WithClient sets the HTTP client used for every request.
func WithClient(c *http.Client) Option {
	return func(l *Live) { l.client = c }
}

// New returns an adapter targeting the production endpoints.
func New(opts ...Option) *Live {
	l := &Live{live: defaultLive, img: defaultImg, stimg: defaultStimg}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type channel struct {
	Channel struct {
		Result int    `json:"RESULT"`
		BNO    string `json:"BNO"`
		RMD    string `json:"RMD"`
		CDN    string `json:"CDN"`
		Title  string `json:"TITLE"`
		BJNick string `json:"BJNICK"`
		AID    string `json:"AID"`
	} `json:"CHANNEL"`
}

type assign struct {
	ViewURL string `json:"view_url"`
}

// Get implements live.Live.
func (l *Live) Get(ctx context.Context, rid string, headers map[string]string) (*live.Node, error) {
	logger := log.Platform(Key).WithField("rid", rid)

	info, err := l.player(ctx, rid, "live", headers)
	if err != nil {
		return nil, err
	}
	ch := info.Channel
	if ch.Result < 0 {
		return nil, live.NotFound("afreeca channel %s does not exist (result %d)", rid, ch.Result)
	}

	node := &live.Node{
		RID:    rid,
		Title:  ch.Title,
		Anchor: ch.BJNick,
		Head:   l.head(rid),
		URLs:   []live.Url{},
	}

	if ch.Result == 0 || ch.BNO == "" {
		logger.Debug("channel is offline")
		return node, nil
	}
	node.Cover = l.img + "/m/" + ch.BNO

	token, err := l.player(ctx, rid, "aid", headers)
	if err != nil {
		return nil, err
	}
	if token.Channel.AID == "" {
		return nil, live.Parse(nil, "afreeca channel %s returned no aid", rid)
	}

	query := url.Values{
		"return_type": {ch.CDN},
		"broad_key":   {ch.BNO + "-common-master-hls"},
	}
	req, err := network.NewRequest(ctx, http.MethodGet, ch.RMD+"/broad_stream_assign.html?"+query.Encode(), nil, defaultHeaders, headers)
	if err != nil {
		return nil, err
	}
	var stream assign
	if err := network.FetchJSON(l.httpClient(), req, &stream); err != nil {
		return nil, err
	}
	if stream.ViewURL == "" {
		return nil, live.Parse(nil, "afreeca channel %s returned no view url", rid)
	}

	node.URLs = append(node.URLs, live.Url{
		Format: live.M3U,
		URL:    stream.ViewURL + "?aid=" + token.Channel.AID,
	})
	return node, nil
}

// player posts to player_live_api.php with the given request type.
func (l *Live) player(ctx context.Context, rid, kind string, headers map[string]string) (*channel, error) {
	form := url.Values{
		"bid":         {rid},
		"type":        {kind},
		"player_type": {"html5"},
		"stream_type": {"common"},
		"quality":     {"master"},
		"mode":        {"landing"},
	}
	endpoint := l.live + "/afreeca/player_live_api.php?" + url.Values{"bjid": {rid}}.Encode()

	defaults := lo.Assign(defaultHeaders, map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	req, err := network.NewRequest(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()), defaults, headers)
	if err != nil {
		return nil, err
	}
	var ch channel
	if err := network.FetchJSON(l.httpClient(), req, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (l *Live) head(rid string) string {
	prefix := rid
	if r := []rune(rid); len(r) > 2 {
		prefix = string(r[:2])
	}
	return l.stimg + "/LOGO/" + prefix + "/" + rid + "/m/" + rid + ".webp"
}

func (l *Live) httpClient() *http.Client {
	if l.client != nil {
		return l.client
	}
	return network.Default()
}
