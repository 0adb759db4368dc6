package bili

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seam-cli/seam/live"
	. "github.com/smartystreets/goconvey/convey"
)

const playInfoBody = `{"code":0,"message":"0","data":{"playurl_info":{"playurl":{"stream":[
 {"protocol_name":"http_stream","format":[{"format_name":"flv","codec":[{"codec_name":"avc","base_url":"/live-bvc/1/live_1.flv?","url_info":[
   {"host":"https://cn-a.bilivideo.com","extra":"expires=1"},
   {"host":"https://cn-b.bilivideo.com","extra":"expires=2"}]}]}]},
 {"protocol_name":"http_hls","format":[{"format_name":"ts","codec":[{"codec_name":"avc","base_url":"/live-bvc/1/index.m3u8?","url_info":[
   {"host":"https://cn-c.bilivideo.com","extra":"expires=3"}]}]}]}
]}}}}`

func newServer(liveStatus string, seen *http.Header) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/room/v1/Room/room_init", func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = r.Header.Clone()
		}
		if r.URL.Query().Get("id") != "6" {
			_, _ = io.WriteString(w, `{"code":60004,"message":"直播间不存在","data":{}}`)
			return
		}
		_, _ = io.WriteString(w, `{"code":0,"message":"ok","data":{"room_id":7734200,"live_status":`+liveStatus+`}}`)
	})
	mux.HandleFunc("/room/v1/Room/get_info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":0,"data":{"title":"Official","user_cover":"https://i0.hdslb.com/cover.jpg"}}`)
	})
	mux.HandleFunc("/live_user/v1/UserInfo/get_anchor_in_room", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":0,"data":{"info":{"uname":"bilibili","face":"https://i0.hdslb.com/face.jpg"}}}`)
	})
	mux.HandleFunc("/xlive/web-room/v2/index/getRoomPlayInfo", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("room_id") != "7734200" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = io.WriteString(w, playInfoBody)
	})
	return httptest.NewServer(mux)
}

func TestGet(t *testing.T) {
	Convey("Given a live Bilibili room", t, func() {
		var seen http.Header
		srv := newServer("1", &seen)
		defer srv.Close()
		l := New(WithAPI(srv.URL), WithClient(srv.Client()))

		node, err := l.Get(context.Background(), "6", map[string]string{"Cookie": "SESSDATA=x"})

		Convey("Metadata is normalized", func() {
			So(err, ShouldBeNil)
			So(node.RID, ShouldEqual, "6")
			So(node.Title, ShouldEqual, "Official")
			So(node.Cover, ShouldEqual, "https://i0.hdslb.com/cover.jpg")
			So(node.Anchor, ShouldEqual, "bilibili")
			So(node.Head, ShouldEqual, "https://i0.hdslb.com/face.jpg")
		})

		Convey("Every CDN host yields a url in upstream order", func() {
			So(node.URLs, ShouldResemble, []live.Url{
				{Format: live.Flv, URL: "https://cn-a.bilivideo.com/live-bvc/1/live_1.flv?expires=1"},
				{Format: live.Flv, URL: "https://cn-b.bilivideo.com/live-bvc/1/live_1.flv?expires=2"},
				{Format: live.M3U, URL: "https://cn-c.bilivideo.com/live-bvc/1/index.m3u8?expires=3"},
			})
		})

		Convey("Caller headers are applied on top of the defaults", func() {
			So(seen.Get("Cookie"), ShouldEqual, "SESSDATA=x")
			So(seen.Get("Referer"), ShouldEqual, "https://live.bilibili.com/")
		})
	})

	Convey("Given an offline Bilibili room", t, func() {
		srv := newServer("0", nil)
		defer srv.Close()
		l := New(WithAPI(srv.URL), WithClient(srv.Client()))

		node, err := l.Get(context.Background(), "6", nil)

		Convey("Metadata is returned with no urls", func() {
			So(err, ShouldBeNil)
			So(node.Title, ShouldEqual, "Official")
			So(node.Offline(), ShouldBeTrue)
		})
	})

	Convey("Given an unknown Bilibili room", t, func() {
		srv := newServer("1", nil)
		defer srv.Close()
		l := New(WithAPI(srv.URL), WithClient(srv.Client()))

		_, err := l.Get(context.Background(), "404404", nil)

		Convey("It fails with not found", func() {
			So(errors.Is(err, live.ErrNotFound), ShouldBeTrue)
		})
	})

	Convey("Given an unreachable API", t, func() {
		srv := newServer("1", nil)
		srv.Close()
		l := New(WithAPI(srv.URL), WithClient(srv.Client()))

		_, err := l.Get(context.Background(), "6", nil)

		Convey("It fails with a network error", func() {
			So(errors.Is(err, live.ErrNetwork), ShouldBeTrue)
		})
	})
}

func TestClassify(t *testing.T) {
	Convey("classify", t, func() {
		So(classify("flv"), ShouldEqual, live.Flv)
		So(classify("ts"), ShouldEqual, live.M3U)
		So(classify("fmp4"), ShouldEqual, live.M3U)
		So(classify("webrtc"), ShouldEqual, live.Other("webrtc"))
	})
}
