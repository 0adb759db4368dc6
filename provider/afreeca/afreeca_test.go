package afreeca

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seam-cli/seam/live"
	. "github.com/smartystreets/goconvey/convey"
)

type fake struct {
	result int
	forms  []string
}

func (f *fake) server() *httptest.Server {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/afreeca/player_live_api.php", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Query().Get("bjid") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.forms = append(f.forms, r.PostForm.Get("type"))
		if r.PostForm.Get("type") == "aid" {
			fmt.Fprint(w, `{"CHANNEL":{"RESULT":1,"AID":"token.abc"}}`)
			return
		}
		fmt.Fprintf(w, `{"CHANNEL":{"RESULT":%d,"BNO":"281407785","RMD":%q,"CDN":"gcp_cdn","TITLE":"Stream","BJNICK":"Nick"}}`, f.result, srv.URL)
	})
	mux.HandleFunc("/broad_stream_assign.html", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("broad_key") != "281407785-common-master-hls" || r.URL.Query().Get("return_type") != "gcp_cdn" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `{"result":1,"view_url":"https://pc-web.stream.afreecatv.com/live-stm-16/auth_master_playlist.m3u8"}`)
	})
	srv = httptest.NewServer(mux)
	return srv
}

func TestGet(t *testing.T) {
	Convey("Given a live AfreecaTV channel", t, func() {
		f := &fake{result: 1}
		srv := f.server()
		defer srv.Close()
		l := New(WithLive(srv.URL), WithImages("https://img", "https://stimg"), WithClient(srv.Client()))

		node, err := l.Get(context.Background(), "nanajam777", nil)

		Convey("Metadata is normalized", func() {
			So(err, ShouldBeNil)
			So(node.RID, ShouldEqual, "nanajam777")
			So(node.Title, ShouldEqual, "Stream")
			So(node.Anchor, ShouldEqual, "Nick")
			So(node.Cover, ShouldEqual, "https://img/m/281407785")
			So(node.Head, ShouldEqual, "https://stimg/LOGO/na/nanajam777/m/nanajam777.webp")
		})

		Convey("The playlist carries the aid token", func() {
			So(node.URLs, ShouldResemble, []live.Url{{
				Format: live.M3U,
				URL:    "https://pc-web.stream.afreecatv.com/live-stm-16/auth_master_playlist.m3u8?aid=token.abc",
			}})
			So(f.forms, ShouldResemble, []string{"live", "aid"})
		})
	})

	Convey("Given an offline AfreecaTV channel", t, func() {
		f := &fake{result: 0}
		srv := f.server()
		defer srv.Close()
		l := New(WithLive(srv.URL), WithClient(srv.Client()))

		node, err := l.Get(context.Background(), "nanajam777", nil)

		Convey("No aid is requested and urls are empty", func() {
			So(err, ShouldBeNil)
			So(node.Offline(), ShouldBeTrue)
			So(f.forms, ShouldResemble, []string{"live"})
		})
	})

	Convey("Given an unknown AfreecaTV channel", t, func() {
		f := &fake{result: -6}
		srv := f.server()
		defer srv.Close()
		l := New(WithLive(srv.URL), WithClient(srv.Client()))

		_, err := l.Get(context.Background(), "nobody", nil)

		Convey("It fails with not found", func() {
			So(errors.Is(err, live.ErrNotFound), ShouldBeTrue)
			kind, _ := live.KindOf(err)
			So(kind, ShouldEqual, live.KindNotFound)
		})
	})
}

func TestHead(t *testing.T) {
	Convey("A short rid is used whole as the logo prefix", t, func() {
		l := New(WithImages("", "https://stimg"))
		So(l.head("a"), ShouldEqual, "https://stimg/LOGO/a/a/m/a.webp")
	})

	Convey("A multibyte rid is cut on rune boundaries", t, func() {
		l := New(WithImages("", "https://stimg"))
		So(l.head("한국어"), ShouldEqual, "https://stimg/LOGO/한국/한국어/m/한국어.webp")
	})
}
