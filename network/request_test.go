package network

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seam-cli/seam/key"
	"github.com/seam-cli/seam/live"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestHeaders(t *testing.T) {
	Convey("Headers", t, func() {
		viper.Set(key.NetworkUserAgent, "seam-test")

		Convey("The configured User-Agent is the base layer", func() {
			h := Headers()
			So(h.Get("User-Agent"), ShouldEqual, "seam-test")
		})

		Convey("Later sets override earlier ones", func() {
			h := Headers(
				map[string]string{"User-Agent": "adapter", "Referer": "https://a"},
				map[string]string{"user-agent": "caller", "Cookie": "sid=1"},
			)
			So(h.Get("User-Agent"), ShouldEqual, "caller")
			So(h.Get("Referer"), ShouldEqual, "https://a")
			So(h.Get("Cookie"), ShouldEqual, "sid=1")
			So(h.Values("User-Agent"), ShouldHaveLength, 1)
		})

		Convey("Nil sets are ignored", func() {
			h := Headers(nil, nil)
			So(h.Get("User-Agent"), ShouldEqual, "seam-test")
		})

		Reset(func() {
			viper.Set(key.NetworkUserAgent, "")
		})
	})
}

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/ok":
				_, _ = io.WriteString(w, `{"name":"`+r.Header.Get("X-Test")+`"}`)
			case "/broken":
				_, _ = io.WriteString(w, `{not json`)
			case "/missing":
				http.NotFound(w, r)
			default:
				w.WriteHeader(http.StatusBadGateway)
			}
		}))
		defer srv.Close()

		get := func(path string) *http.Request {
			req, err := NewRequest(context.Background(), http.MethodGet, srv.URL+path, nil,
				map[string]string{"X-Test": "default"}, map[string]string{"X-Test": "override"})
			So(err, ShouldBeNil)
			return req
		}

		Convey("Decodes a successful JSON body with overridden headers", func() {
			var v struct{ Name string }
			So(FetchJSON(srv.Client(), get("/ok"), &v), ShouldBeNil)
			So(v.Name, ShouldEqual, "override")
		})

		Convey("Maps 404 to not found", func() {
			_, err := Fetch(srv.Client(), get("/missing"))
			So(errors.Is(err, live.ErrNotFound), ShouldBeTrue)
		})

		Convey("Maps other statuses to network errors", func() {
			_, err := Fetch(srv.Client(), get("/fail"))
			So(errors.Is(err, live.ErrNetwork), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "status 502")
		})

		Convey("Maps undecodable bodies to parse errors", func() {
			var v struct{}
			err := FetchJSON(srv.Client(), get("/broken"), &v)
			So(errors.Is(err, live.ErrParse), ShouldBeTrue)
		})

		Convey("Maps transport failures to network errors", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			req, err := NewRequest(ctx, http.MethodGet, srv.URL+"/ok", nil, nil, nil)
			So(err, ShouldBeNil)
			_, err = Fetch(srv.Client(), req)
			So(errors.Is(err, live.ErrNetwork), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("Rejects malformed URLs before any I/O", func() {
			_, err := NewRequest(context.Background(), http.MethodGet, "://bad", nil, nil, nil)
			So(errors.Is(err, live.ErrNetwork), ShouldBeTrue)
		})
	})
}

func TestDefault(t *testing.T) {
	Convey("Default honors the fingerprint setting", t, func() {
		viper.Set(key.NetworkFingerprint, false)
		So(Default(), ShouldEqual, Client)

		viper.Set(key.NetworkFingerprint, true)
		So(Default(), ShouldEqual, Fingerprinted)

		Reset(func() {
			viper.Set(key.NetworkFingerprint, false)
		})
	})
}

func TestFingerprintTransport(t *testing.T) {
	Convey("Plain HTTP bypasses the uTLS transports", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "plain")
		}))
		defer srv.Close()

		req, err := NewRequest(context.Background(), http.MethodPost, srv.URL, strings.NewReader("x"), nil, nil)
		So(err, ShouldBeNil)
		b, err := Fetch(Fingerprinted, req)
		So(err, ShouldBeNil)
		So(string(b), ShouldEqual, "plain")
	})

	Convey("rewind replays a request body", t, func() {
		req, err := http.NewRequest(http.MethodPost, "https://example.com", strings.NewReader("payload"))
		So(err, ShouldBeNil)
		clone, err := rewind(req)
		So(err, ShouldBeNil)
		b, _ := io.ReadAll(clone.Body)
		So(string(b), ShouldEqual, "payload")
	})
}
