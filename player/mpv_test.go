package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMPVArgs(t *testing.T) {
	Convey("Given a stream with headers", t, func() {
		args, err := mpvArgs("https://cdn.example.com/live.flv?a=1", "Room\ttitle\n", map[string]string{
			"User-Agent": "seam",
			"Referer":    "https://live.example.com/",
			"Cookie":     "a=1,b=2",
		})

		Convey("The title is cleaned and headers are sorted and escaped", func() {
			So(err, ShouldBeNil)
			So(args, ShouldResemble, []string{
				"--no-terminal",
				"--force-window=yes",
				"--force-media-title=Room title",
				"--title=Room title",
				"--http-header-fields=Cookie: a=1%2Cb=2,Referer: https://live.example.com/,User-Agent: seam",
				"https://cdn.example.com/live.flv?a=1",
			})
		})
	})

	Convey("Given no headers", t, func() {
		args, err := mpvArgs("rtmp://cdn.example.com/live/abc", "t", nil)

		Convey("No header flag is passed", func() {
			So(err, ShouldBeNil)
			So(args, ShouldHaveLength, 5)
			So(args[4], ShouldEqual, "rtmp://cdn.example.com/live/abc")
		})
	})

	Convey("Unsafe targets are rejected", t, func() {
		for _, target := range []string{"", "--script=evil.lua", "file:///etc/passwd", "https://x\n"} {
			_, err := mpvArgs(target, "t", nil)
			So(err, ShouldNotBeNil)
		}
	})
}

func TestNew(t *testing.T) {
	Convey("Every listed player can be constructed", t, func() {
		for _, name := range Names {
			p, err := New(name)
			So(err, ShouldBeNil)
			So(p, ShouldNotBeNil)
		}
	})

	Convey("Names are case insensitive", t, func() {
		p, err := New("MPV")
		So(err, ShouldBeNil)
		So(p.Name(), ShouldEqual, "mpv")
	})

	Convey("An unknown player is an error", t, func() {
		_, err := New("winamp")
		So(err, ShouldNotBeNil)
	})
}

func TestOtherArgs(t *testing.T) {
	headers := map[string]string{"Referer": "https://r/", "User-Agent": "ua", "Cookie": "c"}

	Convey("IINA receives mpv options after --args", t, func() {
		args, err := iinaArgs("https://s/x.m3u8", "title", headers)
		So(err, ShouldBeNil)
		So(args, ShouldResemble, []string{
			"-a", "IINA", "https://s/x.m3u8", "--args",
			"--mpv-force-media-title=title",
			"--mpv-http-header-fields=Cookie: c,Referer: https://r/,User-Agent: ua",
		})
	})

	Convey("VLC only receives the referrer and user agent", t, func() {
		args, err := vlcArgs("https://s/x.flv", "title", headers)
		So(err, ShouldBeNil)
		So(args, ShouldResemble, []string{
			"--meta-title=title",
			"--http-referrer=https://r/",
			"--http-user-agent=ua",
			"https://s/x.flv",
		})
	})
}
