package config

import (
	"sort"
	"testing"
	"time"

	"github.com/seam-cli/seam/filesystem"
	"github.com/seam-cli/seam/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("Network timeout defaults to a positive number of seconds", func() {
			_ = Setup()
			So(viper.GetInt(key.NetworkTimeout), ShouldBeGreaterThan, 0)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("network.user_agent")
			So(result, ShouldEqual, "network_user_agent")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env adds the application prefix once", func() {
			f := Field{Key: key.NetworkTimeout}
			So(f.Env(), ShouldEqual, "SEAM_NETWORK_TIMEOUT")

			f = Field{Key: "seam.something"}
			So(f.Env(), ShouldEqual, "SEAM_SOMETHING")
		})

		Convey("Type reports the default value type", func() {
			So((&Field{Value: 1}).Type(), ShouldEqual, "int")
			So((&Field{Value: true}).Type(), ShouldEqual, "bool")
			So((&Field{Value: "x"}).Type(), ShouldEqual, "string")
			So((&Field{Value: 1.5}).Type(), ShouldEqual, "unknown")
		})

		Convey("Parse converts to the default value type", func() {
			n, err := (&Field{Key: key.NetworkTimeout, Value: 1}).Parse(" 30 ")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 30)

			b, err := (&Field{Key: key.LogsJson, Value: false}).Parse("true")
			So(err, ShouldBeNil)
			So(b, ShouldEqual, true)

			s, err := (&Field{Key: key.Player, Value: ""}).Parse("vlc")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, "vlc")
		})

		Convey("Parse rejects values of the wrong type", func() {
			_, err := (&Field{Key: key.NetworkTimeout, Value: 1}).Parse("soon")
			So(err, ShouldNotBeNil)

			_, err = (&Field{Key: key.LogsJson, Value: false}).Parse("maybe")
			So(err, ShouldNotBeNil)

			_, err = (&Field{Key: "x", Value: 1.5}).Parse("1")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestKeys(t *testing.T) {
	Convey("Keys lists every field once in sorted order", t, func() {
		keys := Keys()
		So(len(keys), ShouldEqual, len(Default))
		So(sort.StringsAreSorted(keys), ShouldBeTrue)
		So(keys, ShouldContain, key.Player)
	})
}

func TestTimeout(t *testing.T) {
	Convey("Timeout", t, func() {
		_ = Setup()

		Convey("Uses the configured seconds", func() {
			viper.Set(key.NetworkTimeout, 3)
			So(Timeout(), ShouldEqual, 3*time.Second)
		})

		Convey("Falls back to the default for non-positive values", func() {
			viper.Set(key.NetworkTimeout, 0)
			So(Timeout(), ShouldEqual, 15*time.Second)
		})

		Reset(func() {
			viper.Set(key.NetworkTimeout, Default[key.NetworkTimeout].Value)
		})
	})
}
