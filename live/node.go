// Package live defines the normalized room model and the capability contract shared by every platform adapter.
package live

import (
	"encoding/json"
	"slices"
)

// RenderFailed is returned by Node.JSON when the node cannot be serialized.
const RenderFailed = "serialization failed"

// Node is a snapshot of one live room at fetch time.
type Node struct {
	// Room identifier as supplied by the caller.
	RID string `json:"rid"`
	// Room title.
	Title string `json:"title"`
	// Cover image URL.
	Cover string `json:"cover"`
	// Anchor display name.
	Anchor string `json:"anchor"`
	// Anchor avatar URL.
	Head string `json:"head"`
	// Playback candidates in adapter preference order.
	// Empty when the room exists but is not broadcasting.
	URLs []Url `json:"urls"`
}

// Url is one candidate playback endpoint, already at the best quality the adapter found.
type Url struct {
	Format Format `json:"format"`
	URL    string `json:"url"`
}

// JSON renders the node as indented JSON.
// It never fails; RenderFailed is returned if serialization errors.
// A nil URL list renders as an empty array.
func (n *Node) JSON() string {
	v := n
	if n != nil && n.URLs == nil {
		c := *n
		c.URLs = []Url{}
		v = &c
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return RenderFailed
	}
	return string(b)
}

// Equal reports whether both nodes carry identical fields and URL lists.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.RID == o.RID &&
		n.Title == o.Title &&
		n.Cover == o.Cover &&
		n.Anchor == o.Anchor &&
		n.Head == o.Head &&
		slices.Equal(n.URLs, o.URLs)
}

// Offline reports whether the node has no playback candidates.
// A nil node is offline.
func (n *Node) Offline() bool {
	return n == nil || len(n.URLs) == 0
}

// Find returns the most preferred Url of the given format.
func (n *Node) Find(f Format) (Url, bool) {
	for _, u := range n.URLs {
		if u.Format == f {
			return u, true
		}
	}
	return Url{}, false
}

// As returns the endpoint if the Url has format f and a KindType error otherwise.
// The URL text is never inspected.
func (u Url) As(f Format) (string, error) {
	if u.Format != f {
		return "", TypeMismatch(f, u.Format)
	}
	return u.URL, nil
}

// M3U returns the endpoint of an HLS playlist Url.
func (u Url) M3U() (string, error) {
	return u.As(M3U)
}

// Flv returns the endpoint of a flash-video Url.
func (u Url) Flv() (string, error) {
	return u.As(Flv)
}

// Rtmp returns the endpoint of an RTMP Url.
func (u Url) Rtmp() (string, error) {
	return u.As(Rtmp)
}
