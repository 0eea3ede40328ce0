// Package websub implements the hub-facing callback endpoint: subscription
// verification and push notifications.
package websub

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkovridov/schedcore/internal/api/respond"
	"github.com/mkovridov/schedcore/internal/events"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/websub/mock.go -package=mocks

type leaseService interface {
	ExtendLease(ctx context.Context, topicID string, leaseSeconds int64) error
}

// Handler handles the hub's verification requests and pushed feed updates.
type Handler struct {
	service     leaseService
	hub         *events.Hub
	verifyToken string
}

func NewHandler(s leaseService, h *events.Hub, verifyToken string) *Handler {
	return &Handler{service: s, hub: h, verifyToken: verifyToken}
}

// Verify handles the hub's GET verification of a subscribe request. The
// challenge must be echoed back verbatim for the handshake to succeed. The
// granted hub.lease_seconds overrides the configured default lease length.
func (h *Handler) Verify(c *ginext.Context) {
	if token := c.Query("hub.verify_token"); token != h.verifyToken {
		zlog.Logger.Warn().Msg("verification with bad token")
		respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("bad verify token"))
		return
	}

	challenge := c.Query("hub.challenge")
	if challenge == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing challenge"))
		return
	}

	if c.Query("hub.mode") == "subscribe" {
		topicID := topicIDFromURL(c.Query("hub.topic"))
		leaseSeconds, _ := strconv.ParseInt(c.Query("hub.lease_seconds"), 10, 64)

		if topicID != "" && leaseSeconds > 0 {
			if err := h.service.ExtendLease(c.Request.Context(), topicID, leaseSeconds); err != nil {
				zlog.Logger.Error().Err(err).Str("topic", topicID).Msg("failed to apply granted lease")
			}
		}
	}

	c.Writer.Header().Set("Content-Type", "text/plain")
	c.Writer.WriteHeader(http.StatusOK)
	_, _ = c.Writer.Write([]byte(challenge))
}

// Notify handles pushed feed updates and fans the entries out to the
// registered listeners. The hub only needs a 2xx; parse failures are
// acknowledged anyway so the hub does not keep redelivering junk.
func (h *Handler) Notify(c *ginext.Context) {
	var f feed
	if err := xml.NewDecoder(c.Request.Body).Decode(&f); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse feed notification")
		c.Writer.WriteHeader(http.StatusNoContent)
		return
	}

	for _, e := range f.Entries {
		h.hub.Publish(events.VideoEvent{
			TopicID:   e.ChannelID,
			VideoID:   e.VideoID,
			Title:     e.Title,
			Author:    e.Author.Name,
			Published: e.Published,
		})
	}

	c.Writer.WriteHeader(http.StatusNoContent)
}

type feed struct {
	XMLName xml.Name `xml:"feed"`
	Entries []entry  `xml:"entry"`
}

type entry struct {
	VideoID   string    `xml:"http://www.youtube.com/xml/schemas/2015 videoId"`
	ChannelID string    `xml:"http://www.youtube.com/xml/schemas/2015 channelId"`
	Title     string    `xml:"title"`
	Author    author    `xml:"author"`
	Published time.Time `xml:"published"`
}

type author struct {
	Name string `xml:"name"`
}

// topicIDFromURL extracts the channel id from a feed topic URL.
func topicIDFromURL(topic string) string {
	u, err := url.Parse(topic)
	if err != nil {
		return ""
	}

	return u.Query().Get("channel_id")
}
