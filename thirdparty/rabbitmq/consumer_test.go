package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

func TestConsumer_callPurgeImageAPI(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "purged", status: http.StatusNoContent},
		{name: "still referenced is final", status: http.StatusConflict},
		{name: "already gone is final", status: http.StatusNotFound},
		{name: "server error is retried", status: http.StatusInternalServerError, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotAuth, gotMethod string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.EscapedPath()
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{apiURL: srv.URL, apiKey: "k", client: srv.Client()}
			err := c.callPurgeImageAPI(context.Background(), "ads_abc.png")

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, http.MethodDelete, gotMethod)
			require.Equal(t, "/internal/images/ads_abc.png", gotPath)
			require.Equal(t, "Bearer k", gotAuth)
		})
	}
}

func TestConsumer_callPurgeImageAPI_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := &Consumer{apiURL: url, apiKey: "k", client: http.DefaultClient}
	require.Error(t, c.callPurgeImageAPI(context.Background(), "ads_abc.png"))
}

type recordedAck struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (a *recordedAck) Ack(uint64, bool) error { a.acked = true; return nil }

func (a *recordedAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}

func (a *recordedAck) Reject(_ uint64, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}

type recordedPublish struct {
	err  error
	sent []amqp091.Publishing
	keys []string
}

func (p *recordedPublish) Publish(exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, exchange+"/"+key)
	p.sent = append(p.sent, msg)
	return nil
}

func TestConsumer_handle(t *testing.T) {
	event := model.ImageOrphanedMessage{Path: "ads_abc.png", Scope: constant.ImageScopeAds, Reason: "ad deleted"}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name        string
		status      int
		body        []byte
		headers     amqp091.Table
		publishErr  error
		wantAck     bool
		wantRequeue bool
		wantAttempt int32
	}{
		{name: "purged", status: http.StatusNoContent, body: body, wantAck: true},
		{name: "malformed body is dropped", status: http.StatusNoContent, body: []byte("{"), wantAck: true},
		{name: "first failure schedules delayed retry", status: http.StatusInternalServerError, body: body, wantAck: true, wantAttempt: 2},
		{name: "attempt header is carried forward", status: http.StatusInternalServerError, body: body, headers: amqp091.Table{attemptHeader: int32(3)}, wantAck: true, wantAttempt: 4},
		{name: "last attempt gives up", status: http.StatusInternalServerError, body: body, headers: amqp091.Table{attemptHeader: int64(5)}, wantAck: true},
		{name: "retry publish failure requeues", status: http.StatusInternalServerError, body: body, publishErr: errors.New("channel closed"), wantRequeue: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			pub := &recordedPublish{err: tt.publishErr}
			ack := &recordedAck{}
			c := &Consumer{
				retry:       pub,
				retryDelay:  30 * time.Second,
				maxAttempts: 5,
				apiURL:      srv.URL,
				apiKey:      "k",
				client:      srv.Client(),
			}

			c.handle(context.Background(), amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: tt.body, Headers: tt.headers})

			require.Equal(t, tt.wantAck, ack.acked)
			require.Equal(t, tt.wantRequeue, ack.requeued)
			if tt.wantAttempt == 0 {
				require.Empty(t, pub.sent)
				return
			}

			require.Len(t, pub.sent, 1)
			require.Equal(t, []string{imageEventsExchange + "/" + imageOrphanedKey}, pub.keys)
			require.Equal(t, tt.wantAttempt, pub.sent[0].Headers[attemptHeader])
			require.Equal(t, int64(30000), pub.sent[0].Headers["x-delay"])

			var resent model.ImageOrphanedMessage
			require.NoError(t, json.Unmarshal(pub.sent[0].Body, &resent))
			require.Equal(t, event.Path, resent.Path)
		})
	}
}
