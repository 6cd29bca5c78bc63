package transport

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wire"
	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/wtwire"
)

// serveSession answers requests on c until the client deletes its session.
func serveSession(c *Conn) error {
	for {
		msg, err := c.Receive()
		if err != nil {
			return err
		}

		var reply wtwire.Message
		switch m := msg.(type) {
		case *wtwire.CreateSession:
			reply = &wtwire.CreateSessionReply{Code: wtwire.CreateSessionCodeOK}
		case *wtwire.StateUpdate:
			reply = &wtwire.StateUpdateReply{LastApplied: m.SeqNum}
		case *wtwire.DeleteSession:
			return c.Send(&wtwire.DeleteSessionReply{})
		default:
			reply = wtwire.NewErrorMessage(wtwire.CodePermanentFailure, nil)
		}
		if err := c.Send(reply); err != nil {
			return err
		}
	}
}

func TestWatchtowerSessionOverTCP(t *testing.T) {
	capture := filepath.Join(t.TempDir(), "session"+log.FileExt)
	logger, err := log.NewFileLogger(capture)
	require.NoError(t, err)

	cfg := DefaultConnConfig()
	cfg.ProtocolLogger = logger
	cfg.Metrics = NewMetrics(WithRegistry(prometheus.NewRegistry()))

	ln, err := Listen("127.0.0.1:0", cfg)
	require.NoError(t, err)
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	towerDone := make(chan error, 1)
	go func() {
		tower, err := ln.Accept()
		if err != nil {
			towerDone <- err
			return
		}
		if _, err := tower.Handshake(ctx, testInit(testChain)); err != nil {
			towerDone <- err
			return
		}
		err = serveSession(tower)
		tower.Close()
		towerDone <- err
	}()

	client, err := Dial(ctx, ln.Addr().String(), cfg)
	require.NoError(t, err)

	remote, err := client.Handshake(ctx, testInit(testChain))
	require.NoError(t, err)
	assert.True(t, remote.ConnFeatures.IsSet(wire.DataLossProtectOptional))
	assert.Equal(t, StateReady, client.State())

	require.NoError(t, client.Send(&wtwire.CreateSession{
		BlobType:     wtwire.TypeAltruistCommit.BlobType(),
		MaxUpdates:   1024,
		SweepFeeRate: 253,
	}))
	msg, err := client.Receive()
	require.NoError(t, err)
	assert.Equal(t, wtwire.CreateSessionCodeOK, msg.(*wtwire.CreateSessionReply).Code)

	const updates = 3
	for seq := uint16(1); seq <= updates; seq++ {
		require.NoError(t, client.Send(&wtwire.StateUpdate{
			SeqNum:        seq,
			LastApplied:   seq - 1,
			Hint:          wtwire.BreachHint{byte(seq)},
			EncryptedBlob: wire.Buffer{0xde, 0xad, byte(seq)},
		}))
		msg, err := client.Receive()
		require.NoError(t, err)
		assert.Equal(t, &wtwire.StateUpdateReply{LastApplied: seq}, msg)
	}

	require.NoError(t, client.Send(&wtwire.DeleteSession{}))
	msg, err = client.Receive()
	require.NoError(t, err)
	assert.Equal(t, &wtwire.DeleteSessionReply{}, msg)

	require.NoError(t, <-towerDone)
	require.NoError(t, client.Close())
	require.NoError(t, logger.Close())

	// Each update is recorded once by the sender and once by the receiver.
	updateType := uint16(wtwire.MsgStateUpdate)
	reader, err := log.NewFilteredReader(capture, log.Filter{MessageType: &updateType})
	require.NoError(t, err)
	defer reader.Close()

	roles := make(map[log.Role]int)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		roles[event.LocalRole]++
		if event.LocalRole == log.RoleClient {
			assert.Equal(t, log.DirectionOut, event.Direction)
		} else {
			assert.Equal(t, log.DirectionIn, event.Direction)
		}
	}
	assert.Equal(t, map[log.Role]int{log.RoleClient: updates, log.RoleTower: updates}, roles)
}
