package wsscene

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/game/battle"
	"github.com/udisondev/battlecore/internal/model"
)

func TestMain(m *testing.M) {
	data.MustLoadForTest()
	m.Run()
}

// connect starts a server for h and dials it, waiting until the hub sees the client.
func connect(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	before := h.Clients()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return h.Clients() == before+1 }, time.Second, 5*time.Millisecond)
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f Frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func battler(t *testing.T, species string, bank int, moves ...string) *battle.Battler {
	t.Helper()
	c, err := model.NewCreature(species, 50, moves...)
	require.NoError(t, err)
	b, err := battle.NewBattler(c, bank, 0)
	require.NoError(t, err)
	return b
}

func TestHub_EmitBroadcastsMessages(t *testing.T) {
	h := NewHub(time.Second, 8)
	defer h.Close()
	a := connect(t, h)
	b := connect(t, h)

	h.Emit(battle.Message{Turn: 3, Key: "use_move", Text: "Pikachu used Thunderbolt!"})

	for _, conn := range []*websocket.Conn{a, b} {
		f := readFrame(t, conn)
		assert.Equal(t, FrameMessage, f.Type)
		assert.Equal(t, 3, f.Turn)
		assert.Equal(t, "use_move", f.Key)
		assert.Equal(t, "Pikachu used Thunderbolt!", f.Text)
	}
}

func TestHub_AnimationWaitsForAck(t *testing.T) {
	h := NewHub(time.Second, 8)
	defer h.Close()
	conn := connect(t, h)

	user := battler(t, "pikachu", 0, "thunderbolt")
	target := battler(t, "gyarados", 1, "tackle")

	done := make(chan error, 1)
	go func() {
		done <- h.PlayMoveAnimation(context.Background(), user, user.Move(0), []*battle.Battler{target})
	}()

	f := readFrame(t, conn)
	require.Equal(t, FrameAnimation, f.Type)
	assert.Equal(t, "thunderbolt", f.Move)
	require.NotNil(t, f.Battler)
	assert.Equal(t, "pikachu", f.Battler.Species)
	require.Len(t, f.Targets, 1)
	assert.Equal(t, 1, f.Targets[0].Bank)

	select {
	case <-done:
		t.Fatal("animation finished before ack")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, conn.WriteJSON(Frame{Type: FrameAck, Seq: f.Seq}))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("animation not released by ack")
	}
}

func TestHub_AnimationWithoutRenderers(t *testing.T) {
	h := NewHub(0, 0)
	user := battler(t, "pikachu", 0, "thunderbolt")

	err := h.PlayMoveAnimation(context.Background(), user, user.Move(0), nil)
	assert.NoError(t, err)
}

func TestHub_AnimationCancelled(t *testing.T) {
	h := NewHub(time.Second, 8)
	defer h.Close()
	conn := connect(t, h)
	user := battler(t, "pikachu", 0, "thunderbolt")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- h.PlayMoveAnimation(ctx, user, user.Move(0), nil)
	}()
	readFrame(t, conn)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled animation still blocking")
	}
}

func TestHub_DisconnectReleasesAnimation(t *testing.T) {
	h := NewHub(time.Second, 8)
	defer h.Close()
	conn := connect(t, h)
	user := battler(t, "pikachu", 0, "thunderbolt")

	done := make(chan error, 1)
	go func() {
		done <- h.PlayMoveAnimation(context.Background(), user, user.Move(0), nil)
	}()
	readFrame(t, conn)
	conn.Close()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("animation still blocking after renderer left")
	}
	assert.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_Banners(t *testing.T) {
	h := NewHub(time.Second, 8)
	defer h.Close()
	conn := connect(t, h)

	c, err := model.NewCreature("pikachu", 50, "thunderbolt")
	require.NoError(t, err)
	c.Ability = "static"
	c.ItemHolding = "light_ball"
	b, err := battle.NewBattler(c, 0, 0)
	require.NoError(t, err)

	h.ShowAbility(b)
	h.ShowItem(b)

	f := readFrame(t, conn)
	assert.Equal(t, FrameAbility, f.Type)
	assert.Equal(t, "static", f.Symbol)
	f = readFrame(t, conn)
	assert.Equal(t, FrameItem, f.Type)
	assert.Equal(t, "light_ball", f.Symbol)
}
