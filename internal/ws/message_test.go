package ws

import (
	"encoding/json"
	"testing"

	"github.com/shenmao/bigtwo/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientMessageDecode(t *testing.T) {
	raw := `{"type":"play_hand","roomId":"r1","cards":[{"suit":0,"rank":3},{"suit":3,"rank":3}]}`
	var msg ClientMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))

	assert.Equal(t, MsgPlayHand, msg.Type)
	assert.Equal(t, "r1", msg.RoomID)
	require.Len(t, msg.Cards, 2)
	assert.Equal(t, engine.OpeningCard, msg.Cards[0])
	assert.Equal(t, engine.NewCard(engine.SuitSpade, engine.RankThree), msg.Cards[1])
}

func TestClientMessagePassHasNilCards(t *testing.T) {
	raw := `{"type":"play_hand","roomId":"r1"}`
	var msg ClientMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	assert.Nil(t, msg.Cards, "a pass carries no cards")
}

func TestClientMessageRejectsBadCard(t *testing.T) {
	raw := `{"type":"play_hand","cards":[{"suit":9,"rank":3}]}`
	var msg ClientMessage
	assert.Error(t, json.Unmarshal([]byte(raw), &msg))
}
