package engine

import (
	"encoding/json"
	"testing"
)

func TestCardWireFormat(t *testing.T) {
	b, err := json.Marshal(NewCard(SuitSpade, RankTwo))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"suit":3,"rank":15}` {
		t.Errorf("unexpected wire form %s", b)
	}

	var c Card
	if err := json.Unmarshal(b, &c); err != nil {
		t.Fatal(err)
	}
	if c != NewCard(SuitSpade, RankTwo) {
		t.Errorf("round trip produced %v", c)
	}
}

func TestCardWireRejectsOutOfRange(t *testing.T) {
	for _, bad := range []string{
		`{"suit":4,"rank":10}`,
		`{"suit":0,"rank":2}`,
		`{"suit":0,"rank":16}`,
	} {
		var c Card
		if err := json.Unmarshal([]byte(bad), &c); err == nil {
			t.Errorf("%s must not decode", bad)
		}
	}
}

func TestHandTypeWireByName(t *testing.T) {
	b, err := json.Marshal(StraightFlush)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"StraightFlush"` {
		t.Errorf("unexpected wire form %s", b)
	}

	var ht HandType
	if err := json.Unmarshal([]byte(`"FullHouse"`), &ht); err != nil || ht != FullHouse {
		t.Errorf("decode FullHouse: %v %v", ht, err)
	}
	if err := json.Unmarshal([]byte(`"Flush"`), &ht); err == nil {
		t.Error("unknown hand type name must not decode")
	}
}
