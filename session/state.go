package session

import (
	"encoding/json"
	"fmt"

	"github.com/milk9111/voicejumper/storage"
)

// StateKey is the single storage key the session is saved under.
const StateKey = "gameState"

// GameState is the resumable part of a session. Field names match the saved
// JSON.
type GameState struct {
	Level      int     `json:"level"`
	CharacterX float64 `json:"characterX"`
	CharacterY float64 `json:"characterY"`
	Velocity   float64 `json:"velocity"`
	IsDead     bool    `json:"isDead"`
}

// LoadGameState reads the saved state. A missing key yields the zero state;
// a value that does not decode is an error.
func LoadGameState(store storage.Store) (GameState, error) {
	var gs GameState
	if store == nil {
		return gs, nil
	}
	raw, ok, err := store.Get(StateKey)
	if err != nil {
		return gs, fmt.Errorf("session: load state: %w", err)
	}
	if !ok {
		return gs, nil
	}
	if err := json.Unmarshal([]byte(raw), &gs); err != nil {
		return GameState{}, fmt.Errorf("session: decode saved state: %w", err)
	}
	return gs, nil
}

func SaveGameState(store storage.Store, gs GameState) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("session: encode state: %w", err)
	}
	if err := store.Set(StateKey, string(data)); err != nil {
		return fmt.Errorf("session: save state: %w", err)
	}
	return nil
}

// ClearGameState forgets the saved state so the next session starts on the
// first level.
func ClearGameState(store storage.Store) error {
	if store == nil {
		return nil
	}
	if err := store.Delete(StateKey); err != nil {
		return fmt.Errorf("session: clear state: %w", err)
	}
	return nil
}
