package lobby

import (
	"github.com/scoutfriends/scout-server/internal/storage"
)

// ToLobbyData converts the lobby to its serializable snapshot form.
func (l *Lobby) ToLobbyData() *storage.LobbyData {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := &storage.LobbyData{
		Code:             l.Code,
		State:            int(l.State),
		CreatedAt:        l.CreatedAt.Unix(),
		CurrentPlayOwner: l.CurrentPlayOwner,
		CurrentPlaySize:  len(l.CurrentPlay),
		Players:          make([]storage.PlayerData, 0, len(l.Players)),
	}

	for _, p := range l.Players {
		data.Players = append(data.Players, storage.PlayerData{
			Name:      p.Name,
			IsHost:    p.IsHost,
			Points:    p.Points,
			CardsLeft: len(p.Hand),
			Tokens:    p.Tokens,
		})
	}

	return data
}
