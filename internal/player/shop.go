package player

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathquest/internal/avatar"
)

var (
	ErrUnknownAvatar     = errors.New("unknown avatar")
	ErrAvatarOwned       = errors.New("avatar already owned")
	ErrAvatarNotOwned    = errors.New("avatar not owned")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// BuyAvatar pays for id, unlocks it and selects it.
func (s *Stats) BuyAvatar(id avatar.ID) error {
	if !avatar.Known(id) {
		return fmt.Errorf("%w: %q", ErrUnknownAvatar, id)
	}
	if s.Owns(id) {
		return ErrAvatarOwned
	}
	price := avatar.Stats(id).Price
	if s.Coins < price {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientCoins, s.Coins, price)
	}
	s.Coins -= price
	s.UnlockedAvatars = append(s.UnlockedAvatars, id)
	s.Avatar = id
	return nil
}

// SelectAvatar switches to an owned avatar.
func (s *Stats) SelectAvatar(id avatar.ID) error {
	if !avatar.Known(id) {
		return fmt.Errorf("%w: %q", ErrUnknownAvatar, id)
	}
	if !s.Owns(id) {
		return ErrAvatarNotOwned
	}
	s.Avatar = id
	return nil
}
