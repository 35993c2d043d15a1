package battleship

import (
	"sync"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"go.uber.org/zap"
)

type GameManager interface {
	CreateGame(specs []ShipSpec) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	DeleteGame(gameUuid string)
}

type BattleshipGameManager struct {
	games  map[string]*Game
	mu     sync.RWMutex
	logger *zap.Logger
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(logger *zap.Logger) *BattleshipGameManager {
	return &BattleshipGameManager{
		games:  make(map[string]*Game, 10),
		logger: logger,
	}
}

func (bgm *BattleshipGameManager) CreateGame(specs []ShipSpec) (*Game, error) {
	game, err := NewGame(specs)
	if err != nil {
		bgm.logger.Info("rejected fleet", zap.Int("ships", len(specs)), zap.Error(err))
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games[game.Uuid] = game
	bgm.mu.Unlock()

	bgm.logger.Info("game created", zap.String("game_uuid", game.Uuid))
	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) DeleteGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()

	bgm.logger.Info("game deleted", zap.String("game_uuid", gameUuid))
}
