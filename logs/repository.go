package logs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/taklab/flatline/ptn"
	"github.com/taklab/flatline/tak"
)

// Repository stores finished games in a sqlite database.
type Repository struct {
	db *sqlx.DB
}

type Game struct {
	ID       int64     `db:"id"`
	PlayedAt time.Time `db:"played_at"`
	Size     int       `db:"size"`
	White    string    `db:"white"`
	Black    string    `db:"black"`
	Result   string    `db:"result"`
	Winner   string    `db:"winner"`
	Reason   string    `db:"reason"`
	Plies    int       `db:"plies"`
	PTN      string    `db:"ptn"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createGameTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create games table: %v", err)
	}
	if _, err := db.Exec(createPlayerView); err != nil {
		db.Close()
		return nil, fmt.Errorf("create player_games view: %v", err)
	}
	return &Repository{db: db}, nil
}

// InsertGame stores one game and fills in its assigned ID.
func (r *Repository) InsertGame(g *Game) error {
	res, err := r.db.NamedExec(insertGame, g)
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		g.ID = id
	}
	return nil
}

// InsertGames stores a batch in one transaction.
func (r *Repository) InsertGames(gs []*Game) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, g := range gs {
		if _, err := tx.NamedExec(insertGame, g); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GameByID looks up a single stored game.
func (r *Repository) GameByID(id int64) (*Game, error) {
	var g Game
	if err := r.db.Get(&g, selectByID, id); err != nil {
		return nil, err
	}
	return &g, nil
}

// Games returns the most recently played games, newest first.
func (r *Repository) Games(limit int) ([]Game, error) {
	var out []Game
	err := r.db.Select(&out, selectRecent, limit)
	return out, err
}

// PlayerGames returns the named player's games, newest first.
func (r *Repository) PlayerGames(player string, limit int) ([]Game, error) {
	var out []Game
	err := r.db.Select(&out, selectByPlayer, player, player, limit)
	return out, err
}

// Counts tallies stored games by outcome.
type Counts struct {
	Games     int `db:"games"`
	WhiteWins int `db:"white_wins"`
	BlackWins int `db:"black_wins"`
	Ties      int `db:"ties"`
	Roads     int `db:"roads"`
	Flats     int `db:"flats"`
}

func (r *Repository) Counts() (Counts, error) {
	var c Counts
	err := r.db.Get(&c, selectCounts)
	return c, err
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Record summarizes a finished game as a row, rendering its PTN. The
// position must be over; abandoned games are not recordable.
func Record(white, black string, final *tak.Position, moves []tak.Move) *Game {
	d := final.WinDetails()
	g := &Game{
		PlayedAt: time.Now(),
		Size:     final.Size(),
		White:    white,
		Black:    black,
		Result:   ptn.FormatResult(d),
		Plies:    final.Ply(),
	}
	switch d.Winner {
	case tak.White:
		g.Winner = "white"
	case tak.Black:
		g.Winner = "black"
	default:
		g.Winner = "tie"
	}
	switch d.Reason {
	case tak.RoadWin:
		g.Reason = "road"
	case tak.FlatsWin:
		g.Reason = "flats"
	case tak.Resignation:
		g.Reason = "resignation"
	}

	var doc ptn.PTN
	doc.Tags = []ptn.Tag{
		{Name: "Size", Value: strconv.Itoa(final.Size())},
		{Name: "Player1", Value: white},
		{Name: "Player2", Value: black},
		{Name: "Date", Value: g.PlayedAt.Format("2006.01.02")},
		{Name: "Result", Value: g.Result},
	}
	if hk := final.HalfKomi(); hk != 0 {
		doc.Tags = append(doc.Tags,
			ptn.Tag{Name: "Komi", Value: strconv.FormatFloat(float64(hk)/2, 'g', -1, 64)})
	}
	doc.AddMoves(moves)
	doc.Ops = append(doc.Ops, &ptn.GameOver{End: d})
	g.PTN = doc.Render()
	return g
}
