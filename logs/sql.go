package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  played_at datetime not null,
  size int not null,
  white varchar not null,
  black varchar not null,
  result string not null,
  winner string not null,
  reason string not null,
  plies int not null,
  ptn text not null default ''
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, played_at, player, opponent, color, win, result, size, plies
) AS
SELECT id, played_at, black, white, 'black',
       CASE winner WHEN 'white' THEN 'lose' WHEN 'black' THEN 'win' ELSE 'tie' END,
       result, size, plies
 FROM games
UNION
SELECT id, played_at, white, black, 'white',
       CASE winner WHEN 'white' THEN 'win' WHEN 'black' THEN 'lose' ELSE 'tie' END,
       result, size, plies
 FROM games
`

const insertGame = `
INSERT INTO games (played_at, size, white, black, result, winner, reason, plies, ptn)
VALUES (:played_at, :size, :white, :black, :result, :winner, :reason, :plies, :ptn)
`

const selectByID = `
SELECT * FROM games WHERE id = ?
`

const selectRecent = `
SELECT * FROM games ORDER BY played_at DESC, id DESC LIMIT ?
`

const selectByPlayer = `
SELECT * FROM games WHERE white = ? OR black = ?
ORDER BY played_at DESC, id DESC LIMIT ?
`

const selectCounts = `
SELECT COUNT(*) AS games,
       COALESCE(SUM(CASE winner WHEN 'white' THEN 1 ELSE 0 END), 0) AS white_wins,
       COALESCE(SUM(CASE winner WHEN 'black' THEN 1 ELSE 0 END), 0) AS black_wins,
       COALESCE(SUM(CASE winner WHEN 'tie' THEN 1 ELSE 0 END), 0) AS ties,
       COALESCE(SUM(CASE reason WHEN 'road' THEN 1 ELSE 0 END), 0) AS roads,
       COALESCE(SUM(CASE reason WHEN 'flats' THEN 1 ELSE 0 END), 0) AS flats
  FROM games
`
