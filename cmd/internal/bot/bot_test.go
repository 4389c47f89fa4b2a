package bot

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/taklab/flatline/logs"
	"github.com/taklab/flatline/playtak"
	"github.com/taklab/flatline/playtak/bot"
	"github.com/taklab/flatline/tak"
	"github.com/taklab/flatline/taktest"
)

type mockClient struct {
	cmds []string
}

func (m *mockClient) SendCommand(args ...string) {
	m.cmds = append(m.cmds, strings.Join(args, " "))
}

func (m *mockClient) Recv() <-chan string {
	return nil
}

func (m *mockClient) Error() error {
	return nil
}

func (m *mockClient) Shutdown() {
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		whoami string
		msg    string
		cmd    string
		arg    string
	}{
		{"flatline", "flatline: size 6", "size", "6"},
		{"flatline", "flatline size 6", "size", "6"},
		{"FlatlineBot", "flatline: size 6", "size", "6"},
		{"flatline", "Flatline: size 6", "size", "6"},
		{"flatline", "someone: size 6", "", ""},
		{"flatline", "", "", ""},
	}
	for _, tc := range cases {
		cmd, arg := parseCommand(tc.whoami, tc.msg)
		if cmd != tc.cmd || arg != tc.arg {
			t.Errorf("parseCommand(%q, %q) = (%q, %q), want (%q, %q)",
				tc.whoami, tc.msg, cmd, arg, tc.cmd, tc.arg)
		}
	}
}

func TestHandleSizeCommand(t *testing.T) {
	mock := &mockClient{}
	f := &Flatline{
		cmd:    &Command{size: 5, gameTime: 10 * time.Minute},
		client: &playtak.Commands{Client: mock},
	}

	f.HandleChat("karei", "flatline: size 6")
	if f.cmd.size != 6 {
		t.Errorf("size = %d, want 6", f.cmd.size)
	}
	if len(mock.cmds) != 1 || mock.cmds[0] != "Seek 6 600 0" {
		t.Errorf("sent commands: %#v", mock.cmds)
	}

	f.HandleChat("karei", "flatline: size 9")
	if f.cmd.size != 6 || len(mock.cmds) != 1 {
		t.Errorf("out-of-range size reseeked: %#v", mock.cmds)
	}

	f.HandleChat("karei", "just chatting")
	if len(mock.cmds) != 1 {
		t.Errorf("plain chat reseeked: %#v", mock.cmds)
	}
}

func TestRecord(t *testing.T) {
	repo, err := logs.Open(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()
	c := &Command{repo: repo}

	game := "e5 a1 b1 d5 c1 d4 d1 d3 e1"
	g := &bot.Game{
		ID:       "7",
		Opponent: "karei",
		Color:    tak.Black,
		Size:     5,
		Positions: []*tak.Position{
			taktest.Position(5, game),
		},
		Moves: taktest.Moves(game),
	}
	c.record(g)

	rows, err := repo.Games(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("recorded %d games, want 1", len(rows))
	}
	if rows[0].White != "karei" || rows[0].Black != "flatline" {
		t.Errorf("players %s/%s, want karei/flatline", rows[0].White, rows[0].Black)
	}
	if rows[0].Result != "R-0" {
		t.Errorf("result %q, want R-0", rows[0].Result)
	}

	unfinished := &bot.Game{
		ID:        "8",
		Opponent:  "karei",
		Color:     tak.White,
		Size:      5,
		Positions: []*tak.Position{taktest.Position(5, "a1 e5")},
		Moves:     taktest.Moves("a1 e5"),
	}
	c.record(unfinished)
	rows, err = repo.Games(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("abandoned game was recorded")
	}

	(&Command{}).record(g)
}
