package playtak

import (
	"bufio"
	"fmt"
	"net"
	"testing"
	"time"
)

func TestParseShout(t *testing.T) {
	cases := []struct {
		in  string
		who string
		msg string
	}{
		{"Shout <alice> hello world", "alice", "hello world"},
		{"Shout <TakBot> takbot: play", "TakBot", "takbot: play"},
		{"Shout malformed", "", ""},
		{"Tell <alice> hi", "", ""},
		{"Shout <> empty", "", ""},
	}
	for _, tc := range cases {
		who, msg := ParseShout(tc.in)
		if who != tc.who || msg != tc.msg {
			t.Errorf("ParseShout(%q) = (%q, %q), want (%q, %q)",
				tc.in, who, msg, tc.who, tc.msg)
		}
	}
}

func TestParseShoutRoom(t *testing.T) {
	cases := []struct {
		in   string
		room string
		who  string
		msg  string
	}{
		{"ShoutRoom Game#100 <alice> good game", "Game#100", "alice", "good game"},
		{"ShoutRoom <alice> missing room", "", "", ""},
		{"Shout <alice> not a room", "", "", ""},
	}
	for _, tc := range cases {
		room, who, msg := ParseShoutRoom(tc.in)
		if room != tc.room || who != tc.who || msg != tc.msg {
			t.Errorf("ParseShoutRoom(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tc.in, room, who, msg, tc.room, tc.who, tc.msg)
		}
	}
}

func TestParseTell(t *testing.T) {
	who, msg := ParseTell("Tell <bob> hi there")
	if who != "bob" || msg != "hi there" {
		t.Errorf("ParseTell = (%q, %q)", who, msg)
	}
	if who, _ := ParseTell("Shout <bob> hi"); who != "" {
		t.Errorf("ParseTell accepted a Shout")
	}
}

func TestClientSendRecv(t *testing.T) {
	ours, theirs := net.Pipe()
	c := newClient(&streamTransport{conn: ours, r: bufio.NewReader(ours)}, false)
	defer c.Shutdown()

	go fmt.Fprintf(theirs, "Welcome!\r\n")
	select {
	case line := <-c.Recv():
		if line != "Welcome!" {
			t.Fatalf("recv %q, want %q", line, "Welcome!")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for server line")
	}

	srv := bufio.NewReader(theirs)
	c.SendCommand("Login", "Guest")
	line, err := srv.ReadString('\n')
	if err != nil {
		t.Fatal(err)
	}
	if line != "Login Guest\n" {
		t.Fatalf("sent %q, want %q", line, "Login Guest\n")
	}
}

func TestClientShutdown(t *testing.T) {
	ours, _ := net.Pipe()
	c := newClient(&streamTransport{conn: ours, r: bufio.NewReader(ours)}, false)
	c.Shutdown()
	c.Shutdown()
	if _, ok := <-c.Recv(); ok {
		t.Fatal("recv channel still open after shutdown")
	}
}
