package playtak

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Commands wraps a Client with the conversational half of the
// protocol: login, seeks, and chat.
type Commands struct {
	Client
}

func (c *Commands) SendClient(name string) {
	c.SendCommand("Client", name)
}

// Login authenticates once the server's login prompt arrives. An
// empty password logs in as a guest-style account.
func (c *Commands) Login(user, pass string) error {
	for line := range c.Recv() {
		if strings.HasPrefix(line, "Login ") {
			break
		}
	}
	if pass == "" {
		c.SendCommand("Login", user)
	} else {
		c.SendCommand("Login", user, pass)
	}
	for line := range c.Recv() {
		if line == "Login or Register" {
			return errors.New("bad password")
		}
		if line == "You're already logged in" {
			return errors.New("user is already logged in")
		}
		if strings.HasPrefix(line, "Welcome ") {
			return nil
		}
	}
	return errors.New("login failed")
}

func (c *Commands) LoginGuest() error {
	return c.Login("Guest", "")
}

// Seek posts a public game offer. Clock times are truncated to whole
// seconds on the wire.
func (c *Commands) Seek(size int, clock, increment time.Duration) {
	c.SendCommand("Seek",
		strconv.Itoa(size),
		strconv.Itoa(int(clock/time.Second)),
		strconv.Itoa(int(increment/time.Second)))
}

// Accept takes up another player's seek by its announced id.
func (c *Commands) Accept(id string) {
	c.SendCommand("Accept", id)
}

func (c *Commands) Shout(room, msg string) {
	if room == "" {
		c.SendCommand("Shout", msg)
	} else {
		c.SendCommand("ShoutRoom", room, msg)
	}
}

func (c *Commands) Tell(who, msg string) {
	c.SendCommand("Tell", who, msg)
}

var (
	tellRE      = regexp.MustCompile(`^Tell <([^> ]+)> (.+)$`)
	shoutRE     = regexp.MustCompile(`^Shout <([^> ]+)> (.+)$`)
	shoutRoomRE = regexp.MustCompile(`^ShoutRoom (\S+) <([^> ]+)> (.+)$`)
)

func ParseTell(line string) (string, string) {
	gs := tellRE.FindStringSubmatch(line)
	if gs == nil {
		return "", ""
	}
	return gs[1], gs[2]
}

func ParseShout(line string) (string, string) {
	gs := shoutRE.FindStringSubmatch(line)
	if gs == nil {
		return "", ""
	}
	return gs[1], gs[2]
}

func ParseShoutRoom(line string) (string, string, string) {
	gs := shoutRoomRE.FindStringSubmatch(line)
	if gs == nil {
		return "", "", ""
	}
	return gs[1], gs[2], gs[3]
}
