package playtak

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"
	"time"
)

const pingInterval = 30 * time.Second

// Client is a live connection to a playtak server.
type Client interface {
	Recv() <-chan string
	SendCommand(...string)

	Error() error
	Shutdown()
}

// transport frames the server's line protocol over some underlying
// connection.
type transport interface {
	ReadLine() (string, error)
	WriteLine(string) error
	Close() error
}

type streamTransport struct {
	conn net.Conn
	r    *bufio.Reader
}

func (t *streamTransport) ReadLine() (string, error) {
	line, err := t.r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *streamTransport) WriteLine(line string) error {
	_, err := fmt.Fprintf(t.conn, "%s\n", line)
	return err
}

func (t *streamTransport) Close() error {
	return t.conn.Close()
}

type client struct {
	tr    transport
	debug bool

	err error

	recv     chan string
	send     chan string
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup

	sent struct {
		sync.Mutex
		cmds []string
	}
}

// Dial connects to a playtak server's plain TCP endpoint, e.g.
// playtak.com:10000.
func Dial(debug bool, host string) (Client, error) {
	conn, err := net.Dial("tcp", host)
	if err != nil {
		return nil, err
	}
	return newClient(&streamTransport{conn: conn, r: bufio.NewReader(conn)}, debug), nil
}

func newClient(tr transport, debug bool) *client {
	c := &client{
		tr:       tr,
		debug:    debug,
		recv:     make(chan string),
		send:     make(chan string),
		shutdown: make(chan struct{}),
	}
	c.wg.Add(2)
	go c.recvThread()
	go c.sendThread()
	return c
}

func (c *client) recvThread() {
	defer c.wg.Done()
	defer close(c.recv)
	for {
		line, err := c.tr.ReadLine()
		if err != nil {
			c.err = err
			return
		}
		if c.debug {
			log.Printf("playtak < %s", line)
		}
		if line == "NOK" {
			c.sent.Lock()
			log.Printf("NOK! last sent: %s", strings.Join(c.sent.cmds, ", "))
			c.sent.Unlock()
		}
		select {
		case c.recv <- line:
		case <-c.shutdown:
			return
		}
	}
}

func (c *client) sendThread() {
	defer c.wg.Done()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()
	for {
		var cmd string
		select {
		case cmd = <-c.send:
		case <-ping.C:
			cmd = "PING"
		case <-c.shutdown:
			return
		}
		if c.debug {
			log.Printf("playtak > %s", cmd)
		}
		c.record(cmd)
		if err := c.tr.WriteLine(cmd); err != nil {
			log.Printf("playtak send: %v", err)
			return
		}
	}
}

// record remembers recently sent commands so a NOK can be tied back
// to what provoked it.
func (c *client) record(cmd string) {
	c.sent.Lock()
	defer c.sent.Unlock()
	c.sent.cmds = append(c.sent.cmds, cmd)
	if len(c.sent.cmds) > 5 {
		c.sent.cmds = c.sent.cmds[1:]
	}
}

func (c *client) SendCommand(words ...string) {
	select {
	case c.send <- strings.Join(words, " "):
	case <-c.shutdown:
	}
}

func (c *client) Recv() <-chan string {
	return c.recv
}

func (c *client) Error() error {
	return c.err
}

func (c *client) Shutdown() {
	c.once.Do(func() {
		close(c.shutdown)
		c.tr.Close()
		c.wg.Wait()
	})
}
