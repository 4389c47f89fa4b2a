package playtak

import (
	"strings"

	"golang.org/x/net/websocket"
)

// wsTransport reads one server line per websocket frame. The server's
// `binary` subprotocol does not newline-terminate its messages, so the
// stream framing does not apply.
type wsTransport struct {
	ws  *websocket.Conn
	buf []byte
}

func (t *wsTransport) ReadLine() (string, error) {
	n, err := t.ws.Read(t.buf)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(t.buf[:n]), "\r\n"), nil
}

func (t *wsTransport) WriteLine(line string) error {
	_, err := t.ws.Write([]byte(line))
	return err
}

func (t *wsTransport) Close() error {
	return t.ws.Close()
}

// DialWS connects to a playtak server's websocket endpoint, e.g.
// ws://playtak.com:9999/ws.
func DialWS(debug bool, url string) (Client, error) {
	cfg, err := websocket.NewConfig(url, "http://localhost/")
	if err != nil {
		return nil, err
	}
	cfg.Protocol = []string{"binary"}
	ws, err := websocket.DialConfig(cfg)
	if err != nil {
		return nil, err
	}
	return newClient(&wsTransport{ws: ws, buf: make([]byte, 4096)}, debug), nil
}
