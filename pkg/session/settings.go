package session

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	Protocol_Websocket       = "websocket"
	Protocol_WebsocketSecure = "websocketsecure"

	DefaultHost = "localhost"
	DefaultPort = 15164
	DefaultPath = "/fedpro"

	DefaultConnectTimeout = 10 * time.Second
)

type MalformedAddress struct {
	Address  string
	Segments int
}

func (e *MalformedAddress) Error() string {
	return fmt.Sprintf("Malformed address '%s': %d segments, at most 3 allowed", e.Address, e.Segments)
}

type MalformedProtocolSettings struct {
	Setting string
	Reason  string
}

func (e *MalformedProtocolSettings) Error() string {
	return fmt.Sprintf("Malformed protocol setting '%s': %s", e.Setting, e.Reason)
}

// Settings is everything a Factory needs to build a Session.
type Settings struct {
	Protocol       string
	Host           string
	Port           int
	Path           string
	ConnectTimeout time.Duration

	// MaxPendingCalls <= 0 means unlimited.
	MaxPendingCalls int

	// Extra keeps protocol settings the core does not interpret.
	Extra map[string]string
}

func DefaultSettings() Settings {
	return Settings{
		Protocol:       Protocol_Websocket,
		Host:           DefaultHost,
		Port:           DefaultPort,
		Path:           DefaultPath,
		ConnectTimeout: DefaultConnectTimeout,
		Extra:          map[string]string{},
	}
}

// Address is the legacy compact designator
// "<serverAddress>;<protocolSettings>;<rtiAddress>". Every segment is
// optional.
type Address struct {
	ServerAddress    string
	ProtocolSettings string
	RTIAddress       string
}

func ParseAddress(designator string) (*Address, error) {
	addr := &Address{}
	if designator == "" {
		return addr, nil
	}

	segments := strings.Split(designator, ";")
	if len(segments) > 3 {
		return nil, &MalformedAddress{
			Address:  designator,
			Segments: len(segments),
		}
	}

	addr.ServerAddress = strings.TrimSpace(segments[0])
	if len(segments) > 1 {
		addr.ProtocolSettings = strings.TrimSpace(segments[1])
	}
	if len(segments) > 2 {
		addr.RTIAddress = strings.TrimSpace(segments[2])
	}
	return addr, nil
}

// Apply layers the address on top of base. The server address may be
// "host", "host:port" or ":port"; protocol settings are comma separated
// key=value pairs.
func (a *Address) Apply(base Settings) (Settings, error) {
	s := base
	s.Extra = make(map[string]string, len(base.Extra))
	for k, v := range base.Extra {
		s.Extra[k] = v
	}

	if a.ServerAddress != "" {
		if err := applyServerAddress(&s, a.ServerAddress); err != nil {
			return Settings{}, err
		}
	}

	if a.ProtocolSettings == "" {
		return s, nil
	}

	for _, pair := range strings.Split(a.ProtocolSettings, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return Settings{}, &MalformedProtocolSettings{Setting: pair, Reason: "expected key=value"}
		}
		if err := applySetting(&s, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return Settings{}, err
		}
	}

	return s, nil
}

func applyServerAddress(s *Settings, serverAddress string) error {
	if !strings.Contains(serverAddress, ":") {
		s.Host = serverAddress
		return nil
	}

	host, port, err := net.SplitHostPort(serverAddress)
	if err != nil {
		return &MalformedProtocolSettings{Setting: serverAddress, Reason: err.Error()}
	}
	if host != "" {
		s.Host = host
	}
	return applySetting(s, "port", port)
}

func applySetting(s *Settings, key, value string) error {
	switch strings.ToLower(key) {
	case "protocol":
		s.Protocol = strings.ToLower(value)
	case "host":
		s.Host = value
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil || port <= 0 || port > 65535 {
			return &MalformedProtocolSettings{Setting: key + "=" + value, Reason: "port must be in 1..65535"}
		}
		s.Port = port
	case "path":
		s.Path = value
	case "connecttimeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return &MalformedProtocolSettings{Setting: key + "=" + value, Reason: err.Error()}
		}
		s.ConnectTimeout = d
	case "maxpendingcalls":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &MalformedProtocolSettings{Setting: key + "=" + value, Reason: err.Error()}
		}
		s.MaxPendingCalls = n
	default:
		s.Extra[key] = value
	}
	return nil
}
