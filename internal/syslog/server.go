package syslog

import (
	"context"
	"net"
	"strings"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/rs/zerolog"
)

// maxDatagram bounds a single syslog message.
const maxDatagram = 8192

// Server listens for syslog datagrams over UDP and hands parsed entries
// to the accept callback. The callback decides whether the entry is
// kept (rate limiting happens there).
type Server struct {
	addr   string
	accept func(ctx context.Context, entry *model.LogEntry)
	log    zerolog.Logger

	conn net.PacketConn
}

// NewServer creates a UDP syslog server.
func NewServer(addr string, accept func(ctx context.Context, entry *model.LogEntry), log zerolog.Logger) *Server {
	return &Server{
		addr:   addr,
		accept: accept,
		log:    log.With().Str("component", "syslog_server").Logger(),
	}
}

// Start binds the UDP socket and reads datagrams until the context is
// cancelled. Malformed messages are counted and dropped, never fatal.
func (s *Server) Start(ctx context.Context) error {
	conn, err := net.ListenPacket("udp", s.addr)
	if err != nil {
		return err
	}
	s.conn = conn

	s.log.Info().Str("addr", s.addr).Msg("syslog UDP listener started")

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	buf := make([]byte, maxDatagram)
	for {
		n, remote, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				s.log.Info().Msg("syslog UDP listener stopped")
				return nil
			}
			s.log.Error().Err(err).Msg("read datagram")
			continue
		}

		raw := strings.TrimRight(string(buf[:n]), "\r\n\x00")
		entry, err := Parse(raw)
		if err != nil {
			s.log.Debug().
				Err(err).
				Str("remote", remote.String()).
				Msg("dropping malformed syslog message")
			continue
		}

		s.accept(ctx, entry)
	}
}
