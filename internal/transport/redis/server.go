package redis

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/cafebazaar/pairwise/pkg/pairwise"

	"github.com/pkg/errors"
	redisproto "github.com/secmask/go-redisproto"
	"github.com/sirupsen/logrus"
)

type redisServer struct {
	listenPort int
	core       pairwise.Service
	wg         sync.WaitGroup
	listener   net.Listener
}

func New(core pairwise.Service, listenPort int) pairwise.Server {
	return &redisServer{
		core:       core,
		listenPort: listenPort,
	}
}

func (s *redisServer) Start() error {
	var err error

	s.listener, err = net.Listen("tcp", fmt.Sprintf(":%d", s.listenPort))
	if err != nil {
		return err
	}

	started := make(chan struct{})
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		close(started)

		for {
			conn, err := s.listener.Accept()
			if err != nil {
				return
			}

			go s.handleConnection(conn)
		}
	}()
	<-started

	logrus.WithField("port", s.listenPort).Info("redis transport started")

	return nil
}

func (s *redisServer) Close() error {
	err := s.listener.Close()
	s.wg.Wait()
	return err
}

func (s *redisServer) handleConnection(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Info("unexpected error while closing connection")
		}
	}()

	parser := redisproto.NewParser(conn)
	writer := redisproto.NewWriter(bufio.NewWriter(conn))

	for {
		if err := s.connectionLoop(parser, writer); err != nil {
			if err != pairwise.ErrClosed {
				logrus.WithError(err).Info("unexpected error while handling connection")
			}
			return
		}
	}
}

func (s *redisServer) connectionLoop(parser *redisproto.Parser, writer *redisproto.Writer) error {
	command, err := parser.ReadCommand()
	if err != nil {
		_, ok := err.(*redisproto.ProtocolError)
		if ok {
			return writer.WriteError(err.Error())
		}

		return pairwise.ErrClosed
	}

	return s.dispatchCommand(command, writer)
}

func (s *redisServer) dispatchCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	cmd := strings.ToUpper(string(command.Get(0)))
	var err error

	switch cmd {
	case "PW.ADD":
		err = s.handleAddCommand(command, writer)

	case "PW.CANDIDATES":
		err = s.handleCandidatesCommand(command, writer)

	case "PW.VOTE":
		err = s.handleVoteCommand(command, writer)

	case "PW.NEXT":
		err = s.handleNextCommand(command, writer)

	case "PW.REMAINING":
		err = s.handleRemainingCommand(command, writer)

	case "PW.RANKING":
		err = s.handleRankingCommand(command, writer)

	case "PW.SCORES":
		err = s.handleScoresCommand(command, writer)

	case "PW.RESET":
		err = s.handleResetCommand(command, writer)

	case "PING":
		err = s.handlePingCommand(command, writer)

	case "ECHO":
		err = s.handleEchoCommand(command, writer)

	default:
		err = writer.WriteError(fmt.Sprintf("command not supported: %v", cmd))
	}

	if err != nil {
		return err
	}

	if command.IsLast() {
		return writer.Flush()
	}

	return nil
}

func (s *redisServer) handleAddCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() < 3 {
		return writer.WriteError("expected at least 3 arguments for PW.ADD command")
	}

	session := string(command.Get(1))
	candidates := make([]string, 0, command.ArgCount()-2)
	seen := make(map[string]bool)

	for i := 2; i < command.ArgCount(); i++ {
		candidate := string(command.Get(i))

		if strings.TrimSpace(candidate) == "" {
			return writer.WriteError(fmt.Sprintf("candidate %d is empty", i-1))
		}

		if seen[candidate] {
			return writer.WriteError(fmt.Sprintf("candidate %q is repeated", candidate))
		}

		seen[candidate] = true
		candidates = append(candidates, candidate)
	}

	added := 0

	for _, candidate := range candidates {
		request := &pairwise.AddCandidateRequest{
			Session:   session,
			Candidate: candidate,
		}

		if err := s.core.AddCandidate(context.Background(), request); err != nil {
			if added == 0 {
				return writer.WriteError(err.Error())
			}

			return writer.WriteError(fmt.Sprintf("added %d of %d candidates: %v", added, len(candidates), err))
		}
		added++
	}

	return writer.WriteInt(int64(added))
}

func (s *redisServer) handleCandidatesCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 2 {
		return writer.WriteError("expected 2 arguments for PW.CANDIDATES command")
	}

	result, err := s.core.Candidates(context.Background(), &pairwise.CandidatesRequest{
		Session: string(command.Get(1)),
	})
	if err != nil {
		return writer.WriteError(err.Error())
	}

	return writer.WriteBulks(toBulks(result.Candidates)...)
}

func (s *redisServer) handleVoteCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 4 {
		return writer.WriteError("expected 4 arguments for PW.VOTE command")
	}

	result, err := s.core.Cast(context.Background(), &pairwise.CastRequest{
		Session: string(command.Get(1)),
		Ballot:  pairwise.Vote{string(command.Get(2)), string(command.Get(3))},
	})
	if err != nil {
		return writer.WriteError(err.Error())
	}

	return s.writePair(result.Next, writer)
}

func (s *redisServer) handleNextCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 2 {
		return writer.WriteError("expected 2 arguments for PW.NEXT command")
	}

	result, err := s.core.NextBallot(context.Background(), &pairwise.NextBallotRequest{
		Session: string(command.Get(1)),
	})
	if err != nil {
		return writer.WriteError(err.Error())
	}

	if result.Complete {
		return writer.WriteBulk(nil)
	}

	return s.writePair(result.Ballot, writer)
}

func (s *redisServer) handleRemainingCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	result, err := s.results(command, "PW.REMAINING")
	if err != nil {
		return writer.WriteError(err.Error())
	}

	return writer.WriteInt(int64(result.Remaining))
}

func (s *redisServer) handleRankingCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	result, err := s.results(command, "PW.RANKING")
	if err != nil {
		return writer.WriteError(err.Error())
	}

	return writer.WriteBulks(toBulks(result.Ranking)...)
}

func (s *redisServer) handleScoresCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	result, err := s.results(command, "PW.SCORES")
	if err != nil {
		return writer.WriteError(err.Error())
	}

	var flat []string
	for _, score := range result.Scores {
		flat = append(flat,
			score.Candidate,
			strconv.Itoa(score.Wins),
			strconv.Itoa(score.Earned),
			strconv.Itoa(score.Offered))
	}

	return writer.WriteBulks(toBulks(flat)...)
}

func (s *redisServer) handleResetCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 2 {
		return writer.WriteError("expected 2 arguments for PW.RESET command")
	}

	err := s.core.Reset(context.Background(), &pairwise.ResetRequest{
		Session: string(command.Get(1)),
	})
	if err != nil {
		return writer.WriteError(err.Error())
	}

	return writer.WriteSimpleString("OK")
}

func (s *redisServer) handlePingCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() > 2 {
		return writer.WriteError("expected 1-2 arguments for Ping command")
	}

	if command.ArgCount() == 1 {
		return writer.WriteSimpleString("PONG")
	}

	return writer.WriteBulk(command.Get(1))
}

func (s *redisServer) handleEchoCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 2 {
		return writer.WriteError("expected 2 arguments for Echo command")
	}

	return writer.WriteBulk(command.Get(1))
}

func (s *redisServer) results(command *redisproto.Command, name string) (*pairwise.ResultsResponse, error) {
	if command.ArgCount() != 2 {
		return nil, errors.Errorf("expected 2 arguments for %v command", name)
	}

	return s.core.Results(context.Background(), &pairwise.ResultsRequest{
		Session: string(command.Get(1)),
	})
}

func (s *redisServer) writePair(pair *pairwise.Pair, writer *redisproto.Writer) error {
	if pair == nil {
		return writer.WriteBulk(nil)
	}

	return writer.WriteBulks([]byte(pair[0]), []byte(pair[1]))
}

func toBulks(values []string) [][]byte {
	result := make([][]byte, len(values))
	for i, value := range values {
		result[i] = []byte(value)
	}

	return result
}
